package domain

// Field names one editable cell of a task row.
type Field string

// FieldTitle and related constants list the row fields in display order.
const (
	FieldTitle   Field = "task"
	FieldTag     Field = "tag"
	FieldDueDate Field = "deadline"
	FieldStatus  Field = "taskStatus"
)

// Fields lists every row field in display order.
var Fields = []Field{FieldTitle, FieldTag, FieldDueDate, FieldStatus}

// FieldKind describes which editor a field uses while a row is being edited.
type FieldKind string

// KindText and related constants define the editor kinds.
const (
	KindText   FieldKind = "text"
	KindDate   FieldKind = "date"
	KindSelect FieldKind = "select"
)

// Kind returns the editor kind for the field.
func (f Field) Kind() FieldKind {
	switch f {
	case FieldDueDate:
		return KindDate
	case FieldStatus:
		return KindSelect
	default:
		return KindText
	}
}

// HeaderLabel returns the column header for the field; status has none.
func (f Field) HeaderLabel() string {
	switch f {
	case FieldTitle:
		return "Task"
	case FieldTag:
		return "Tag"
	case FieldDueDate:
		return "End Date"
	default:
		return ""
	}
}
