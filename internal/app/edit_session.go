package app

import "github.com/evanschultz/tasklane/internal/domain"

// FieldEntry tracks one replaced cell of a row being edited.
type FieldEntry struct {
	TaskID   string
	List     domain.Status
	Field    domain.Field
	Kind     domain.FieldKind
	Original string
	Pending  string
}

// EditSession holds the pending edits of a single row.
type EditSession struct {
	TaskID  string
	Entries []FieldEntry
}

// newEditSession captures the current display values of every field.
// Without preselect the status control starts with no choice.
func newEditSession(task domain.Task, preselectStatus bool) *EditSession {
	session := &EditSession{
		TaskID:  task.ID,
		Entries: make([]FieldEntry, 0, len(domain.Fields)),
	}
	for _, field := range domain.Fields {
		original := task.FieldValue(field)
		pending := original
		if field == domain.FieldStatus && !preselectStatus {
			pending = ""
		}
		session.Entries = append(session.Entries, FieldEntry{
			TaskID:   task.ID,
			List:     task.Status,
			Field:    field,
			Kind:     field.Kind(),
			Original: original,
			Pending:  pending,
		})
	}
	return session
}

// apply routes one change event to the matching entry and reports whether one matched.
func (s *EditSession) apply(field domain.Field, value string) bool {
	matched := false
	for idx := range s.Entries {
		entry := &s.Entries[idx]
		if entry.Field == field || (field.Kind() == domain.KindSelect && entry.Kind == domain.KindSelect) {
			entry.Pending = value
			matched = true
		}
	}
	return matched
}

// Pending returns the pending value of one field.
func (s EditSession) Pending(field domain.Field) (string, bool) {
	for _, entry := range s.Entries {
		if entry.Field == field {
			return entry.Pending, true
		}
	}
	return "", false
}

// Original returns the captured display value of one field.
func (s EditSession) Original(field domain.Field) (string, bool) {
	for _, entry := range s.Entries {
		if entry.Field == field {
			return entry.Original, true
		}
	}
	return "", false
}

// Committed returns the value validate writes for one field and whether the user changed it.
// Unchanged fields keep their captured display text; changed dates are normalised.
func (s EditSession) Committed(field domain.Field) (string, bool) {
	for _, entry := range s.Entries {
		if entry.Field != field {
			continue
		}
		if entry.Pending == entry.Original {
			return entry.Original, false
		}
		if entry.Kind == domain.KindDate {
			return domain.NormalizeDueDate(entry.Pending), true
		}
		return entry.Pending, true
	}
	return "", false
}

func (s EditSession) clone() EditSession {
	return EditSession{
		TaskID:  s.TaskID,
		Entries: append([]FieldEntry(nil), s.Entries...),
	}
}
