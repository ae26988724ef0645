package app

import (
	"slices"

	"github.com/evanschultz/tasklane/internal/domain"
)

// CellKind discriminates the cell variants of a rendered row.
type CellKind string

// CellDisplay and related constants define the cell variants.
const (
	CellDisplay   CellKind = "display"
	CellTextInput CellKind = "text"
	CellDateInput CellKind = "date"
	CellSelect    CellKind = "select"
)

// Cell is one rendered value of a row.
type Cell struct {
	Field   domain.Field
	Kind    CellKind
	Value   string
	Options []string
	Hidden  bool
}

// RowView is the rendered form of one task row: a header block and a content block.
type RowView struct {
	TaskID   string
	Status   domain.Status
	Header   []string
	Cells    []Cell
	Selected bool
	Locked   bool
	Editing  bool
}

// ListView is one rendered board list.
type ListView struct {
	Status domain.Status
	Rows   []RowView
}

// Count returns the number of rows in the list.
func (l ListView) Count() int {
	return len(l.Rows)
}

// Board is the rendered state of all three lists plus the button state.
type Board struct {
	Lists       []ListView
	Affordances Affordances
	Editing     bool
}

// List returns the list for one status.
func (b Board) List(status domain.Status) ListView {
	for _, list := range b.Lists {
		if list.Status == status {
			return list
		}
	}
	return ListView{Status: status}
}

// Row finds a rendered row anywhere on the board.
func (b Board) Row(taskID string) (RowView, bool) {
	for _, list := range b.Lists {
		for _, row := range list.Rows {
			if row.TaskID == taskID {
				return row, true
			}
		}
	}
	return RowView{}, false
}

// RenderRow builds the row view for a task. A nil session renders the display state.
func RenderRow(task domain.Task, selected bool, session *EditSession) RowView {
	row := RowView{
		TaskID:   task.ID,
		Status:   task.Status,
		Header:   headerLabels(),
		Cells:    make([]Cell, 0, len(domain.Fields)),
		Selected: selected,
	}
	if session == nil {
		for _, field := range domain.Fields {
			row.Cells = append(row.Cells, Cell{
				Field:  field,
				Kind:   CellDisplay,
				Value:  task.FieldValue(field),
				Hidden: field == domain.FieldStatus,
			})
		}
		return row
	}

	row.Editing = true
	row.Locked = true
	for _, field := range domain.Fields {
		value, _ := session.Pending(field)
		cell := Cell{Field: field, Value: value}
		switch field.Kind() {
		case domain.KindDate:
			cell.Kind = CellDateInput
		case domain.KindSelect:
			cell.Kind = CellSelect
			cell.Options = slices.Clone(domain.StatusLabels)
		default:
			cell.Kind = CellTextInput
		}
		row.Cells = append(row.Cells, cell)
	}
	return row
}

// Cell returns the cell for one field.
func (r RowView) Cell(field domain.Field) (Cell, bool) {
	for _, cell := range r.Cells {
		if cell.Field == field {
			return cell, true
		}
	}
	return Cell{}, false
}

func headerLabels() []string {
	out := make([]string, 0, len(domain.Fields))
	for _, field := range domain.Fields {
		if label := field.HeaderLabel(); label != "" {
			out = append(out, label)
		}
	}
	return out
}
