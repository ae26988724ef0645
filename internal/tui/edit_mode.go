package tui

import (
	"context"
	"slices"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/evanschultz/tasklane/internal/app"
	"github.com/evanschultz/tasklane/internal/domain"
)

// editTarget addresses one editable cell of a row being edited.
type editTarget struct {
	taskID string
	field  domain.Field
}

// syncEditors rebuilds the editor set from the board, keeping inputs that survive.
func (m *Model) syncEditors() tea.Cmd {
	var focused editTarget
	hadFocus := false
	if m.editFocus >= 0 && m.editFocus < len(m.editTargets) {
		focused = m.editTargets[m.editFocus]
		hadFocus = true
	}

	targets := []editTarget{}
	inputs := map[editTarget]textinput.Model{}
	choices := map[editTarget]string{}
	for _, list := range m.board.Lists {
		for _, row := range list.Rows {
			if !row.Editing {
				continue
			}
			for _, cell := range row.Cells {
				target := editTarget{taskID: row.TaskID, field: cell.Field}
				switch cell.Kind {
				case app.CellTextInput, app.CellDateInput:
					in, ok := m.editInputs[target]
					if !ok {
						in = newEditInput(cell)
					}
					inputs[target] = in
				case app.CellSelect:
					choices[target] = cell.Value
				default:
					continue
				}
				targets = append(targets, target)
			}
		}
	}
	m.editTargets = targets
	m.editInputs = inputs
	m.editChoices = choices

	idx := 0
	if hadFocus {
		if found := slices.Index(targets, focused); found >= 0 {
			idx = found
		}
	}
	return m.focusEditTarget(idx)
}

// clearEditors drops every editor after a validate or cancel.
func (m *Model) clearEditors() {
	m.editTargets = nil
	m.editFocus = 0
	m.editInputs = map[editTarget]textinput.Model{}
	m.editChoices = map[editTarget]string{}
}

// newEditInput seeds one inline editor with the cell's pending value.
func newEditInput(cell app.Cell) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 120
	in.Placeholder = fieldLabel(cell.Field)
	if cell.Kind == app.CellDateInput {
		in.Placeholder = "DD-MM-YYYY"
		in.CharLimit = 10
	}
	in.SetValue(cell.Value)
	in.CursorEnd()
	return in
}

// focusEditTarget moves edit focus and returns the cursor command.
func (m *Model) focusEditTarget(idx int) tea.Cmd {
	if len(m.editTargets) == 0 {
		m.editFocus = 0
		return nil
	}
	m.editFocus = clamp(idx, 0, len(m.editTargets)-1)
	var cmd tea.Cmd
	for target, in := range m.editInputs {
		if target == m.editTargets[m.editFocus] {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
		m.editInputs[target] = in
	}
	m.focusTaskByID(m.editTargets[m.editFocus].taskID)
	return cmd
}

// handleEditModeKey handles keys while at least one row is being edited.
func (m Model) handleEditModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.validate):
		return m.validateEdit()
	case key.Matches(msg, m.keys.cancel):
		return m.cancelEdit()
	case key.Matches(msg, m.keys.nextField):
		return m, m.focusEditTarget(wrapIndex(m.editFocus, 1, len(m.editTargets)))
	case key.Matches(msg, m.keys.prevField):
		return m, m.focusEditTarget(wrapIndex(m.editFocus, -1, len(m.editTargets)))
	}
	if len(m.editTargets) == 0 {
		return m, nil
	}
	target := m.editTargets[clamp(m.editFocus, 0, len(m.editTargets)-1)]
	if _, isSelect := m.editChoices[target]; isSelect {
		switch {
		case key.Matches(msg, m.keys.optionLeft):
			m.cycleChoice(target, -1)
		case key.Matches(msg, m.keys.optionRight), msg.String() == "space":
			m.cycleChoice(target, 1)
		}
		return m, nil
	}

	in, ok := m.editInputs[target]
	if !ok {
		return m, nil
	}
	before := in.Value()
	in, cmd := in.Update(msg)
	m.editInputs[target] = in
	if in.Value() != before {
		m.pushChange(target, in.Value())
	}
	return m, cmd
}

// cycleChoice steps the status control through the three labels.
// An unset control starts from the first or last label.
func (m *Model) cycleChoice(target editTarget, delta int) {
	options := domain.StatusLabels
	idx := slices.Index(options, m.editChoices[target])
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(options) - 1
	default:
		idx = wrapIndex(idx, delta, len(options))
	}
	m.editChoices[target] = options[idx]
	m.pushChange(target, options[idx])
}

// pushChange forwards one change event to the edit session.
func (m *Model) pushChange(target editTarget, value string) {
	if _, err := m.svc.ChangeField(context.Background(), target.taskID, target.field, value); err != nil {
		m.status = "change failed: " + err.Error()
	}
}

// isEditFocused reports whether a cell holds edit focus.
func (m Model) isEditFocused(target editTarget) bool {
	if m.mode != modeEdit || m.editFocus < 0 || m.editFocus >= len(m.editTargets) {
		return false
	}
	return m.editTargets[m.editFocus] == target
}

// editCellView renders the editor of one cell.
func (m Model) editCellView(target editTarget, cell app.Cell) string {
	switch cell.Kind {
	case app.CellSelect:
		choice, ok := m.editChoices[target]
		if !ok {
			choice = cell.Value
		}
		if choice == "" {
			choice = "choose status"
		}
		return "‹ " + choice + " ›"
	case app.CellTextInput, app.CellDateInput:
		if in, ok := m.editInputs[target]; ok {
			return in.View()
		}
	}
	return cell.Value
}

// fieldLabel names a field in edit rows.
func fieldLabel(field domain.Field) string {
	if label := field.HeaderLabel(); label != "" {
		return label
	}
	return "Status"
}
