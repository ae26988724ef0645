package tui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/evanschultz/tasklane/internal/app"
	"github.com/evanschultz/tasklane/internal/domain"
)

// Service represents service data used by this package.
type Service interface {
	AddTask(context.Context, app.AddTaskInput) (domain.Task, error)
	ToggleSelect(context.Context, string) (bool, error)
	BeginEdit(context.Context) ([]string, error)
	ChangeField(context.Context, string, domain.Field, string) (bool, error)
	Cancel(context.Context) ([]string, error)
	Validate(context.Context) ([]string, error)
	Delete(context.Context) ([]string, error)
	Board(context.Context) (app.Board, error)
	GetTask(context.Context, string) (domain.Task, error)
}

// inputMode represents a selectable mode.
type inputMode int

// modeNone and related constants define package defaults.
const (
	modeNone inputMode = iota
	modeAddTask
	modeEdit
	modeAlert
	modeTaskInfo
)

// addFormFields stores add-form field keys in display order.
var addFormFields = []string{"task", "tag", "deadline"}

const (
	addFieldTitle = iota
	addFieldTag
	addFieldDeadline
)

type Model struct {
	svc Service

	ready  bool
	width  int
	height int
	err    error

	status string

	help   help.Model
	keys   keyMap
	titles ListTitles

	board              app.Board
	selectedList       int
	selectedRow        int
	pendingFocusTaskID string

	mode  inputMode
	alert string

	formInputs []textinput.Model
	formFocus  int

	editTargets []editTarget
	editFocus   int
	editInputs  map[editTarget]textinput.Model
	editChoices map[editTarget]string

	infoTask domain.Task
	markdown *markdownRenderer
	copyText ClipboardWriter
}

// loadedMsg carries a freshly rendered board.
type loadedMsg struct {
	board app.Board
	err   error
}

// NewModel constructs a new value for this package.
func NewModel(svc Service, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false
	m := Model{
		svc:         svc,
		status:      "loading...",
		help:        h,
		keys:        newKeyMap(),
		titles:      DefaultListTitles(),
		editInputs:  map[editTarget]textinput.Model{},
		editChoices: map[editTarget]string{},
		markdown:    &markdownRenderer{},
		copyText:    defaultClipboard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return m.loadData
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(max(0, msg.Width-2))
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.board = msg.board
		cmd := m.syncEditors()
		switch {
		case m.board.Editing && m.mode == modeNone:
			m.mode = modeEdit
		case !m.board.Editing && m.mode == modeEdit:
			m.mode = modeNone
		}
		m.clampSelection()
		if m.pendingFocusTaskID != "" {
			m.focusTaskByID(m.pendingFocusTaskID)
			m.pendingFocusTaskID = ""
		}
		if m.status == "" || m.status == "loading..." {
			m.status = "ready"
		}
		return m, cmd

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAddTask:
			return m.handleAddFormKey(msg)
		case modeEdit:
			return m.handleEditModeKey(msg)
		case modeAlert:
			return m.handleAlertKey(msg)
		case modeTaskInfo:
			return m.handleTaskInfoKey(msg)
		default:
			return m.handleNormalModeKey(msg)
		}

	default:
		return m, nil
	}
}

// loadData loads required data for the current operation.
func (m Model) loadData() tea.Msg {
	board, err := m.svc.Board(context.Background())
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{board: board}
}

// applyRuntimeConfig applies config-driven keys and titles.
func (m *Model) applyRuntimeConfig(cfg RuntimeConfig) {
	m.keys.applyConfig(cfg.Keys)
	m.titles = cfg.Titles
}

// handleNormalModeKey handles board navigation and the row actions.
func (m Model) handleNormalModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.moveLeft):
		m.selectedList = clamp(m.selectedList-1, 0, len(m.board.Lists)-1)
		m.clampSelection()
		return m, nil
	case key.Matches(msg, m.keys.moveRight):
		m.selectedList = clamp(m.selectedList+1, 0, len(m.board.Lists)-1)
		m.clampSelection()
		return m, nil
	case key.Matches(msg, m.keys.moveUp):
		m.selectedRow--
		m.clampSelection()
		return m, nil
	case key.Matches(msg, m.keys.moveDown):
		m.selectedRow++
		m.clampSelection()
		return m, nil
	case key.Matches(msg, m.keys.addTask):
		return m, m.startAddForm()
	case key.Matches(msg, m.keys.toggleSelect):
		return m.toggleSelection()
	case key.Matches(msg, m.keys.editTasks):
		return m.beginEdit()
	case key.Matches(msg, m.keys.deleteTasks):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.validate):
		return m.validateEdit()
	case key.Matches(msg, m.keys.cancel):
		return m.cancelEdit()
	case key.Matches(msg, m.keys.taskInfo):
		return m.openTaskInfo()
	case key.Matches(msg, m.keys.copyTask):
		return m.copyCurrentTask()
	default:
		return m, nil
	}
}

// startAddForm opens the add-task form with empty inputs.
func (m *Model) startAddForm() tea.Cmd {
	m.mode = modeAddTask
	m.status = "new task"
	m.formInputs = []textinput.Model{
		newFormInput("task: ", "what needs doing", 120),
		newFormInput("tag: ", "optional", 40),
		newFormInput("deadline: ", "YYYY-MM-DD", 10),
	}
	return m.focusFormField(addFieldTitle)
}

// newFormInput builds one add-form input.
func newFormInput(prompt, placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = limit
	return in
}

// focusFormField moves form focus and returns the cursor command.
func (m *Model) focusFormField(idx int) tea.Cmd {
	if len(m.formInputs) == 0 {
		return nil
	}
	m.formFocus = clamp(idx, 0, len(m.formInputs)-1)
	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
	return m.formInputs[m.formFocus].Focus()
}

// handleAddFormKey handles keys while the add-task form is open.
func (m Model) handleAddFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNone
		m.formInputs = nil
		m.status = "add cancelled"
		return m, nil
	case "tab", "down":
		return m, m.focusFormField(wrapIndex(m.formFocus, 1, len(m.formInputs)))
	case "shift+tab", "up":
		return m, m.focusFormField(wrapIndex(m.formFocus, -1, len(m.formInputs)))
	case "enter":
		return m.submitAddForm()
	}
	if len(m.formInputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

// submitAddForm creates a To-Do task from the form values.
func (m Model) submitAddForm() (tea.Model, tea.Cmd) {
	vals := map[string]string{}
	for idx, name := range addFormFields {
		if idx < len(m.formInputs) {
			vals[name] = strings.TrimSpace(m.formInputs[idx].Value())
		}
	}
	if vals["task"] == "" {
		m.status = "task title is required"
		return m, m.focusFormField(addFieldTitle)
	}
	task, err := m.svc.AddTask(context.Background(), app.AddTaskInput{
		Title:    vals["task"],
		Tag:      vals["tag"],
		Deadline: vals["deadline"],
	})
	if err != nil {
		m.status = "add failed: " + err.Error()
		return m, nil
	}
	m.mode = modeNone
	m.formInputs = nil
	m.pendingFocusTaskID = task.ID
	m.status = "task added"
	return m, m.loadData
}

// toggleSelection flips the checkbox of the row under the cursor.
func (m Model) toggleSelection() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		m.status = "no task to select"
		return m, nil
	}
	checked, err := m.svc.ToggleSelect(context.Background(), row.TaskID)
	switch {
	case errors.Is(err, app.ErrRowLocked):
		m.status = "task is being edited"
		return m, nil
	case err != nil:
		m.status = "select failed: " + err.Error()
		return m, nil
	case checked:
		m.status = "selected"
	default:
		m.status = "unselected"
	}
	return m, m.loadData
}

// beginEdit switches every selected row into editing.
func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	started, err := m.svc.BeginEdit(context.Background())
	if errors.Is(err, app.ErrNoSelection) {
		m.openAlert(app.SelectionRequiredMessage)
		return m, nil
	}
	if err != nil {
		m.status = "edit failed: " + err.Error()
		return m, nil
	}
	m.mode = modeEdit
	m.editFocus = 0
	m.status = fmt.Sprintf("editing %d %s", len(started), plural(len(started), "task", "tasks"))
	return m, m.loadData
}

// deleteSelected removes every selected row.
func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	removed, err := m.svc.Delete(context.Background())
	switch {
	case errors.Is(err, app.ErrNoSelection):
		m.openAlert(app.SelectionRequiredMessage)
		return m, nil
	case errors.Is(err, app.ErrEditInProgress):
		m.status = "validate or cancel the edit before deleting"
		return m, nil
	case err != nil:
		m.status = "delete failed: " + err.Error()
		return m, m.loadData
	}
	m.status = fmt.Sprintf("deleted %d %s", len(removed), plural(len(removed), "task", "tasks"))
	return m, m.loadData
}

// validateEdit commits every active edit session.
func (m Model) validateEdit() (tea.Model, tea.Cmd) {
	committed, err := m.svc.Validate(context.Background())
	if errors.Is(err, app.ErrNoActiveEdit) {
		m.status = "no edit in progress"
		return m, nil
	}
	if err != nil {
		m.status = "validate failed: " + err.Error()
		return m, m.loadData
	}
	m.clearEditors()
	m.mode = modeNone
	if len(committed) > 0 {
		m.pendingFocusTaskID = committed[0]
	}
	m.status = fmt.Sprintf("validated %d %s", len(committed), plural(len(committed), "task", "tasks"))
	return m, m.loadData
}

// cancelEdit discards every active edit session.
func (m Model) cancelEdit() (tea.Model, tea.Cmd) {
	cancelled, err := m.svc.Cancel(context.Background())
	if errors.Is(err, app.ErrNoActiveEdit) {
		m.status = "no edit in progress"
		return m, nil
	}
	if err != nil {
		m.status = "cancel failed: " + err.Error()
		return m, m.loadData
	}
	m.clearEditors()
	m.mode = modeNone
	m.status = fmt.Sprintf("cancelled %d %s", len(cancelled), plural(len(cancelled), "edit", "edits"))
	return m, m.loadData
}

// openAlert shows a blocking notification.
func (m *Model) openAlert(message string) {
	m.mode = modeAlert
	m.alert = message
	m.status = message
}

// handleAlertKey dismisses the notification.
func (m Model) handleAlertKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q", " ", "space":
		m.alert = ""
		m.mode = m.restingMode()
		return m, nil
	}
	return m, nil
}

// openTaskInfo shows the task under the cursor as rendered markdown.
func (m Model) openTaskInfo() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		m.status = "no task selected"
		return m, nil
	}
	task, err := m.svc.GetTask(context.Background(), row.TaskID)
	if err != nil {
		m.status = "task info failed: " + err.Error()
		return m, nil
	}
	m.infoTask = task
	m.mode = modeTaskInfo
	m.status = "task info"
	return m, nil
}

// handleTaskInfoKey closes the info overlay.
func (m Model) handleTaskInfoKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc", msg.String() == "q", key.Matches(msg, m.keys.taskInfo):
		m.mode = m.restingMode()
		m.infoTask = domain.Task{}
		m.status = "ready"
		return m, nil
	case key.Matches(msg, m.keys.copyTask):
		return m.copyTask(m.infoTask)
	}
	return m, nil
}

// copyCurrentTask copies the task under the cursor.
func (m Model) copyCurrentTask() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		m.status = "no task to copy"
		return m, nil
	}
	task, err := m.svc.GetTask(context.Background(), row.TaskID)
	if err != nil {
		m.status = "copy failed: " + err.Error()
		return m, nil
	}
	return m.copyTask(task)
}

func (m Model) copyTask(task domain.Task) (tea.Model, tea.Cmd) {
	if err := m.copyText(taskClipboardText(task)); err != nil {
		m.status = "copy failed: " + err.Error()
		return m, nil
	}
	m.status = "copied to clipboard"
	return m, nil
}

// restingMode is the mode to return to once an overlay closes.
func (m Model) restingMode() inputMode {
	if m.board.Editing {
		return modeEdit
	}
	return modeNone
}

// currentList returns the list under the cursor.
func (m Model) currentList() (app.ListView, bool) {
	if len(m.board.Lists) == 0 {
		return app.ListView{}, false
	}
	return m.board.Lists[clamp(m.selectedList, 0, len(m.board.Lists)-1)], true
}

// currentRow returns the row under the cursor.
func (m Model) currentRow() (app.RowView, bool) {
	list, ok := m.currentList()
	if !ok || len(list.Rows) == 0 {
		return app.RowView{}, false
	}
	return list.Rows[clamp(m.selectedRow, 0, len(list.Rows)-1)], true
}

// clampSelection keeps the cursor on an existing row.
func (m *Model) clampSelection() {
	m.selectedList = clamp(m.selectedList, 0, len(m.board.Lists)-1)
	list, ok := m.currentList()
	if !ok {
		m.selectedRow = 0
		return
	}
	m.selectedRow = clamp(m.selectedRow, 0, len(list.Rows)-1)
}

// focusTaskByID moves the cursor to one row, wherever it lives.
func (m *Model) focusTaskByID(taskID string) bool {
	for listIdx, list := range m.board.Lists {
		for rowIdx, row := range list.Rows {
			if row.TaskID == taskID {
				m.selectedList = listIdx
				m.selectedRow = rowIdx
				return true
			}
		}
	}
	return false
}

// selectedCount counts checked rows on the board.
func (m Model) selectedCount() int {
	count := 0
	for _, list := range m.board.Lists {
		for _, row := range list.Rows {
			if row.Selected {
				count++
			}
		}
	}
	return count
}

// View handles view.
func (m Model) View() tea.View {
	if m.err != nil {
		v := tea.NewView("error: " + m.err.Error() + "\n\npress q to quit\n")
		v.AltScreen = true
		return v
	}
	if !m.ready {
		v := tea.NewView("loading...")
		v.AltScreen = true
		return v
	}

	accent := lipgloss.Color("62")
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	statusStyle := lipgloss.NewStyle().Foreground(dim)

	header := titleStyle.Render("tasklane")
	header += statusStyle.Render("  [" + m.modeLabel() + "]")
	if count := m.selectedCount(); count > 0 {
		header += statusStyle.Render(fmt.Sprintf("  selected: %d", count))
	}

	body := m.renderBoard(accent, muted, dim)
	buttons := renderButtons(m.board.Affordances, m.buttonKeys(), accent, dim)

	sections := []string{header, "", body, buttons}
	if strings.TrimSpace(m.status) != "" && m.status != "ready" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	content := strings.Join(sections, "\n")

	var helpKeys help.KeyMap = m.keys
	if m.mode == modeEdit {
		helpKeys = editKeyMap{keys: m.keys}
	}
	helpLine := lipgloss.NewStyle().
		Foreground(muted).
		BorderTop(true).
		BorderForeground(dim).
		Padding(0, 1).
		Width(max(0, m.width)).
		Render(m.help.View(helpKeys))

	if m.height > 0 {
		content = fitLines(content, max(0, m.height-lipgloss.Height(helpLine)))
	}
	fullContent := content + "\n" + helpLine
	if overlay := m.renderModeOverlay(accent, muted, m.width-8); overlay != "" {
		overlayHeight := lipgloss.Height(fullContent)
		if m.height > 0 {
			overlayHeight = m.height
		}
		fullContent = overlayOnContent(fullContent, overlay, max(1, m.width), max(1, overlayHeight))
	}

	view := tea.NewView(fullContent)
	view.AltScreen = true
	return view
}

// renderBoard renders the three lists side by side.
func (m Model) renderBoard(accent, muted, dim color.Color) string {
	colWidth := m.columnWidth()
	baseColStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1).
		MarginRight(1).
		Width(colWidth)
	selColStyle := baseColStyle.BorderForeground(accent)
	colTitle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle := lipgloss.NewStyle().Foreground(muted).Underline(true)
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	columnViews := make([]string, 0, len(m.board.Lists))
	for listIdx, list := range m.board.Lists {
		lines := []string{colTitle.Render(fmt.Sprintf("%s (%d)", m.titles.title(list.Status), list.Count()))}
		if len(list.Rows) == 0 {
			lines = append(lines, emptyStyle.Render("(empty)"))
		} else {
			lines = append(lines, headerStyle.Render(strings.Join(list.Rows[0].Header, " · ")))
			for rowIdx, row := range list.Rows {
				cursor := listIdx == m.selectedList && rowIdx == m.selectedRow
				lines = append(lines, m.renderRow(row, cursor, colWidth, accent, muted)...)
			}
		}
		content := strings.Join(lines, "\n")
		if listIdx == m.selectedList {
			columnViews = append(columnViews, selColStyle.Render(content))
		} else {
			columnViews = append(columnViews, baseColStyle.Render(content))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columnViews...)
}

// renderRow renders one row in display or edit form.
func (m Model) renderRow(row app.RowView, cursor bool, width int, accent, muted color.Color) []string {
	prefix := "  "
	if cursor {
		prefix = "│ "
	}
	check := "[ ]"
	if row.Selected {
		check = "[x]"
	}
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(muted)
	textWidth := max(1, width-8)

	if !row.Editing {
		title, _ := row.Cell(domain.FieldTitle)
		first := prefix + check + " " + truncate(title.Value, textWidth)
		if cursor {
			first = cursorStyle.Render(first)
		}
		lines := []string{first}
		details := make([]string, 0, 2)
		for _, cell := range row.Cells {
			if cell.Hidden || cell.Field == domain.FieldTitle || strings.TrimSpace(cell.Value) == "" {
				continue
			}
			details = append(details, cell.Value)
		}
		if len(details) > 0 {
			lines = append(lines, "      "+subStyle.Render(truncate(strings.Join(details, " • "), textWidth)))
		}
		return lines
	}

	editStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	first := prefix + "[✎] editing"
	if cursor {
		first = cursorStyle.Render(first)
	}
	lines := []string{first}
	for _, cell := range row.Cells {
		target := editTarget{taskID: row.TaskID, field: cell.Field}
		label := fieldLabel(cell.Field) + ": "
		value := m.editCellView(target, cell)
		line := "      " + label + value
		if m.isEditFocused(target) {
			line = editStyle.Render("    ▸ " + label + value)
		}
		lines = append(lines, line)
	}
	return lines
}

// buttonKeys returns the help key shown on each action button.
func (m Model) buttonKeys() [4]string {
	return [4]string{
		m.keys.editTasks.Help().Key,
		m.keys.deleteTasks.Help().Key,
		m.keys.validate.Help().Key,
		m.keys.cancel.Help().Key,
	}
}

// renderButtons renders the Edit/Delete/Validate/Cancel bar.
func renderButtons(aff app.Affordances, keys [4]string, accent, dim color.Color) string {
	enabledStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		MarginRight(1)
	disabledStyle := enabledStyle.
		BorderForeground(dim).
		Foreground(dim).
		Faint(true)
	buttons := []struct {
		label string
		state app.ButtonState
	}{
		{"Edit", aff.Edit},
		{"Delete", aff.Delete},
		{"Validate", aff.Validate},
		{"Cancel", aff.Cancel},
	}
	out := make([]string, 0, len(buttons))
	for idx, button := range buttons {
		if !button.state.Visible {
			continue
		}
		label := fmt.Sprintf("%s (%s)", button.label, keys[idx])
		if button.state.Enabled {
			out = append(out, enabledStyle.Render(label))
		} else {
			out = append(out, disabledStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

// renderModeOverlay renders the modal of the active mode, if any.
func (m Model) renderModeOverlay(accent, muted color.Color, maxWidth int) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle := lipgloss.NewStyle().Foreground(muted)

	switch m.mode {
	case modeAddTask:
		if maxWidth > 0 {
			boxStyle = boxStyle.Width(clamp(maxWidth, 32, 64))
		}
		lines := []string{titleStyle.Render("New Task")}
		for _, in := range m.formInputs {
			lines = append(lines, in.View())
		}
		lines = append(lines, hintStyle.Render("tab next field • enter add • esc cancel"))
		return boxStyle.Render(strings.Join(lines, "\n"))

	case modeAlert:
		alertStyle := boxStyle.BorderForeground(lipgloss.Color("203"))
		warn := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
		lines := []string{
			warn.Render("! " + m.alert),
			hintStyle.Render("enter/esc dismiss"),
		}
		return alertStyle.Render(strings.Join(lines, "\n"))

	case modeTaskInfo:
		width := 60
		if maxWidth > 0 {
			width = clamp(maxWidth, 24, 76)
			boxStyle = boxStyle.Width(width)
		}
		lines := []string{
			titleStyle.Render("Task Info"),
			m.markdown.render(taskMarkdown(m.infoTask), width-4),
			hintStyle.Render(fmt.Sprintf("%s copy • esc close", m.keys.copyTask.Help().Key)),
		}
		return boxStyle.Render(strings.Join(lines, "\n"))
	}
	return ""
}

// modeLabel returns the header label of the active mode.
func (m Model) modeLabel() string {
	switch m.mode {
	case modeAddTask:
		return "add-task"
	case modeEdit:
		return "editing"
	case modeAlert:
		return "notice"
	case modeTaskInfo:
		return "task-info"
	default:
		return "board"
	}
}

// columnWidth splits the terminal between the lists.
func (m Model) columnWidth() int {
	lists := max(1, len(m.board.Lists))
	w := 30
	if m.width > 0 {
		// per-column overhead: border (2), padding (2), margin (1)
		const colOverhead = 5
		if candidate := (m.width - lists*colOverhead) / lists; candidate > 0 {
			w = candidate
		}
	}
	return clamp(w, 24, 48)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// clamp clamps the requested operation.
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// wrapIndex steps through a ring of total entries.
func wrapIndex(current int, delta int, total int) int {
	if total <= 0 {
		return 0
	}
	next := (current + delta) % total
	if next < 0 {
		next += total
	}
	return next
}

// fitLines fits lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		lines = append(lines, make([]string, maxLines-len(lines))...)
	}
	return strings.Join(lines, "\n")
}

// overlayOnContent centres an overlay above the base content.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}

	base = fitLines(base, height)
	canvas := lipgloss.NewCanvas(width, height)
	baseLayer := lipgloss.NewLayer(base).X(0).Y(0).Z(0)
	centered := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
	overlayLayer := lipgloss.NewLayer(centered).X(0).Y(0).Z(10)

	canvas.Compose(baseLayer)
	canvas.Compose(overlayLayer)
	return canvas.Render()
}

// truncate truncates the requested operation.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	if limit <= 1 {
		return string(rs[:limit])
	}
	return string(rs[:limit-1]) + "…"
}
