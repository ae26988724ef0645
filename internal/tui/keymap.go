package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
)

// keyMap represents key map data used by this package.
type keyMap struct {
	quit       key.Binding
	toggleHelp key.Binding
	moveLeft   key.Binding
	moveRight  key.Binding
	moveUp     key.Binding
	moveDown   key.Binding

	addTask      key.Binding
	toggleSelect key.Binding
	editTasks    key.Binding
	deleteTasks  key.Binding
	validate     key.Binding
	cancel       key.Binding
	taskInfo     key.Binding
	copyTask     key.Binding

	nextField   key.Binding
	prevField   key.Binding
	optionLeft  key.Binding
	optionRight key.Binding
}

// newKeyMap constructs key map.
func newKeyMap() keyMap {
	return keyMap{
		quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		toggleHelp:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		moveLeft:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "list left")),
		moveRight:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "list right")),
		moveUp:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "task up")),
		moveDown:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "task down")),
		addTask:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		toggleSelect: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		editTasks:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit selected")),
		deleteTasks:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete selected")),
		validate:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "validate")),
		cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		taskInfo:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "task info")),
		copyTask:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy task")),
		nextField:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prevField:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		optionLeft:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous status")),
		optionRight:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next status")),
	}
}

// applyConfig overrides the configurable bindings.
func (k *keyMap) applyConfig(cfg KeyConfig) {
	configureBinding(&k.addTask, cfg.Add, "n", "new task")
	configureBinding(&k.editTasks, cfg.Edit, "e", "edit selected")
	configureBinding(&k.deleteTasks, cfg.Delete, "d", "delete selected")
	configureBinding(&k.validate, cfg.Validate, "enter", "validate")
	configureBinding(&k.cancel, cfg.Cancel, "esc", "cancel")
	configureBinding(&k.toggleSelect, cfg.Select, "space", "select")
	configureBinding(&k.taskInfo, cfg.Info, "i", "task info")
	configureBinding(&k.copyTask, cfg.Copy, "y", "copy task")
}

// configureBinding replaces the keys and help of one binding.
func configureBinding(b *key.Binding, raw, fallback, desc string) {
	keys, helpKey := parseBindingKeys(raw, fallback)
	b.SetKeys(keys...)
	b.SetHelp(helpKey, desc)
}

// parseBindingKeys turns a configured key into matcher strings plus its help label.
func parseBindingKeys(raw, fallback string) ([]string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	if raw == "space" || raw == " " {
		return []string{" ", "space"}, "space"
	}
	if utf8.RuneCountInString(raw) == 1 {
		r, _ := utf8.DecodeRuneInString(raw)
		if unicode.IsUpper(r) {
			return []string{raw, "shift+" + string(unicode.ToLower(r))}, raw
		}
		return []string{raw}, raw
	}
	return []string{strings.ToLower(raw)}, raw
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.addTask, k.toggleSelect, k.editTasks, k.deleteTasks, k.taskInfo, k.toggleHelp, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.addTask, k.toggleSelect, k.editTasks, k.deleteTasks, k.taskInfo, k.copyTask, k.toggleHelp, k.quit},
		{k.moveLeft, k.moveRight, k.moveUp, k.moveDown},
		{k.validate, k.cancel, k.nextField, k.prevField, k.optionLeft, k.optionRight},
	}
}

// editKeyMap exposes the bindings that apply while rows are being edited.
type editKeyMap struct {
	keys keyMap
}

// ShortHelp handles short help.
func (e editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{e.keys.validate, e.keys.cancel, e.keys.nextField, e.keys.prevField, e.keys.optionLeft, e.keys.optionRight}
}

// FullHelp handles full help.
func (e editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{e.ShortHelp()}
}
