package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/evanschultz/tasklane/internal/domain"
)

// KeyConfig holds the configurable key overrides. Blank values keep the defaults.
type KeyConfig struct {
	Add      string
	Edit     string
	Delete   string
	Validate string
	Cancel   string
	Select   string
	Info     string
	Copy     string
}

// ListTitles holds the column headings of the three lists.
type ListTitles struct {
	Todo       string
	InProgress string
	Done       string
}

// RuntimeConfig holds the config-driven settings of the model.
type RuntimeConfig struct {
	Keys   KeyConfig
	Titles ListTitles
}

type Option func(*Model)

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter func(string) error

func DefaultListTitles() ListTitles {
	return ListTitles{
		Todo:       "To-Do",
		InProgress: "In Progress",
		Done:       "Done",
	}
}

func WithRuntimeConfig(cfg RuntimeConfig) Option {
	return func(m *Model) {
		m.applyRuntimeConfig(cfg)
	}
}

func WithClipboard(write ClipboardWriter) Option {
	return func(m *Model) {
		if write != nil {
			m.copyText = write
		}
	}
}

// title returns the heading of one list, falling back to the defaults.
func (t ListTitles) title(status domain.Status) string {
	defaults := DefaultListTitles()
	pick := func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return strings.TrimSpace(v)
	}
	switch status {
	case domain.StatusTodo:
		return pick(t.Todo, defaults.Todo)
	case domain.StatusInProgress:
		return pick(t.InProgress, defaults.InProgress)
	case domain.StatusDone:
		return pick(t.Done, defaults.Done)
	default:
		return string(status)
	}
}

func defaultClipboard() ClipboardWriter {
	return clipboard.WriteAll
}
