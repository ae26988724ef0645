package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/evanschultz/tasklane/internal/domain"
)

// minMarkdownWrap keeps narrow terminals readable.
const minMarkdownWrap = 24

// markdownRenderer caches one glamour renderer per wrap width.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// render converts markdown into styled terminal text. Render failures fall back to the raw markdown.
func (r *markdownRenderer) render(markdown string, width int) string {
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return ""
	}

	wrapWidth := max(width, minMarkdownWrap)
	if r.renderer == nil || r.width != wrapWidth {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrapWidth),
		)
		if err != nil {
			return markdown
		}
		r.renderer = renderer
		r.width = wrapWidth
	}

	rendered, err := r.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(rendered, "\n")
}

// taskMarkdown describes one task for the info overlay.
func taskMarkdown(task domain.Task) string {
	orDash := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "-"
		}
		return v
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", task.Title)
	fmt.Fprintf(&b, "- **%s:** %s\n", domain.FieldTag.HeaderLabel(), orDash(task.Tag))
	fmt.Fprintf(&b, "- **%s:** %s\n", domain.FieldDueDate.HeaderLabel(), orDash(task.DueDate))
	fmt.Fprintf(&b, "- **Status:** %s\n", orDash(task.Status.Label()))
	if !task.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- **Created:** %s\n", task.CreatedAt.Local().Format("02-01-2006 15:04"))
	}
	return b.String()
}

// taskClipboardText is the plain-text form of a task copied to the clipboard.
func taskClipboardText(task domain.Task) string {
	parts := []string{task.Title}
	if tag := strings.TrimSpace(task.Tag); tag != "" {
		parts = append(parts, "#"+tag)
	}
	if due := strings.TrimSpace(task.DueDate); due != "" {
		parts = append(parts, "due "+due)
	}
	parts = append(parts, "["+task.Status.Label()+"]")
	return strings.Join(parts, " ")
}
