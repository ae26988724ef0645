package domain

import (
	"strings"
	"time"
)

type Task struct {
	ID        string
	Title     string
	Tag       string
	DueDate   string
	Status    Status
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaskInput struct {
	ID       string
	Title    string
	Tag      string
	Deadline string
}

// NewTask builds a To-Do task from add-form input. Deadline is an ISO date.
func NewTask(in TaskInput, now time.Time) (Task, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Title = strings.TrimSpace(in.Title)
	in.Tag = strings.TrimSpace(in.Tag)

	if in.ID == "" {
		return Task{}, ErrInvalidID
	}
	if in.Title == "" {
		return Task{}, ErrInvalidTitle
	}

	return Task{
		ID:        in.ID,
		Title:     in.Title,
		Tag:       in.Tag,
		DueDate:   FormatDueDate(in.Deadline),
		Status:    StatusTodo,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// FieldValue returns the display text of one field.
func (t Task) FieldValue(field Field) string {
	switch field {
	case FieldTitle:
		return t.Title
	case FieldTag:
		return t.Tag
	case FieldDueDate:
		return t.DueDate
	case FieldStatus:
		return t.Status.Label()
	default:
		return ""
	}
}

// UpdateDetails commits edited display values. Values pass through untouched apart from trimming.
func (t *Task) UpdateDetails(title, tag, dueDate string, now time.Time) {
	t.Title = strings.TrimSpace(title)
	t.Tag = strings.TrimSpace(tag)
	t.DueDate = strings.TrimSpace(dueDate)
	t.UpdatedAt = now.UTC()
}

func (t *Task) Move(status Status, position int, now time.Time) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if position < 0 {
		return ErrInvalidPosition
	}
	t.Status = status
	t.Position = position
	t.UpdatedAt = now.UTC()
	return nil
}
