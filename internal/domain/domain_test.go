package domain

import (
	"testing"
	"time"
)

func TestNewTaskStartsInTodo(t *testing.T) {
	now := time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)
	task, err := NewTask(TaskInput{
		ID:       "t1",
		Title:    "  Buy milk ",
		Tag:      " errand ",
		Deadline: "2024-03-05",
	}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.Title != "Buy milk" || task.Tag != "errand" {
		t.Fatalf("unexpected trimmed fields %q/%q", task.Title, task.Tag)
	}
	if task.DueDate != "05-03-2024" {
		t.Fatalf("unexpected due date %q", task.DueDate)
	}
	if task.Status != StatusTodo {
		t.Fatalf("expected todo status, got %q", task.Status)
	}
	if !task.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at %v", task.CreatedAt)
	}
}

func TestNewTaskValidation(t *testing.T) {
	now := time.Now()
	if _, err := NewTask(TaskInput{ID: "", Title: "ok"}, now); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := NewTask(TaskInput{ID: "t1", Title: "   "}, now); err != ErrInvalidTitle {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
}

func TestFormatDueDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "iso", in: "2024-03-05", want: "05-03-2024"},
		{name: "empty", in: "  ", want: ""},
		{name: "invalid iso falls back to reversed parts", in: "2024-13-40", want: "40-13-2024"},
		{name: "no dashes passes through", in: "tomorrow", want: "tomorrow"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDueDate(tc.in); got != tc.want {
				t.Fatalf("FormatDueDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeDueDate(t *testing.T) {
	if got := NormalizeDueDate("2025-12-31"); got != "31-12-2025" {
		t.Fatalf("unexpected iso normalization %q", got)
	}
	if got := NormalizeDueDate("31-12-2025"); got != "31-12-2025" {
		t.Fatalf("expected display date kept, got %q", got)
	}
	if got := NormalizeDueDate("someday"); got != "someday" {
		t.Fatalf("expected pass-through, got %q", got)
	}
	if _, ok := ParseDisplayDate("31-12-2025"); !ok {
		t.Fatal("expected display date to parse")
	}
	if _, ok := ParseDisplayDate("2025-12-31"); ok {
		t.Fatal("expected iso date to be rejected as display date")
	}
}

func TestStatusLabels(t *testing.T) {
	for _, status := range Statuses {
		parsed, ok := ParseStatusLabel(status.Label())
		if !ok || parsed != status {
			t.Fatalf("label round trip failed for %q", status)
		}
	}
	if _, ok := ParseStatusLabel("A faire"); ok {
		t.Fatal("expected unaccented label to be unrecognized")
	}
	if Status("archived").Valid() {
		t.Fatal("expected unknown status to be invalid")
	}
	if StatusDone.Index() != 2 || Status("x").Index() != -1 {
		t.Fatal("unexpected status index")
	}
}

func TestFieldKinds(t *testing.T) {
	if FieldTitle.Kind() != KindText || FieldTag.Kind() != KindText {
		t.Fatal("expected text editors for title and tag")
	}
	if FieldDueDate.Kind() != KindDate {
		t.Fatal("expected date editor for due date")
	}
	if FieldStatus.Kind() != KindSelect {
		t.Fatal("expected select editor for status")
	}
	if FieldStatus.HeaderLabel() != "" {
		t.Fatal("status has no header label")
	}
}

func TestTaskMutations(t *testing.T) {
	now := time.Now()
	task, err := NewTask(TaskInput{ID: "t1", Title: "draft", Deadline: "2024-01-02"}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	task.UpdateDetails(" final ", "work", " 2024-02-03 ", now.Add(time.Minute))
	if task.Title != "final" || task.Tag != "work" || task.DueDate != "2024-02-03" {
		t.Fatalf("unexpected details %#v", task)
	}
	if err := task.Move(StatusDone, 3, now.Add(2*time.Minute)); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if task.Status != StatusDone || task.Position != 3 {
		t.Fatalf("unexpected move result %#v", task)
	}
	if err := task.Move("nope", 0, now); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := task.Move(StatusTodo, -1, now); err != ErrInvalidPosition {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
	if task.FieldValue(FieldStatus) != LabelDone {
		t.Fatalf("unexpected status field value %q", task.FieldValue(FieldStatus))
	}
}
