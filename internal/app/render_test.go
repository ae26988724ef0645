package app

import (
	"slices"
	"testing"
	"time"

	"github.com/evanschultz/tasklane/internal/domain"
)

func TestRenderRowDisplayAndEditVariants(t *testing.T) {
	task, err := domain.NewTask(domain.TaskInput{ID: "t1", Title: "Buy milk", Tag: "errand", Deadline: "2024-03-05"}, time.Now())
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	display := RenderRow(task, true, nil)
	if !slices.Equal(display.Header, []string{"Task", "Tag", "End Date"}) {
		t.Fatalf("unexpected header %#v", display.Header)
	}
	if len(display.Cells) != 4 || !display.Selected || display.Editing {
		t.Fatalf("unexpected display row %#v", display)
	}
	for _, cell := range display.Cells {
		if cell.Kind != CellDisplay {
			t.Fatalf("expected display cell, got %#v", cell)
		}
	}

	session := newEditSession(task, false)
	session.apply(domain.FieldTag, "shopping")
	edit := RenderRow(task, true, session)
	want := map[domain.Field]CellKind{
		domain.FieldTitle:   CellTextInput,
		domain.FieldTag:     CellTextInput,
		domain.FieldDueDate: CellDateInput,
		domain.FieldStatus:  CellSelect,
	}
	for field, kind := range want {
		cell, ok := edit.Cell(field)
		if !ok || cell.Kind != kind {
			t.Fatalf("field %s: got %#v, want kind %s", field, cell, kind)
		}
	}
	tag, _ := edit.Cell(domain.FieldTag)
	status, _ := edit.Cell(domain.FieldStatus)
	if tag.Value != "shopping" || status.Value != "" || status.Hidden {
		t.Fatalf("unexpected edit cells tag=%#v status=%#v", tag, status)
	}
	if original, _ := session.Original(domain.FieldTag); original != "errand" {
		t.Fatalf("expected original tag to be kept, got %q", original)
	}
}

func TestEditSessionRoutesSelectEvents(t *testing.T) {
	task, err := domain.NewTask(domain.TaskInput{ID: "t1", Title: "one"}, time.Now())
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	session := newEditSession(task, true)
	if !session.apply(domain.FieldStatus, domain.LabelInProgress) {
		t.Fatal("expected status event to match")
	}
	if got, _ := session.Pending(domain.FieldStatus); got != domain.LabelInProgress {
		t.Fatalf("unexpected pending status %q", got)
	}
	clone := session.clone()
	clone.Entries[0].Pending = "mutated"
	if got, _ := session.Pending(domain.FieldTitle); got != "one" {
		t.Fatalf("clone leaked into session, got %q", got)
	}
}

func TestAffordancesFor(t *testing.T) {
	idle := AffordancesFor(false)
	if !idle.Edit.Enabled || !idle.Delete.Enabled || idle.Validate.Visible || idle.Cancel.Visible {
		t.Fatalf("unexpected idle affordances %#v", idle)
	}
	editing := AffordancesFor(true)
	if editing.Edit.Enabled || editing.Delete.Enabled || !editing.Validate.Enabled || !editing.Cancel.Enabled {
		t.Fatalf("unexpected editing affordances %#v", editing)
	}
}
