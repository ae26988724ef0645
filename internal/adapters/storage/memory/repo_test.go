package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evanschultz/tasklane/internal/app"
	"github.com/evanschultz/tasklane/internal/domain"
)

func TestRepositoryListsByStatusAndPosition(t *testing.T) {
	ctx := context.Background()
	repo := New()
	now := time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)

	for idx, id := range []string{"b", "a", "c"} {
		task, err := domain.NewTask(domain.TaskInput{ID: id, Title: "task " + id}, now)
		if err != nil {
			t.Fatalf("NewTask() error = %v", err)
		}
		task.Position = 2 - idx
		if err := repo.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
	}
	tasks, err := repo.ListTasks(ctx, domain.StatusTodo)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 3 || tasks[0].ID != "c" || tasks[1].ID != "a" || tasks[2].ID != "b" {
		t.Fatalf("unexpected order %#v", tasks)
	}

	moved := tasks[0]
	if err := moved.Move(domain.StatusDone, 0, now); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if err := repo.UpdateTask(ctx, moved); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	todo, _ := repo.ListTasks(ctx, domain.StatusTodo)
	done, _ := repo.ListTasks(ctx, domain.StatusDone)
	if len(todo) != 2 || len(done) != 1 || done[0].ID != "c" {
		t.Fatalf("unexpected membership todo=%d done=%d", len(todo), len(done))
	}
}

func TestRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := New()
	if _, err := repo.GetTask(ctx, "missing"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.DeleteTask(ctx, "missing"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.UpdateTask(ctx, domain.Task{ID: "missing"}); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepositoryRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := New()
	task := domain.Task{ID: "t1", Title: "one", Status: domain.StatusTodo}
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if err := repo.CreateTask(ctx, task); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
