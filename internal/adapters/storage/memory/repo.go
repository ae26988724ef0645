// Package memory keeps the board lists in process memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/evanschultz/tasklane/internal/app"
	"github.com/evanschultz/tasklane/internal/domain"
)

// Repository stores tasks in a map keyed by id.
type Repository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{tasks: map[string]domain.Task{}}
}

// CreateTask stores a new task.
func (r *Repository) CreateTask(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; ok {
		return domain.ErrInvalidID
	}
	r.tasks[task.ID] = task
	return nil
}

// UpdateTask replaces a stored task, moving it between lists when its status changed.
func (r *Repository) UpdateTask(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return app.ErrNotFound
	}
	r.tasks[task.ID] = task
	return nil
}

// GetTask returns one task.
func (r *Repository) GetTask(_ context.Context, id string) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, app.ErrNotFound
	}
	return task, nil
}

// ListTasks returns the tasks of one list ordered by position.
func (r *Repository) ListTasks(_ context.Context, status domain.Status) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Task, 0)
	for _, task := range r.tasks {
		if task.Status == status {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position == out[j].Position {
			if out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].ID < out[j].ID
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Position < out[j].Position
	})
	return out, nil
}

// DeleteTask removes one task permanently.
func (r *Repository) DeleteTask(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return app.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
