package app

import (
	"context"

	"github.com/evanschultz/tasklane/internal/domain"
)

// Repository holds the three board lists. Tasks of one status are ordered by Position.
type Repository interface {
	CreateTask(context.Context, domain.Task) error
	UpdateTask(context.Context, domain.Task) error
	GetTask(context.Context, string) (domain.Task, error)
	ListTasks(context.Context, domain.Status) ([]domain.Task, error)
	DeleteTask(context.Context, string) error
}

// Logger receives structured service events.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// nopLogger discards every event.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
