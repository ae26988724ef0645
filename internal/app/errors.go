package app

import "errors"

// ErrNotFound and related errors describe validation and runtime failures.
var (
	ErrNotFound       = errors.New("not found")
	ErrNoSelection    = errors.New("no task selected")
	ErrNoActiveEdit   = errors.New("no edit in progress")
	ErrEditInProgress = errors.New("edit in progress")
	ErrRowLocked      = errors.New("task is being edited")
)

// SelectionRequiredMessage is the notification shown when edit or delete runs without a selection.
const SelectionRequiredMessage = "please select a task"
