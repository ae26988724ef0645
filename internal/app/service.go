package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/evanschultz/tasklane/internal/domain"
)

// IDGenerator returns unique identifiers for new entities.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// ServiceConfig holds configuration for service.
type ServiceConfig struct {
	// PreselectStatus seeds the status control with the row's current status when editing starts.
	PreselectStatus bool
	Logger          Logger
}

// Service owns the board: list membership, row selection and edit sessions.
type Service struct {
	mu sync.Mutex

	repo      Repository
	idGen     IDGenerator
	clock     Clock
	log       Logger
	preselect bool

	selected map[string]struct{}
	sessions map[string]*EditSession
}

// NewService constructs a new value for this package.
func NewService(repo Repository, idGen IDGenerator, clock Clock, cfg ServiceConfig) *Service {
	if idGen == nil {
		idGen = func() string { return "" }
	}
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	return &Service{
		repo:      repo,
		idGen:     idGen,
		clock:     clock,
		log:       logger,
		preselect: cfg.PreselectStatus,
		selected:  map[string]struct{}{},
		sessions:  map[string]*EditSession{},
	}
}

// AddTaskInput holds the add-task form fields. Deadline is an ISO YYYY-MM-DD date.
type AddTaskInput struct {
	Title    string
	Tag      string
	Deadline string
}

// AddTask creates a task at the end of the To-Do list.
func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(domain.TaskInput{
		ID:       s.idGen(),
		Title:    in.Title,
		Tag:      in.Tag,
		Deadline: in.Deadline,
	}, s.clock())
	if err != nil {
		return domain.Task{}, err
	}
	position, err := s.nextPosition(ctx, domain.StatusTodo)
	if err != nil {
		return domain.Task{}, err
	}
	task.Position = position
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	s.log.Info("task added", "task_id", task.ID, "title", task.Title, "due", task.DueDate)
	return task, nil
}

// ToggleSelect flips the checkbox of one row and returns the new state.
func (s *Service) ToggleSelect(ctx context.Context, taskID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.GetTask(ctx, taskID); err != nil {
		return false, err
	}
	if _, editing := s.sessions[taskID]; editing {
		return true, ErrRowLocked
	}
	if _, ok := s.selected[taskID]; ok {
		delete(s.selected, taskID)
		return false, nil
	}
	s.selected[taskID] = struct{}{}
	return true, nil
}

// SelectedTasks scans every list and returns the checked rows in board order.
func (s *Service) SelectedTasks(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedTasks(ctx)
}

// BeginEdit switches every selected row without a session into editing.
func (s *Service) BeginEdit(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, err := s.selectedTasks(ctx)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		s.log.Warn("edit requested without selection")
		return nil, ErrNoSelection
	}
	started := make([]string, 0, len(selected))
	for _, task := range selected {
		if _, ok := s.sessions[task.ID]; ok {
			continue
		}
		s.sessions[task.ID] = newEditSession(task, s.preselect)
		started = append(started, task.ID)
		s.log.Debug("edit session opened", "task_id", task.ID, "status", task.Status)
	}
	s.log.Info("edit started", "rows", len(started), "active_sessions", len(s.sessions))
	return started, nil
}

// ChangeField records a pending value for one field of a row being edited.
// It reports false when no session entry matches the event.
func (s *Service) ChangeField(_ context.Context, taskID string, field domain.Field, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[taskID]
	if !ok {
		s.log.Debug("change event ignored", "task_id", taskID, "field", field)
		return false, nil
	}
	if !session.apply(field, value) {
		s.log.Debug("change event unmatched", "task_id", taskID, "field", field)
		return false, nil
	}
	return true, nil
}

// Cancel discards every active edit session and restores the display values.
func (s *Service) Cancel(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) == 0 {
		return nil, ErrNoActiveEdit
	}
	ids, err := s.sessionIDsInBoardOrder(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		delete(s.sessions, id)
		delete(s.selected, id)
		s.log.Debug("edit session discarded", "task_id", id)
	}
	s.log.Info("edit cancelled", "rows", len(ids))
	return ids, nil
}

// Validate commits every active edit session, relocating rows whose status changed.
// All rows are staged before any write, so a read failure commits nothing. The store
// has no transactions: when a write fails, rows already written stay committed with
// their sessions closed, and the rest keep their sessions for another attempt.
func (s *Service) Validate(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) == 0 {
		return nil, ErrNoActiveEdit
	}
	ids, err := s.sessionIDsInBoardOrder(ctx)
	if err != nil {
		return nil, err
	}
	staged := make([]domain.Task, 0, len(ids))
	var missing []string
	next := map[domain.Status]int{}
	for _, id := range ids {
		task, ok, err := s.stageCommit(ctx, id, next)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, id)
			continue
		}
		staged = append(staged, task)
	}
	for _, id := range missing {
		s.log.Warn("edit session dropped for missing task", "task_id", id)
		s.closeSession(id)
	}

	committed := make([]string, 0, len(staged))
	for _, task := range staged {
		if err := s.repo.UpdateTask(ctx, task); err != nil {
			s.log.Error("edit validate interrupted", "task_id", task.ID, "committed", len(committed), "err", err)
			return committed, fmt.Errorf("update task %s: %w", task.ID, err)
		}
		s.closeSession(task.ID)
		committed = append(committed, task.ID)
		s.log.Debug("edit session committed", "task_id", task.ID, "status", task.Status)
	}
	s.log.Info("edit validated", "rows", len(committed))
	return committed, nil
}

// Delete removes every selected row. Deletion is refused while an edit is active.
func (s *Service) Delete(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, err := s.selectedTasks(ctx)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		s.log.Warn("delete requested without selection")
		return nil, ErrNoSelection
	}
	if len(s.sessions) > 0 {
		s.log.Warn("delete refused while editing", "active_sessions", len(s.sessions))
		return nil, ErrEditInProgress
	}
	removed := make([]string, 0, len(selected))
	for _, task := range selected {
		if err := s.repo.DeleteTask(ctx, task.ID); err != nil {
			return removed, fmt.Errorf("delete task %s: %w", task.ID, err)
		}
		delete(s.selected, task.ID)
		removed = append(removed, task.ID)
	}
	s.log.Info("tasks deleted", "rows", len(removed))
	return removed, nil
}

// Editing reports whether any edit session is active.
func (s *Service) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions) > 0
}

// Affordances returns the current state of the four action buttons.
func (s *Service) Affordances() Affordances {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AffordancesFor(len(s.sessions) > 0)
}

// Session returns a copy of the edit session of one row.
func (s *Service) Session(taskID string) (EditSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[taskID]
	if !ok {
		return EditSession{}, false
	}
	return session.clone(), true
}

// Board renders all three lists.
func (s *Service) Board(ctx context.Context) (Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := Board{
		Lists:       make([]ListView, 0, len(domain.Statuses)),
		Affordances: AffordancesFor(len(s.sessions) > 0),
		Editing:     len(s.sessions) > 0,
	}
	for _, status := range domain.Statuses {
		tasks, err := s.repo.ListTasks(ctx, status)
		if err != nil {
			return Board{}, fmt.Errorf("list %s tasks: %w", status, err)
		}
		list := ListView{Status: status, Rows: make([]RowView, 0, len(tasks))}
		for _, task := range tasks {
			_, selected := s.selected[task.ID]
			list.Rows = append(list.Rows, RenderRow(task, selected, s.sessions[task.ID]))
		}
		board.Lists = append(board.Lists, list)
	}
	return board, nil
}

// GetTask returns one task.
func (s *Service) GetTask(ctx context.Context, taskID string) (domain.Task, error) {
	return s.repo.GetTask(ctx, taskID)
}

// stageCommit applies one session to a copy of its task without writing it.
// next carries the position handed to the previous row moved into each list.
// ok is false when the task no longer exists.
func (s *Service) stageCommit(ctx context.Context, taskID string, next map[domain.Status]int) (domain.Task, bool, error) {
	session := s.sessions[taskID]
	task, err := s.repo.GetTask(ctx, taskID)
	if errors.Is(err, ErrNotFound) {
		return domain.Task{}, false, nil
	}
	if err != nil {
		return domain.Task{}, false, err
	}

	now := s.clock()
	statusLabel, _ := session.Pending(domain.FieldStatus)
	if target, ok := domain.ParseStatusLabel(statusLabel); ok && target != task.Status {
		position, seen := next[target]
		if !seen {
			if position, err = s.nextPosition(ctx, target); err != nil {
				return domain.Task{}, false, err
			}
		}
		if err := task.Move(target, position, now); err != nil {
			return domain.Task{}, false, err
		}
		next[target] = position + 1
	} else if !ok {
		s.log.Debug("status unrecognized, row kept in place", "task_id", taskID, "status_label", statusLabel)
	}

	title, _ := session.Committed(domain.FieldTitle)
	tag, _ := session.Committed(domain.FieldTag)
	due, _ := session.Committed(domain.FieldDueDate)
	task.UpdateDetails(title, tag, due, now)
	return task, true, nil
}

// closeSession ends the edit and selection of one row. Callers hold mu.
func (s *Service) closeSession(taskID string) {
	delete(s.sessions, taskID)
	delete(s.selected, taskID)
}

// selectedTasks scans all lists for checked rows. Callers hold mu.
func (s *Service) selectedTasks(ctx context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, 0, len(s.selected))
	if len(s.selected) == 0 {
		return out, nil
	}
	for _, status := range domain.Statuses {
		tasks, err := s.repo.ListTasks(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("list %s tasks: %w", status, err)
		}
		for _, task := range tasks {
			if _, ok := s.selected[task.ID]; ok {
				out = append(out, task)
			}
		}
	}
	return out, nil
}

// sessionIDsInBoardOrder lists the rows with a session in board order. Callers hold mu.
func (s *Service) sessionIDsInBoardOrder(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.sessions))
	seen := make(map[string]struct{}, len(s.sessions))
	for _, status := range domain.Statuses {
		tasks, err := s.repo.ListTasks(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("list %s tasks: %w", status, err)
		}
		for _, task := range tasks {
			if _, ok := s.sessions[task.ID]; ok {
				ids = append(ids, task.ID)
				seen[task.ID] = struct{}{}
			}
		}
	}
	for id := range s.sessions {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// nextPosition returns the append position of a list.
func (s *Service) nextPosition(ctx context.Context, status domain.Status) (int, error) {
	tasks, err := s.repo.ListTasks(ctx, status)
	if err != nil {
		return 0, fmt.Errorf("list %s tasks: %w", status, err)
	}
	pos := 0
	for _, task := range tasks {
		if task.Position >= pos {
			pos = task.Position + 1
		}
	}
	return pos, nil
}
