package domain

// Status identifies the list a task lives in.
type Status string

// StatusTodo and related constants define the three board lists.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// status labels shown in the status control; the board uses one fixed locale.
const (
	LabelTodo       = "À faire"
	LabelInProgress = "En cours"
	LabelDone       = "Fini"
)

// Statuses lists every status in board order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// StatusLabels lists the status control options in board order.
var StatusLabels = []string{LabelTodo, LabelInProgress, LabelDone}

// Label returns the display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return LabelTodo
	case StatusInProgress:
		return LabelInProgress
	case StatusDone:
		return LabelDone
	default:
		return ""
	}
}

// Valid reports whether s is one of the three board statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Index returns the board position of the status, or -1.
func (s Status) Index() int {
	for idx, status := range Statuses {
		if status == s {
			return idx
		}
	}
	return -1
}

// ParseStatusLabel maps a status control label back to its status.
func ParseStatusLabel(label string) (Status, bool) {
	switch label {
	case LabelTodo:
		return StatusTodo, true
	case LabelInProgress:
		return StatusInProgress, true
	case LabelDone:
		return StatusDone, true
	default:
		return "", false
	}
}
