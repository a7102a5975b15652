package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "todo"
	TaskStatusDoing TaskStatus = "doing"
	TaskStatusDone  TaskStatus = "done"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

// Next returns the status the agenda's one-tap toggle moves to.
// The store itself accepts any transition.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskStatusTodo:
		return TaskStatusDoing
	case TaskStatusDoing:
		return TaskStatusDone
	default:
		return TaskStatusTodo
	}
}

// Task is an agenda entry owned by exactly one user.
type Task struct {
	ID        string
	UserID    string
	Name      string
	Date      string
	Time      string
	Status    TaskStatus
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskUpdate is a partial task change. Name, Date, Time and Status are
// applied only when non-empty; Notes is applied whenever it is non-nil so
// that notes can be cleared.
type TaskUpdate struct {
	Name   *string
	Date   *string
	Time   *string
	Status *TaskStatus
	Notes  *string
}

// Apply merges u into task.
func (u TaskUpdate) Apply(task *Task) {
	if u.Name != nil && *u.Name != "" {
		task.Name = *u.Name
	}
	if u.Date != nil && *u.Date != "" {
		task.Date = *u.Date
	}
	if u.Time != nil && *u.Time != "" {
		task.Time = *u.Time
	}
	if u.Status != nil && *u.Status != "" {
		task.Status = *u.Status
	}
	if u.Notes != nil {
		task.Notes = *u.Notes
	}
}

// MarkedDate is the calendar marker rendered for a day that has tasks.
type MarkedDate struct {
	Marked   bool   `json:"marked"`
	DotColor string `json:"dotColor"`
}

// DefaultDotColor matches the agenda's primary colour.
const DefaultDotColor = "#1565c0"

// MarkDates turns a list of distinct dates into the calendar marker map.
func MarkDates(dates []string) map[string]MarkedDate {
	marked := make(map[string]MarkedDate, len(dates))
	for _, d := range dates {
		marked[d] = MarkedDate{Marked: true, DotColor: DefaultDotColor}
	}
	return marked
}
