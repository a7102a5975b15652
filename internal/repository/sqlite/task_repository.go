package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"schoolify/internal/domain"
	"schoolify/internal/repository"
)

const (
	createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	name TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'todo' CHECK (status IN ('todo', 'doing', 'done')),
	notes TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`
	createTasksIndex = `CREATE INDEX IF NOT EXISTS idx_tasks_user_date ON tasks (user_id, date, time);`

	selectTask = `
SELECT id, user_id, name, date, time, status, notes, created_at, updated_at
FROM tasks`
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createTasksIndex); err != nil {
		return fmt.Errorf("create tasks index: %w", err)
	}
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	now := time.Now().UTC()
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (id, user_id, name, date, time, status, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		task.UserID,
		task.Name,
		task.Date,
		task.Time,
		string(task.Status),
		task.Notes,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, id string) (*domain.Task, error) {
	return scanTask(r.db.QueryRowContext(ctx, selectTask+` WHERE id=?`, id))
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE tasks
SET name=?, date=?, time=?, status=?, notes=?, updated_at=?
WHERE id=?`,
		task.Name,
		task.Date,
		task.Time,
		string(task.Status),
		task.Notes,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.queryTasks(ctx, selectTask+`
WHERE user_id=?
ORDER BY date ASC, time ASC, created_at ASC`, userID)
}

func (r *TaskRepository) ListByUserAndDate(ctx context.Context, userID, date string) ([]domain.Task, error) {
	return r.queryTasks(ctx, selectTask+`
WHERE user_id=? AND date=?
ORDER BY time ASC, created_at ASC`, userID, date)
}

func (r *TaskRepository) ListDates(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT date
FROM tasks
WHERE user_id=?
ORDER BY date ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query task dates: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan task date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

func scanTask(scanner rowScanner) (*domain.Task, error) {
	var (
		task   domain.Task
		status string
	)

	if err := scanner.Scan(
		&task.ID,
		&task.UserID,
		&task.Name,
		&task.Date,
		&task.Time,
		&status,
		&task.Notes,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}

	task.Status = domain.TaskStatus(status)
	return &task, nil
}
