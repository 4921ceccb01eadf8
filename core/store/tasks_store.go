package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"
)

type TasksStore interface {
	CreateTask(ctx context.Context, t *Task) (int64, error)
	UpdateTask(ctx context.Context, t *Task) error
	DeleteTask(ctx context.Context, id int64) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context, conferenceID int64, filter TaskFilter) ([]Task, error)
	ListTaskIDs(ctx context.Context, conferenceID int64) ([]int64, error)
	DeleteConferenceTasks(ctx context.Context, conferenceID int64) (int64, error)
	CountTasksByStatus(ctx context.Context, conferenceID int64) (map[string]int, error)
}

type tasksStore struct {
	db DBTX
}

func NewTasksStore(db DBTX) TasksStore {
	return &tasksStore{db: db}
}

const taskColumns = `id, conference_id, task_group, name, description, status, priority, start_date, due_date, created_at, updated_at`

func (s *tasksStore) CreateTask(ctx context.Context, t *Task) (int64, error) {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = t.CreatedAt
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tasks(conference_id, task_group, name, description, status, priority, start_date, due_date, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id`,
		t.ConferenceID, t.TaskGroup, t.Name, nullString(t.Description), t.Status, t.Priority,
		nullableDate(t.StartDate), nullableDate(t.DueDate), t.CreatedAt, t.UpdatedAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

func (s *tasksStore) UpdateTask(ctx context.Context, t *Task) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET task_group=$1, name=$2, description=$3, status=$4, priority=$5, start_date=$6, due_date=$7, updated_at=$8
		WHERE id=$9`,
		t.TaskGroup, t.Name, nullString(t.Description), t.Status, t.Priority,
		nullableDate(t.StartDate), nullableDate(t.DueDate), now, t.ID)
	if err != nil {
		return err
	}
	t.UpdatedAt = now
	return nil
}

func (s *tasksStore) DeleteTask(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id=$1`, id)
	return err
}

func (s *tasksStore) GetTask(ctx context.Context, id int64) (*Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id=$1`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (s *tasksStore) ListTasks(ctx context.Context, conferenceID int64, filter TaskFilter) ([]Task, error) {
	clauses := []string{"conference_id=$1"}
	args := []any{conferenceID}
	if g := strings.TrimSpace(filter.Group); g != "" {
		args = append(args, g)
		clauses = append(clauses, "task_group=$"+strconv.Itoa(len(args)))
	}
	if st := strings.TrimSpace(filter.Status); st != "" {
		args = append(args, st)
		clauses = append(clauses, "status=$"+strconv.Itoa(len(args)))
	}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(clauses, " AND ") + ` ORDER BY updated_at DESC, id DESC`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *t)
	}
	return res, rows.Err()
}

func (s *tasksStore) ListTaskIDs(ctx context.Context, conferenceID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM tasks WHERE conference_id=$1 ORDER BY id`, conferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *tasksStore) DeleteConferenceTasks(ctx context.Context, conferenceID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE conference_id=$1`, conferenceID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *tasksStore) CountTasksByStatus(ctx context.Context, conferenceID int64) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks WHERE conference_id=$1 GROUP BY status`, conferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func scanTask(row rowScanner) (*Task, error) {
	var t Task
	var description sql.NullString
	var startDate, dueDate Date
	if err := row.Scan(&t.ID, &t.ConferenceID, &t.TaskGroup, &t.Name, &description, &t.Status, &t.Priority,
		&startDate, &dueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Description = stringPtr(description)
	if !startDate.IsZero() {
		t.StartDate = &startDate
	}
	if !dueDate.IsZero() {
		t.DueDate = &dueDate
	}
	return &t, nil
}
