package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type AssignmentsStore interface {
	CreateAssignment(ctx context.Context, a *Assignment) (int64, error)
	GetAssignment(ctx context.Context, id int64) (*Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) error
	ListTaskAssignments(ctx context.Context, taskID int64) ([]AssignmentView, error)
	DeleteTaskAssignments(ctx context.Context, taskIDs []int64) (int64, error)
	DeletePersonAssignments(ctx context.Context, personID int64) (int64, error)
}

type assignmentsStore struct {
	db DBTX
}

func NewAssignmentsStore(db DBTX) AssignmentsStore {
	return &assignmentsStore{db: db}
}

func (s *assignmentsStore) CreateAssignment(ctx context.Context, a *Assignment) (int64, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	var id int64
	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO assignments(task_id, person_id, responsibility, created_at)
		VALUES($1,$2,$3,$4)
		RETURNING id`, a.TaskID, a.PersonID, a.Responsibility, now).Scan(&id); err != nil {
		return 0, err
	}
	a.ID = id
	return id, nil
}

func (s *assignmentsStore) GetAssignment(ctx context.Context, id int64) (*Assignment, error) {
	var a Assignment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, task_id, person_id, responsibility, created_at FROM assignments WHERE id=$1`, id).
		Scan(&a.ID, &a.TaskID, &a.PersonID, &a.Responsibility, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (s *assignmentsStore) DeleteAssignment(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM assignments WHERE id=$1`, id)
	return err
}

// ListTaskAssignments joins people loosely: a missing person leaves the name empty.
// RoleLabel is left for the caller to resolve.
func (s *assignmentsStore) ListTaskAssignments(ctx context.Context, taskID int64) ([]AssignmentView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.task_id, a.person_id, COALESCE(p.name, ''), p.affiliation, a.responsibility
		FROM assignments a
		LEFT JOIN people p ON p.id=a.person_id
		WHERE a.task_id=$1
		ORDER BY a.id`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []AssignmentView{}
	for rows.Next() {
		var v AssignmentView
		var affiliation sql.NullString
		if err := rows.Scan(&v.ID, &v.TaskID, &v.PersonID, &v.Name, &affiliation, &v.Responsibility); err != nil {
			return nil, err
		}
		v.Affiliation = stringPtr(affiliation)
		res = append(res, v)
	}
	return res, rows.Err()
}

func (s *assignmentsStore) DeleteTaskAssignments(ctx context.Context, taskIDs []int64) (int64, error) {
	var total int64
	for _, id := range taskIDs {
		res, err := s.db.ExecContext(ctx, `DELETE FROM assignments WHERE task_id=$1`, id)
		if err != nil {
			return total, err
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

func (s *assignmentsStore) DeletePersonAssignments(ctx context.Context, personID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assignments WHERE person_id=$1`, personID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
