package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type RoleTemplatesStore interface {
	CreateRoleTemplate(ctx context.Context, rt *RoleTemplate) (int64, error)
	UpdateRoleTemplate(ctx context.Context, rt *RoleTemplate) error
	DeleteRoleTemplate(ctx context.Context, id int64) error
	GetRoleTemplate(ctx context.Context, id int64) (*RoleTemplate, error)
	FindRoleTemplate(ctx context.Context, key string) (*RoleTemplate, error)
	ListRoleTemplates(ctx context.Context) ([]RoleTemplate, error)
	CountRoleTemplates(ctx context.Context) (int, error)
	// InsertRoleTemplateIfAbsent inserts rt unless its key is already taken and
	// reports whether a row was written.
	InsertRoleTemplateIfAbsent(ctx context.Context, rt *RoleTemplate) (bool, error)
}

type roleTemplatesStore struct {
	db DBTX
}

func NewRoleTemplatesStore(db DBTX) RoleTemplatesStore {
	return &roleTemplatesStore{db: db}
}

const roleTemplateColumns = `id, key, label, sort_order, created_at, updated_at`

func (s *roleTemplatesStore) CreateRoleTemplate(ctx context.Context, rt *RoleTemplate) (int64, error) {
	now := time.Now().UTC()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	var id int64
	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO role_templates(key, label, sort_order, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id`, rt.Key, rt.Label, rt.SortOrder, now, now).Scan(&id); err != nil {
		return 0, err
	}
	rt.ID = id
	return id, nil
}

func (s *roleTemplatesStore) InsertRoleTemplateIfAbsent(ctx context.Context, rt *RoleTemplate) (bool, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO role_templates(key, label, sort_order, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5)
		ON CONFLICT(key) DO NOTHING`, rt.Key, rt.Label, rt.SortOrder, now, now)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *roleTemplatesStore) UpdateRoleTemplate(ctx context.Context, rt *RoleTemplate) error {
	now := time.Now().UTC()
	if _, err := s.db.ExecContext(ctx, `
		UPDATE role_templates SET key=$1, label=$2, sort_order=$3, updated_at=$4 WHERE id=$5`,
		rt.Key, rt.Label, rt.SortOrder, now, rt.ID); err != nil {
		return err
	}
	rt.UpdatedAt = now
	return nil
}

func (s *roleTemplatesStore) DeleteRoleTemplate(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM role_templates WHERE id=$1`, id)
	return err
}

func (s *roleTemplatesStore) GetRoleTemplate(ctx context.Context, id int64) (*RoleTemplate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+roleTemplateColumns+` FROM role_templates WHERE id=$1`, id)
	return scanRoleTemplateRow(row)
}

func (s *roleTemplatesStore) FindRoleTemplate(ctx context.Context, key string) (*RoleTemplate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+roleTemplateColumns+` FROM role_templates WHERE key=$1`, key)
	return scanRoleTemplateRow(row)
}

func (s *roleTemplatesStore) ListRoleTemplates(ctx context.Context) ([]RoleTemplate, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+roleTemplateColumns+` FROM role_templates ORDER BY sort_order, label, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []RoleTemplate{}
	for rows.Next() {
		var rt RoleTemplate
		if err := rows.Scan(&rt.ID, &rt.Key, &rt.Label, &rt.SortOrder, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, rt)
	}
	return res, rows.Err()
}

func (s *roleTemplatesStore) CountRoleTemplates(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM role_templates`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanRoleTemplateRow(row *sql.Row) (*RoleTemplate, error) {
	var rt RoleTemplate
	if err := row.Scan(&rt.ID, &rt.Key, &rt.Label, &rt.SortOrder, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}
