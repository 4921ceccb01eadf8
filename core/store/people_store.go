package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

type PeopleStore interface {
	CreatePerson(ctx context.Context, p *Person) (int64, error)
	UpdatePerson(ctx context.Context, p *Person) error
	DeletePerson(ctx context.Context, id int64) error
	GetPerson(ctx context.Context, id int64) (*Person, error)
	ListPeople(ctx context.Context, query string) ([]Person, error)
}

type peopleStore struct {
	db DBTX
}

func NewPeopleStore(db DBTX) PeopleStore {
	return &peopleStore{db: db}
}

const personColumns = `id, name, affiliation, role_title, created_at, updated_at`

func (s *peopleStore) CreatePerson(ctx context.Context, p *Person) (int64, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO people(name, affiliation, role_title, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id`,
		p.Name, nullString(p.Affiliation), nullString(p.RoleTitle), now, now).Scan(&id)
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

func (s *peopleStore) UpdatePerson(ctx context.Context, p *Person) error {
	now := time.Now().UTC()
	if _, err := s.db.ExecContext(ctx, `
		UPDATE people SET name=$1, affiliation=$2, role_title=$3, updated_at=$4 WHERE id=$5`,
		p.Name, nullString(p.Affiliation), nullString(p.RoleTitle), now, p.ID); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

func (s *peopleStore) DeletePerson(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM people WHERE id=$1`, id)
	return err
}

func (s *peopleStore) GetPerson(ctx context.Context, id int64) (*Person, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM people WHERE id=$1`, id)
	p, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// ListPeople returns people ordered by name, optionally narrowed to names containing query.
func (s *peopleStore) ListPeople(ctx context.Context, query string) ([]Person, error) {
	q := `SELECT ` + personColumns + ` FROM people`
	var args []any
	if v := strings.TrimSpace(query); v != "" {
		q += ` WHERE name LIKE $1`
		args = append(args, "%"+escapeLike(v)+"%")
		q += ` ESCAPE '\'`
	}
	q += ` ORDER BY name, id`
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *p)
	}
	return res, rows.Err()
}

func scanPerson(row rowScanner) (*Person, error) {
	var p Person
	var affiliation, roleTitle sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &affiliation, &roleTitle, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Affiliation = stringPtr(affiliation)
	p.RoleTitle = stringPtr(roleTitle)
	return &p, nil
}

func escapeLike(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(v)
}
