package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type ConferencesStore interface {
	CreateConference(ctx context.Context, c *Conference) (int64, error)
	UpdateConference(ctx context.Context, c *Conference) error
	DeleteConference(ctx context.Context, id int64) error
	GetConference(ctx context.Context, id int64) (*Conference, error)
	FindConference(ctx context.Context, year int, name string) (*Conference, error)
	ListConferences(ctx context.Context) ([]Conference, error)
}

type conferencesStore struct {
	db DBTX
}

func NewConferencesStore(db DBTX) ConferencesStore {
	return &conferencesStore{db: db}
}

const conferenceColumns = `id, year, name, theme, start_date, end_date, venue_name, venue_city, timezone, status, created_at, updated_at`

func (s *conferencesStore) CreateConference(ctx context.Context, c *Conference) (int64, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO conferences(year, name, theme, start_date, end_date, venue_name, venue_city, timezone, status, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id`,
		c.Year, c.Name, nullString(c.Theme), c.StartDate.String(), c.EndDate.String(),
		nullString(c.VenueName), nullString(c.VenueCity), c.Timezone, c.Status, now, now).Scan(&id)
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (s *conferencesStore) UpdateConference(ctx context.Context, c *Conference) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		UPDATE conferences
		SET year=$1, name=$2, theme=$3, start_date=$4, end_date=$5, venue_name=$6, venue_city=$7, timezone=$8, status=$9, updated_at=$10
		WHERE id=$11`,
		c.Year, c.Name, nullString(c.Theme), c.StartDate.String(), c.EndDate.String(),
		nullString(c.VenueName), nullString(c.VenueCity), c.Timezone, c.Status, now, c.ID)
	if err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}

func (s *conferencesStore) DeleteConference(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM conferences WHERE id=$1`, id)
	return err
}

func (s *conferencesStore) GetConference(ctx context.Context, id int64) (*Conference, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+conferenceColumns+` FROM conferences WHERE id=$1`, id)
	c, err := scanConference(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *conferencesStore) FindConference(ctx context.Context, year int, name string) (*Conference, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+conferenceColumns+` FROM conferences WHERE year=$1 AND name=$2`, year, name)
	c, err := scanConference(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *conferencesStore) ListConferences(ctx context.Context) ([]Conference, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+conferenceColumns+` FROM conferences ORDER BY year DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []Conference{}
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *c)
	}
	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConference(row rowScanner) (*Conference, error) {
	var c Conference
	var theme, venueName, venueCity sql.NullString
	if err := row.Scan(&c.ID, &c.Year, &c.Name, &theme, &c.StartDate, &c.EndDate, &venueName, &venueCity,
		&c.Timezone, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Theme = stringPtr(theme)
	c.VenueName = stringPtr(venueName)
	c.VenueCity = stringPtr(venueCity)
	return &c, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
