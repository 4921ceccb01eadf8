package store

import (
	"context"
)

type MilestonesStore interface {
	InsertMilestone(ctx context.Context, m *Milestone) (int64, error)
	ListMilestones(ctx context.Context, conferenceID int64) ([]Milestone, error)
	DeleteConferenceMilestones(ctx context.Context, conferenceID int64) (int64, error)
}

type milestonesStore struct {
	db DBTX
}

func NewMilestonesStore(db DBTX) MilestonesStore {
	return &milestonesStore{db: db}
}

func (s *milestonesStore) InsertMilestone(ctx context.Context, m *Milestone) (int64, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO milestones(conference_id, key, name, relative_days, target_date, locked)
		VALUES($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		m.ConferenceID, m.Key, m.Name, m.RelativeDays, m.TargetDate.String(), m.Locked).Scan(&id); err != nil {
		return 0, err
	}
	m.ID = id
	return id, nil
}

// ListMilestones orders by target date; milestones sharing a date keep insertion order.
func (s *milestonesStore) ListMilestones(ctx context.Context, conferenceID int64) ([]Milestone, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conference_id, key, name, relative_days, target_date, locked
		FROM milestones WHERE conference_id=$1
		ORDER BY target_date, id`, conferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []Milestone{}
	for rows.Next() {
		var m Milestone
		if err := rows.Scan(&m.ID, &m.ConferenceID, &m.Key, &m.Name, &m.RelativeDays, &m.TargetDate, &m.Locked); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (s *milestonesStore) DeleteConferenceMilestones(ctx context.Context, conferenceID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM milestones WHERE conference_id=$1`, conferenceID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
