package store

import (
	"context"
	"database/sql"
	"time"
)

// AuditStore is append-only: rows leave only through DeleteConferenceAudit when
// their conference is deleted.
type AuditStore interface {
	AppendAudit(ctx context.Context, entry *AuditLog) (int64, error)
	ListAudit(ctx context.Context, conferenceID int64, limit int) ([]AuditLog, error)
	DeleteConferenceAudit(ctx context.Context, conferenceID int64) (int64, error)
}

type auditStore struct {
	db DBTX
}

func NewAuditStore(db DBTX) AuditStore {
	return &auditStore{db: db}
}

func (s *auditStore) AppendAudit(ctx context.Context, entry *AuditLog) (int64, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.BeforeJSON == "" {
		entry.BeforeJSON = "{}"
	}
	if entry.AfterJSON == "" {
		entry.AfterJSON = "{}"
	}
	var actor any
	if entry.ActorPersonID != nil {
		actor = *entry.ActorPersonID
	}
	var id int64
	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO audit_logs(conference_id, actor_person_id, entity_type, entity_id, action, before_json, after_json, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`,
		entry.ConferenceID, actor, entry.EntityType, entry.EntityID, entry.Action,
		entry.BeforeJSON, entry.AfterJSON, entry.CreatedAt).Scan(&id); err != nil {
		return 0, err
	}
	entry.ID = id
	return id, nil
}

func (s *auditStore) ListAudit(ctx context.Context, conferenceID int64, limit int) ([]AuditLog, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conference_id, actor_person_id, entity_type, entity_id, action, before_json, after_json, created_at
		FROM audit_logs WHERE conference_id=$1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, conferenceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []AuditLog{}
	for rows.Next() {
		var a AuditLog
		var actor sql.NullInt64
		if err := rows.Scan(&a.ID, &a.ConferenceID, &actor, &a.EntityType, &a.EntityID, &a.Action,
			&a.BeforeJSON, &a.AfterJSON, &a.CreatedAt); err != nil {
			return nil, err
		}
		if actor.Valid {
			v := actor.Int64
			a.ActorPersonID = &v
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (s *auditStore) DeleteConferenceAudit(ctx context.Context, conferenceID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM audit_logs WHERE conference_id=$1`, conferenceID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
