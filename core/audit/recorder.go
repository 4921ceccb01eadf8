package audit

import (
	"context"

	"confdesk/core/store"
)

const (
	EntityTask       = "task"
	EntityConference = "conference"

	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionUpdateStatus = "update_status"
	ActionUpdateDates  = "update_dates"
	ActionAssign       = "assign"
	ActionUnassign     = "unassign"
	ActionDelete       = "delete"
)

type Entry struct {
	ConferenceID  int64
	EntityType    string
	EntityID      int64
	Action        string
	Before        any
	After         any
	ActorPersonID *int64
}

// Recorder appends audit rows through whatever store it was built on. Build it
// on the mutation's transaction so a failed append fails the mutation too.
type Recorder struct {
	store store.AuditStore
}

func NewRecorder(s store.AuditStore) *Recorder {
	return &Recorder{store: s}
}

func (r *Recorder) Record(ctx context.Context, e Entry) (*store.AuditLog, error) {
	before, err := Encode(e.Before)
	if err != nil {
		return nil, err
	}
	after, err := Encode(e.After)
	if err != nil {
		return nil, err
	}
	row := &store.AuditLog{
		ConferenceID:  e.ConferenceID,
		ActorPersonID: e.ActorPersonID,
		EntityType:    e.EntityType,
		EntityID:      e.EntityID,
		Action:        e.Action,
		BeforeJSON:    before,
		AfterJSON:     after,
	}
	if _, err := r.store.AppendAudit(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// TaskPatchAction picks the action tag for a task patch from the keys it touched.
// Date changes win over status changes when both are present.
func TaskPatchAction(touched map[string]bool) string {
	action := ActionUpdate
	if touched["status"] {
		action = ActionUpdateStatus
	}
	if touched["start_date"] || touched["due_date"] {
		action = ActionUpdateDates
	}
	return action
}
