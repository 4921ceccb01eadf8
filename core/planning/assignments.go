package planning

import (
	"context"

	"confdesk/core/apperr"
	"confdesk/core/audit"
	"confdesk/core/roles"
	"confdesk/core/store"
)

type AssignInput struct {
	PersonID       *int64 `json:"person_id"`
	Responsibility string `json:"responsibility"`
}

type assigneeRef struct {
	PersonID       int64  `json:"person_id"`
	Responsibility string `json:"responsibility"`
}

func assignees(refs ...assigneeRef) map[string]any {
	list := make([]any, 0, len(refs))
	for _, r := range refs {
		list = append(list, map[string]any{"person_id": r.PersonID, "responsibility": r.Responsibility})
	}
	return map[string]any{"assignees": list}
}

// AssignTask binds a person to a task. Unknown responsibility keys get a role
// template created on the fly.
func (s *Service) AssignTask(ctx context.Context, taskID int64, in AssignInput) (*store.Assignment, error) {
	if in.PersonID == nil {
		return nil, apperr.Required("person_id")
	}
	key := roles.NormalizeKey(in.Responsibility)
	var out *store.Assignment
	err := s.mutate(ctx, func(r *store.Repos, rec *audit.Recorder) error {
		t, err := getTask(ctx, r, taskID)
		if err != nil {
			return err
		}
		p, err := r.People.GetPerson(ctx, *in.PersonID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.NotFound("person")
		}
		created, err := roles.Ensure(ctx, r.RoleTemplates, key)
		if err != nil {
			return err
		}
		if created {
			s.logger.Printf("roles: auto-created role template %q", key)
		}
		a := &store.Assignment{TaskID: t.ID, PersonID: p.ID, Responsibility: key}
		if _, err := r.Assignments.CreateAssignment(ctx, a); err != nil {
			return err
		}
		if _, err := rec.Record(ctx, audit.Entry{
			ConferenceID: t.ConferenceID,
			EntityType:   audit.EntityTask,
			EntityID:     t.ID,
			Action:       audit.ActionAssign,
			Before:       assignees(),
			After:        assignees(assigneeRef{PersonID: p.ID, Responsibility: key}),
		}); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, wrap("assign task", err)
	}
	return out, nil
}

// ListAssignments returns the task's assignments with role labels resolved.
func (s *Service) ListAssignments(ctx context.Context, taskID int64) ([]store.AssignmentView, error) {
	r := s.read()
	if _, err := getTask(ctx, r, taskID); err != nil {
		return nil, err
	}
	items, err := r.Assignments.ListTaskAssignments(ctx, taskID)
	if err != nil {
		return nil, wrap("list assignments", err)
	}
	templates, err := r.RoleTemplates.ListRoleTemplates(ctx)
	if err != nil {
		return nil, wrap("list role templates", err)
	}
	resolver := roles.NewResolver(templates)
	for i := range items {
		items[i].RoleLabel = resolver.Label(items[i].Responsibility)
	}
	return items, nil
}

func (s *Service) Unassign(ctx context.Context, assignmentID int64) error {
	err := s.mutate(ctx, func(r *store.Repos, rec *audit.Recorder) error {
		a, err := r.Assignments.GetAssignment(ctx, assignmentID)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.NotFound("assignment")
		}
		t, err := getTask(ctx, r, a.TaskID)
		if err != nil {
			return err
		}
		if err := r.Assignments.DeleteAssignment(ctx, a.ID); err != nil {
			return err
		}
		_, err = rec.Record(ctx, audit.Entry{
			ConferenceID: t.ConferenceID,
			EntityType:   audit.EntityTask,
			EntityID:     t.ID,
			Action:       audit.ActionUnassign,
			Before:       assignees(assigneeRef{PersonID: a.PersonID, Responsibility: a.Responsibility}),
			After:        assignees(),
		})
		return err
	})
	return wrap("unassign", err)
}
