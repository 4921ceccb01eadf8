package planning

import (
	"context"
	"strings"

	"confdesk/core/apperr"
	"confdesk/core/audit"
	"confdesk/core/store"
)

type PersonInput struct {
	Name        string  `json:"name"`
	Affiliation *string `json:"affiliation"`
	RoleTitle   *string `json:"role_title"`
}

func getPerson(ctx context.Context, r *store.Repos, id int64) (*store.Person, error) {
	p, err := r.People.GetPerson(ctx, id)
	if err != nil {
		return nil, wrap("get person", err)
	}
	if p == nil {
		return nil, apperr.NotFound("person")
	}
	return p, nil
}

func (s *Service) ListPeople(ctx context.Context, query string) ([]store.Person, error) {
	items, err := s.read().People.ListPeople(ctx, strings.TrimSpace(query))
	return items, wrap("list people", err)
}

func (s *Service) CreatePerson(ctx context.Context, in PersonInput) (*store.Person, error) {
	name := orDefault(in.Name, "")
	if name == "" {
		return nil, apperr.Required("name")
	}
	p := &store.Person{Name: name, Affiliation: trimmedPtr(in.Affiliation), RoleTitle: trimmedPtr(in.RoleTitle)}
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		_, err := r.People.CreatePerson(ctx, p)
		return err
	})
	if err != nil {
		return nil, wrap("create person", err)
	}
	return p, nil
}

func (s *Service) UpdatePerson(ctx context.Context, id int64, patch Patch) (*store.Person, error) {
	var out *store.Person
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		p, err := getPerson(ctx, r, id)
		if err != nil {
			return err
		}
		if patch.has("name") {
			if p.Name, err = patch.requiredString("name"); err != nil {
				return err
			}
		}
		if patch.has("affiliation") {
			if p.Affiliation, err = patch.optionalString("affiliation"); err != nil {
				return err
			}
		}
		if patch.has("role_title") {
			if p.RoleTitle, err = patch.optionalString("role_title"); err != nil {
				return err
			}
		}
		if err := r.People.UpdatePerson(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, wrap("update person", err)
	}
	return out, nil
}

// DeletePerson removes the person and every assignment they hold.
func (s *Service) DeletePerson(ctx context.Context, id int64) error {
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		p, err := getPerson(ctx, r, id)
		if err != nil {
			return err
		}
		if _, err := r.Assignments.DeletePersonAssignments(ctx, p.ID); err != nil {
			return err
		}
		return r.People.DeletePerson(ctx, p.ID)
	})
	return wrap("delete person", err)
}
