package planning

import (
	"context"

	"confdesk/core/apperr"
	"confdesk/core/audit"
	"confdesk/core/roles"
	"confdesk/core/store"
)

type RoleTemplateInput struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	SortOrder *int   `json:"sort_order"`
}

func (s *Service) SeedRoleTemplates(ctx context.Context) (roles.SeedResult, error) {
	var res roles.SeedResult
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		var err error
		res, err = roles.EnsureDefaults(ctx, r.RoleTemplates)
		return err
	})
	return res, wrap("seed role templates", err)
}

func (s *Service) ListRoleTemplates(ctx context.Context) ([]store.RoleTemplate, error) {
	items, err := s.read().RoleTemplates.ListRoleTemplates(ctx)
	return items, wrap("list role templates", err)
}

func (s *Service) CreateRoleTemplate(ctx context.Context, in RoleTemplateInput) (*store.RoleTemplate, error) {
	key := orDefault(in.Key, "")
	if key == "" {
		return nil, apperr.Required("key")
	}
	label := orDefault(in.Label, "")
	if label == "" {
		return nil, apperr.Required("label")
	}
	rt := &store.RoleTemplate{Key: key, Label: label, SortOrder: store.DefaultRoleSortOrder}
	if in.SortOrder != nil {
		rt.SortOrder = *in.SortOrder
	}
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		existing, err := r.RoleTemplates.FindRoleTemplate(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("role_template.exists", "role template key already exists")
		}
		_, err = r.RoleTemplates.CreateRoleTemplate(ctx, rt)
		return err
	})
	if err != nil {
		return nil, wrap("create role template", err)
	}
	return rt, nil
}

func (s *Service) UpdateRoleTemplate(ctx context.Context, id int64, patch Patch) (*store.RoleTemplate, error) {
	var out *store.RoleTemplate
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		rt, err := r.RoleTemplates.GetRoleTemplate(ctx, id)
		if err != nil {
			return err
		}
		if rt == nil {
			return apperr.NotFound("role_template")
		}
		if patch.has("key") {
			key, err := patch.requiredString("key")
			if err != nil {
				return err
			}
			if key != rt.Key {
				other, err := r.RoleTemplates.FindRoleTemplate(ctx, key)
				if err != nil {
					return err
				}
				if other != nil {
					return apperr.Conflict("role_template.exists", "role template key already exists")
				}
			}
			rt.Key = key
		}
		if patch.has("label") {
			if rt.Label, err = patch.requiredString("label"); err != nil {
				return err
			}
		}
		if patch.has("sort_order") {
			if rt.SortOrder, err = patch.integer("sort_order"); err != nil {
				return err
			}
		}
		if err := r.RoleTemplates.UpdateRoleTemplate(ctx, rt); err != nil {
			return err
		}
		out = rt
		return nil
	})
	if err != nil {
		return nil, wrap("update role template", err)
	}
	return out, nil
}

// DeleteRoleTemplate leaves assignments that use the key in place; their labels
// fall back to the raw key.
func (s *Service) DeleteRoleTemplate(ctx context.Context, id int64) error {
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		rt, err := r.RoleTemplates.GetRoleTemplate(ctx, id)
		if err != nil {
			return err
		}
		if rt == nil {
			return apperr.NotFound("role_template")
		}
		return r.RoleTemplates.DeleteRoleTemplate(ctx, rt.ID)
	})
	return wrap("delete role template", err)
}
