package roles

import (
	"context"
	"fmt"
	"strings"

	"confdesk/core/store"
)

var Defaults = []store.RoleTemplate{
	{Key: "chair", Label: "조직위원장", SortOrder: 10},
	{Key: "vice_chair", Label: "부위원장", SortOrder: 20},
	{Key: "secretary", Label: "총무", SortOrder: 30},
	{Key: "program_chair", Label: "프로그램위원장", SortOrder: 40},
	{Key: "program_member", Label: "프로그램위원", SortOrder: 50},
	{Key: "review_chair", Label: "심사위원장", SortOrder: 60},
	{Key: "reviewer", Label: "심사위원", SortOrder: 70},
	{Key: "pr", Label: "홍보", SortOrder: 80},
	{Key: "sponsor", Label: "후원", SortOrder: 90},
	{Key: "staff", Label: "스태프", SortOrder: 100},
}

type SeedResult struct {
	Seeded bool `json:"seeded"`
	Count  int  `json:"count"`
}

// EnsureDefaults seeds the default role set when the table is empty. Rows whose
// key appeared concurrently are skipped instead of failing.
func EnsureDefaults(ctx context.Context, s store.RoleTemplatesStore) (SeedResult, error) {
	n, err := s.CountRoleTemplates(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("count role templates: %w", err)
	}
	if n > 0 {
		return SeedResult{Seeded: false, Count: n}, nil
	}
	inserted := 0
	for _, d := range Defaults {
		rt := d
		ok, err := s.InsertRoleTemplateIfAbsent(ctx, &rt)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed role %s: %w", rt.Key, err)
		}
		if ok {
			inserted++
		}
	}
	return SeedResult{Seeded: inserted > 0, Count: inserted}, nil
}

// NormalizeKey trims a responsibility key and falls back to the default.
func NormalizeKey(raw string) string {
	key := strings.TrimSpace(raw)
	if key == "" {
		return store.DefaultResponsibility
	}
	return key
}

// Ensure makes sure a role template exists for key, creating one labelled with
// the key itself and sorted last when it is unknown.
func Ensure(ctx context.Context, s store.RoleTemplatesStore, key string) (created bool, err error) {
	existing, err := s.FindRoleTemplate(ctx, key)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	return s.InsertRoleTemplateIfAbsent(ctx, &store.RoleTemplate{
		Key:       key,
		Label:     key,
		SortOrder: store.AutoRoleSortOrder,
	})
}

// Resolver maps responsibility keys to display labels. Unknown keys resolve to themselves.
type Resolver struct {
	labels map[string]string
}

func NewResolver(templates []store.RoleTemplate) *Resolver {
	labels := make(map[string]string, len(templates))
	for _, t := range templates {
		labels[t.Key] = t.Label
	}
	return &Resolver{labels: labels}
}

func (r *Resolver) Label(key string) string {
	if r != nil {
		if label, ok := r.labels[key]; ok {
			return label
		}
	}
	return key
}

// Label resolves a single key against the store.
func Label(ctx context.Context, s store.RoleTemplatesStore, key string) (string, error) {
	rt, err := s.FindRoleTemplate(ctx, key)
	if err != nil {
		return "", err
	}
	if rt == nil {
		return key, nil
	}
	return rt.Label, nil
}
