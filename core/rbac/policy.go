package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

type Permission string

const (
	PermConferencesDelete Permission = "conferences.delete"
	PermAuditExport       Permission = "audit.export"
)

const (
	RoleAdmin     = "admin"
	RoleAnonymous = "anonymous"
)

const policyModel = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.act == p.act
`

type Role struct {
	Name        string
	Permissions []Permission
}

func DefaultRoles() []Role {
	return []Role{
		{Name: RoleAdmin, Permissions: []Permission{PermConferencesDelete, PermAuditExport}},
		{Name: RoleAnonymous},
	}
}

// Policy answers whether a gate role holds a permission.
type Policy struct {
	enforcer *casbin.Enforcer
}

func NewPolicy(roles []Role) (*Policy, error) {
	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}
	for _, r := range roles {
		for _, p := range r.Permissions {
			if _, err := e.AddPolicy(r.Name, string(p)); err != nil {
				return nil, fmt.Errorf("rbac policy %s/%s: %w", r.Name, p, err)
			}
		}
	}
	return &Policy{enforcer: e}, nil
}

func (p *Policy) Allowed(role string, perm Permission) bool {
	if p == nil || p.enforcer == nil {
		return false
	}
	ok, err := p.enforcer.Enforce(role, string(perm))
	return err == nil && ok
}
