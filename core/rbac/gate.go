package rbac

import (
	"strings"

	"confdesk/core/apperr"
)

// Gate guards admin-only operations behind one shared secret. The secret
// resolves to the admin role; the policy decides what that role may do.
type Gate struct {
	secret string
	policy *Policy
}

func NewGate(secret string, policy *Policy) *Gate {
	return &Gate{secret: strings.TrimSpace(secret), policy: policy}
}

// Configured reports whether a server-side secret is present.
func (g *Gate) Configured() bool {
	return g != nil && g.secret != ""
}

// Role maps a caller-supplied secret to a gate role.
func (g *Gate) Role(supplied string) string {
	if g.Configured() && strings.TrimSpace(supplied) == g.secret {
		return RoleAdmin
	}
	return RoleAnonymous
}

func (g *Gate) Authorize(supplied string, perm Permission) error {
	if !g.Configured() {
		return apperr.ServerConfig("admin password is not configured")
	}
	if strings.TrimSpace(supplied) == "" {
		return apperr.Unauthorized("admin password required")
	}
	if !g.policy.Allowed(g.Role(supplied), perm) {
		return apperr.Unauthorized("invalid admin password")
	}
	return nil
}
