package rbac

import (
	"testing"

	"confdesk/core/apperr"
)

func mustPolicy(t *testing.T) *Policy {
	t.Helper()
	p, err := NewPolicy(DefaultRoles())
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	return p
}

func TestPolicyAllowsAdminOnly(t *testing.T) {
	p := mustPolicy(t)
	if !p.Allowed(RoleAdmin, PermConferencesDelete) {
		t.Fatalf("admin should delete conferences")
	}
	if p.Allowed(RoleAnonymous, PermConferencesDelete) {
		t.Fatalf("anonymous must not delete conferences")
	}
	if p.Allowed(RoleAdmin, Permission("people.delete")) {
		t.Fatalf("unknown permission must be denied")
	}
	var nilPolicy *Policy
	if nilPolicy.Allowed(RoleAdmin, PermConferencesDelete) {
		t.Fatalf("nil policy must deny")
	}
}

func TestGateWithoutSecretIsServerConfigError(t *testing.T) {
	g := NewGate("   ", mustPolicy(t))
	err := g.Authorize("anything", PermConferencesDelete)
	if !apperr.Is(err, apperr.KindServerConfig) {
		t.Fatalf("expected server config error, got %v", err)
	}
}

func TestGateRejectsMissingOrWrongSecret(t *testing.T) {
	g := NewGate("s3cret", mustPolicy(t))
	for _, supplied := range []string{"", "  ", "wrong", "S3CRET"} {
		if err := g.Authorize(supplied, PermConferencesDelete); !apperr.Is(err, apperr.KindUnauthorized) {
			t.Fatalf("%q: expected unauthorized, got %v", supplied, err)
		}
	}
}

func TestGateAcceptsTrimmedSecret(t *testing.T) {
	g := NewGate(" s3cret\n", mustPolicy(t))
	if err := g.Authorize("s3cret ", PermConferencesDelete); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := g.Authorize("s3cret", PermAuditExport); err != nil {
		t.Fatalf("expected export allowed, got %v", err)
	}
}

func TestGateErrorDoesNotLeakSecret(t *testing.T) {
	g := NewGate("s3cret", mustPolicy(t))
	err := g.Authorize("nope", PermConferencesDelete)
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := err.Error(); got == "" || contains(got, "s3cret") {
		t.Fatalf("error leaks secret: %q", got)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
