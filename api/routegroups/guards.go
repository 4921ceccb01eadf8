package routegroups

import "net/http"

// Guards carries the route-level middleware a route group may apply.
type Guards struct {
	RequireAdmin func(perm string) func(http.HandlerFunc) http.HandlerFunc
}

// AdminPerm wraps h so it only runs for callers holding perm through the admin
// secret. A missing guard denies every request.
func (g Guards) AdminPerm(perm string, h http.HandlerFunc) http.HandlerFunc {
	if g.RequireAdmin == nil {
		return func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		}
	}
	return g.RequireAdmin(perm)(h)
}
