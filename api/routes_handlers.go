package api

import (
	"net/http"

	"confdesk/api/handlers"
	"confdesk/api/routegroups"
	"confdesk/core/rbac"

	"github.com/go-chi/chi/v5"
)

type routeHandlers struct {
	health        *handlers.HealthHandler
	conferences   *handlers.ConferencesHandler
	tasks         *handlers.TasksHandler
	people        *handlers.PeopleHandler
	roleTemplates *handlers.RoleTemplatesHandler
	logs          *handlers.LogsHandler
}

func (s *Server) newRouteHandlers() routeHandlers {
	return routeHandlers{
		health:        handlers.NewHealthHandler(s.db, s.version),
		conferences:   handlers.NewConferencesHandler(s.svc, s.logger),
		tasks:         handlers.NewTasksHandler(s.svc, s.logger),
		people:        handlers.NewPeopleHandler(s.svc, s.logger),
		roleTemplates: handlers.NewRoleTemplatesHandler(s.svc, s.logger),
		logs:          handlers.NewLogsHandler(s.svc, s.logger),
	}
}

func (s *Server) registerPlanningRoutes(router chi.Router, h routeHandlers) {
	guards := routegroups.Guards{
		RequireAdmin: func(p string) func(http.HandlerFunc) http.HandlerFunc { return s.requireAdmin(rbac.Permission(p)) },
	}
	routegroups.RegisterRoleTemplates(router, h.roleTemplates)
	routegroups.RegisterConferences(router, guards, h.conferences, h.tasks, h.logs)
	routegroups.RegisterTasks(router, h.tasks)
	routegroups.RegisterPeople(router, h.people)
}
