package routegroups

import (
	"confdesk/api/handlers"
	"github.com/go-chi/chi/v5"
)

func RegisterRoleTemplates(router chi.Router, roles *handlers.RoleTemplatesHandler) {
	router.Route("/role-templates", func(rolesRouter chi.Router) {
		rolesRouter.MethodFunc("POST", "/seed", roles.Seed)
		rolesRouter.MethodFunc("GET", "/", roles.List)
		rolesRouter.MethodFunc("POST", "/", roles.Create)
		rolesRouter.MethodFunc("PATCH", "/{id:[0-9]+}", roles.Update)
		rolesRouter.MethodFunc("DELETE", "/{id:[0-9]+}", roles.Delete)
	})
}

func RegisterConferences(router chi.Router, g Guards, conferences *handlers.ConferencesHandler, tasks *handlers.TasksHandler, logs *handlers.LogsHandler) {
	router.Route("/conferences", func(confRouter chi.Router) {
		confRouter.MethodFunc("GET", "/", conferences.List)
		confRouter.MethodFunc("POST", "/", conferences.Create)
		confRouter.MethodFunc("GET", "/{id:[0-9]+}", conferences.Get)
		confRouter.MethodFunc("PATCH", "/{id:[0-9]+}", conferences.Update)
		confRouter.MethodFunc("DELETE", "/{id:[0-9]+}", conferences.Delete)
		confRouter.MethodFunc("GET", "/{id:[0-9]+}/summary", conferences.Summary)
		confRouter.MethodFunc("POST", "/{id:[0-9]+}/milestones/generate", conferences.GenerateMilestones)
		confRouter.MethodFunc("GET", "/{id:[0-9]+}/milestones", conferences.ListMilestones)
		confRouter.MethodFunc("GET", "/{id:[0-9]+}/tasks", tasks.List)
		confRouter.MethodFunc("POST", "/{id:[0-9]+}/tasks", tasks.Create)
		confRouter.MethodFunc("GET", "/{id:[0-9]+}/audit", logs.List)
		confRouter.MethodFunc("GET", "/{id:[0-9]+}/audit/export", g.AdminPerm("audit.export", logs.Export))
	})
}

func RegisterTasks(router chi.Router, tasks *handlers.TasksHandler) {
	router.Route("/tasks", func(tasksRouter chi.Router) {
		tasksRouter.MethodFunc("PATCH", "/{id:[0-9]+}", tasks.Patch)
		tasksRouter.MethodFunc("DELETE", "/{id:[0-9]+}", tasks.Delete)
		tasksRouter.MethodFunc("POST", "/{id:[0-9]+}/assign", tasks.Assign)
		tasksRouter.MethodFunc("GET", "/{id:[0-9]+}/assignments", tasks.ListAssignments)
	})
	router.MethodFunc("DELETE", "/assignments/{id:[0-9]+}", tasks.Unassign)
}

func RegisterPeople(router chi.Router, people *handlers.PeopleHandler) {
	router.Route("/people", func(peopleRouter chi.Router) {
		peopleRouter.MethodFunc("GET", "/", people.List)
		peopleRouter.MethodFunc("POST", "/", people.Create)
		peopleRouter.MethodFunc("PATCH", "/{id:[0-9]+}", people.Update)
		peopleRouter.MethodFunc("DELETE", "/{id:[0-9]+}", people.Delete)
	})
}
