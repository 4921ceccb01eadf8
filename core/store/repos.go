package store

// Repos bundles every store over one DBTX, typically a single transaction.
type Repos struct {
	Conferences   ConferencesStore
	Tasks         TasksStore
	People        PeopleStore
	Assignments   AssignmentsStore
	RoleTemplates RoleTemplatesStore
	Milestones    MilestonesStore
	Audits        AuditStore
}

func NewRepos(db DBTX) *Repos {
	return &Repos{
		Conferences:   NewConferencesStore(db),
		Tasks:         NewTasksStore(db),
		People:        NewPeopleStore(db),
		Assignments:   NewAssignmentsStore(db),
		RoleTemplates: NewRoleTemplatesStore(db),
		Milestones:    NewMilestonesStore(db),
		Audits:        NewAuditStore(db),
	}
}
