package store

import "time"

const (
	DefaultTimezone         = "Asia/Seoul"
	DefaultConferenceStatus = "planning"
	DefaultTaskStatus       = "todo"
	DefaultTaskPriority     = "med"
	DefaultResponsibility   = "chair"
	DefaultRoleSortOrder    = 100
	AutoRoleSortOrder       = 999
)

// Task status and priority values are conventions, not enforced by the store.
const (
	TaskStatusTodo    = "todo"
	TaskStatusDoing   = "doing"
	TaskStatusDone    = "done"
	TaskStatusBlocked = "blocked"

	TaskPriorityLow  = "low"
	TaskPriorityMed  = "med"
	TaskPriorityHigh = "high"
)

type Conference struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"`
	Name      string    `json:"name"`
	Theme     *string   `json:"theme"`
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	VenueName *string   `json:"venue_name"`
	VenueCity *string   `json:"venue_city"`
	Timezone  string    `json:"timezone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Conference) Snapshot() map[string]any {
	return map[string]any{
		"id":         c.ID,
		"year":       c.Year,
		"name":       c.Name,
		"theme":      c.Theme,
		"start_date": c.StartDate,
		"end_date":   c.EndDate,
		"venue_name": c.VenueName,
		"venue_city": c.VenueCity,
		"timezone":   c.Timezone,
		"status":     c.Status,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	}
}

type Task struct {
	ID           int64     `json:"id"`
	ConferenceID int64     `json:"conference_id"`
	TaskGroup    string    `json:"task_group"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	StartDate    *Date     `json:"start_date"`
	DueDate      *Date     `json:"due_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Snapshot is the full field map used for audit before/after pairs.
func (t *Task) Snapshot() map[string]any {
	return map[string]any{
		"id":            t.ID,
		"conference_id": t.ConferenceID,
		"task_group":    t.TaskGroup,
		"name":          t.Name,
		"description":   t.Description,
		"status":        t.Status,
		"priority":      t.Priority,
		"start_date":    t.StartDate,
		"due_date":      t.DueDate,
		"created_at":    t.CreatedAt,
		"updated_at":    t.UpdatedAt,
	}
}

type TaskFilter struct {
	Group  string
	Status string
}

type Person struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Affiliation *string   `json:"affiliation"`
	RoleTitle   *string   `json:"role_title"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Assignment struct {
	ID             int64     `json:"id"`
	TaskID         int64     `json:"task_id"`
	PersonID       int64     `json:"person_id"`
	Responsibility string    `json:"responsibility"`
	CreatedAt      time.Time `json:"created_at"`
}

// AssignmentView is an assignment joined with its person; the person fields are
// empty when the person row no longer exists.
type AssignmentView struct {
	ID             int64   `json:"id"`
	TaskID         int64   `json:"task_id"`
	PersonID       int64   `json:"person_id"`
	Name           string  `json:"name"`
	Affiliation    *string `json:"affiliation"`
	Responsibility string  `json:"responsibility"`
	RoleLabel      string  `json:"role_label"`
}

type RoleTemplate struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Milestone struct {
	ID           int64  `json:"id"`
	ConferenceID int64  `json:"conference_id"`
	Key          string `json:"key"`
	Name         string `json:"name"`
	RelativeDays int    `json:"relative_days"`
	TargetDate   Date   `json:"target_date"`
	Locked       bool   `json:"locked"`
}

type AuditLog struct {
	ID            int64     `json:"id"`
	ConferenceID  int64     `json:"conference_id"`
	ActorPersonID *int64    `json:"actor_person_id"`
	EntityType    string    `json:"entity_type"`
	EntityID      int64     `json:"entity_id"`
	Action        string    `json:"action"`
	BeforeJSON    string    `json:"before_json"`
	AfterJSON     string    `json:"after_json"`
	CreatedAt     time.Time `json:"created_at"`
}
