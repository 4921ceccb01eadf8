package planning

import (
	"context"

	"confdesk/core/apperr"
	"confdesk/core/audit"
	"confdesk/core/store"
)

type TaskInput struct {
	TaskGroup   string  `json:"task_group"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	StartDate   any     `json:"start_date"`
	DueDate     any     `json:"due_date"`
}

// taskPatchFields is the set of task fields a patch may change.
var taskPatchFields = []string{"task_group", "name", "description", "status", "priority", "start_date", "due_date"}

func getTask(ctx context.Context, r *store.Repos, id int64) (*store.Task, error) {
	t, err := r.Tasks.GetTask(ctx, id)
	if err != nil {
		return nil, wrap("get task", err)
	}
	if t == nil {
		return nil, apperr.NotFound("task")
	}
	return t, nil
}

func (s *Service) ListTasks(ctx context.Context, conferenceID int64, filter store.TaskFilter) ([]store.Task, error) {
	r := s.read()
	if _, err := getConference(ctx, r, conferenceID); err != nil {
		return nil, err
	}
	items, err := r.Tasks.ListTasks(ctx, conferenceID, filter)
	return items, wrap("list tasks", err)
}

func (s *Service) CreateTask(ctx context.Context, conferenceID int64, in TaskInput) (*store.Task, error) {
	t, err := buildTask(conferenceID, in)
	if err != nil {
		return nil, err
	}
	err = s.mutate(ctx, func(r *store.Repos, rec *audit.Recorder) error {
		if _, err := getConference(ctx, r, conferenceID); err != nil {
			return err
		}
		if _, err := r.Tasks.CreateTask(ctx, t); err != nil {
			return err
		}
		_, err := rec.Record(ctx, audit.Entry{
			ConferenceID: conferenceID,
			EntityType:   audit.EntityTask,
			EntityID:     t.ID,
			Action:       audit.ActionCreate,
			Before:       map[string]any{},
			After:        t.Snapshot(),
		})
		return err
	})
	if err != nil {
		return nil, wrap("create task", err)
	}
	return t, nil
}

func buildTask(conferenceID int64, in TaskInput) (*store.Task, error) {
	name := orDefault(in.Name, "")
	if name == "" {
		return nil, apperr.Required("name")
	}
	group := orDefault(in.TaskGroup, "")
	if group == "" {
		return nil, apperr.Required("task_group")
	}
	start, err := parseInputDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	due, err := parseInputDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}
	return &store.Task{
		ConferenceID: conferenceID,
		TaskGroup:    group,
		Name:         name,
		Description:  trimmedPtr(in.Description),
		Status:       orDefault(in.Status, store.DefaultTaskStatus),
		Priority:     orDefault(in.Priority, store.DefaultTaskPriority),
		StartDate:    start,
		DueDate:      due,
	}, nil
}

// PatchTask applies the allow-listed fields of patch and ignores the rest. The
// audit action reflects which fields the patch carried.
func (s *Service) PatchTask(ctx context.Context, id int64, patch Patch) (*store.Task, error) {
	var out *store.Task
	err := s.mutate(ctx, func(r *store.Repos, rec *audit.Recorder) error {
		t, err := getTask(ctx, r, id)
		if err != nil {
			return err
		}
		before := t.Snapshot()
		touched, err := applyTaskPatch(t, patch)
		if err != nil {
			return err
		}
		if err := r.Tasks.UpdateTask(ctx, t); err != nil {
			return err
		}
		if _, err := rec.Record(ctx, audit.Entry{
			ConferenceID: t.ConferenceID,
			EntityType:   audit.EntityTask,
			EntityID:     t.ID,
			Action:       audit.TaskPatchAction(touched),
			Before:       before,
			After:        t.Snapshot(),
		}); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, wrap("patch task", err)
	}
	return out, nil
}

func applyTaskPatch(t *store.Task, patch Patch) (map[string]bool, error) {
	touched := make(map[string]bool)
	for _, key := range taskPatchFields {
		if !patch.has(key) {
			continue
		}
		var err error
		switch key {
		case "task_group":
			t.TaskGroup, err = patch.requiredString(key)
		case "name":
			t.Name, err = patch.requiredString(key)
		case "description":
			t.Description, err = patch.optionalString(key)
		case "status":
			t.Status, err = patch.requiredString(key)
		case "priority":
			t.Priority, err = patch.requiredString(key)
		case "start_date":
			t.StartDate, err = patch.date(key)
		case "due_date":
			t.DueDate, err = patch.date(key)
		}
		if err != nil {
			return nil, err
		}
		touched[key] = true
	}
	return touched, nil
}

// DeleteTask removes a task and its assignments.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	err := s.mutate(ctx, func(r *store.Repos, rec *audit.Recorder) error {
		t, err := getTask(ctx, r, id)
		if err != nil {
			return err
		}
		if _, err := r.Assignments.DeleteTaskAssignments(ctx, []int64{t.ID}); err != nil {
			return err
		}
		if err := r.Tasks.DeleteTask(ctx, t.ID); err != nil {
			return err
		}
		_, err = rec.Record(ctx, audit.Entry{
			ConferenceID: t.ConferenceID,
			EntityType:   audit.EntityTask,
			EntityID:     t.ID,
			Action:       audit.ActionDelete,
			Before:       t.Snapshot(),
			After:        map[string]any{},
		})
		return err
	})
	return wrap("delete task", err)
}
