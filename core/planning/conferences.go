package planning

import (
	"context"
	"time"

	"confdesk/core/apperr"
	"confdesk/core/audit"
	"confdesk/core/milestones"
	"confdesk/core/rbac"
	"confdesk/core/roles"
	"confdesk/core/store"
)

type ConferenceInput struct {
	Year      int     `json:"year"`
	Name      string  `json:"name"`
	Theme     *string `json:"theme"`
	StartDate any     `json:"start_date"`
	EndDate   any     `json:"end_date"`
	VenueName *string `json:"venue_name"`
	VenueCity *string `json:"venue_city"`
	Timezone  string  `json:"timezone"`
	Status    string  `json:"status"`
}

var conferencePatchFields = []string{"year", "name", "theme", "start_date", "end_date", "venue_name", "venue_city", "timezone", "status"}

type Summary struct {
	ConferenceID   int64            `json:"conference_id"`
	TasksTotal     int              `json:"tasks_total"`
	TasksByStatus  map[string]int   `json:"tasks_by_status"`
	MilestoneCount int              `json:"milestone_count"`
	NextMilestone  *store.Milestone `json:"next_milestone"`
	DaysToEvent    int              `json:"days_to_event"`
}

func (s *Service) ListConferences(ctx context.Context) ([]store.Conference, error) {
	items, err := s.read().Conferences.ListConferences(ctx)
	return items, wrap("list conferences", err)
}

func (s *Service) GetConference(ctx context.Context, id int64) (*store.Conference, error) {
	return getConference(ctx, s.read(), id)
}

func getConference(ctx context.Context, r *store.Repos, id int64) (*store.Conference, error) {
	c, err := r.Conferences.GetConference(ctx, id)
	if err != nil {
		return nil, wrap("get conference", err)
	}
	if c == nil {
		return nil, apperr.NotFound("conference")
	}
	return c, nil
}

// CreateConference stores a new conference and seeds the default role set the
// first time any conference is created.
func (s *Service) CreateConference(ctx context.Context, in ConferenceInput) (*store.Conference, error) {
	c, err := s.buildConference(in)
	if err != nil {
		return nil, err
	}
	err = s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		existing, err := r.Conferences.FindConference(ctx, c.Year, c.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("conference.exists", "conference with this year and name already exists")
		}
		if _, err := r.Conferences.CreateConference(ctx, c); err != nil {
			return err
		}
		seed, err := roles.EnsureDefaults(ctx, r.RoleTemplates)
		if err != nil {
			return err
		}
		if seed.Seeded {
			s.logger.Printf("roles: seeded %d default role templates", seed.Count)
		}
		return nil
	})
	if err != nil {
		return nil, wrap("create conference", err)
	}
	return c, nil
}

func (s *Service) buildConference(in ConferenceInput) (*store.Conference, error) {
	name := orDefault(in.Name, "")
	if name == "" {
		return nil, apperr.Required("name")
	}
	if in.Year <= 0 {
		return nil, apperr.Required("year")
	}
	start, err := parseInputDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	if start == nil {
		return nil, apperr.Required("start_date")
	}
	end, err := parseInputDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	if end == nil {
		return nil, apperr.Required("end_date")
	}
	return &store.Conference{
		Year:      in.Year,
		Name:      name,
		Theme:     trimmedPtr(in.Theme),
		StartDate: *start,
		EndDate:   *end,
		VenueName: trimmedPtr(in.VenueName),
		VenueCity: trimmedPtr(in.VenueCity),
		Timezone:  orDefault(in.Timezone, store.DefaultTimezone),
		Status:    orDefault(in.Status, store.DefaultConferenceStatus),
	}, nil
}

// UpdateConference applies an allow-listed patch and audits the full before/after pair.
func (s *Service) UpdateConference(ctx context.Context, id int64, patch Patch) (*store.Conference, error) {
	var out *store.Conference
	err := s.mutate(ctx, func(r *store.Repos, rec *audit.Recorder) error {
		c, err := getConference(ctx, r, id)
		if err != nil {
			return err
		}
		before := c.Snapshot()
		if err := applyConferencePatch(c, patch); err != nil {
			return err
		}
		if patch.has("year") || patch.has("name") {
			other, err := r.Conferences.FindConference(ctx, c.Year, c.Name)
			if err != nil {
				return err
			}
			if other != nil && other.ID != c.ID {
				return apperr.Conflict("conference.exists", "conference with this year and name already exists")
			}
		}
		if err := r.Conferences.UpdateConference(ctx, c); err != nil {
			return err
		}
		if _, err := rec.Record(ctx, audit.Entry{
			ConferenceID: c.ID,
			EntityType:   audit.EntityConference,
			EntityID:     c.ID,
			Action:       audit.ActionUpdate,
			Before:       before,
			After:        c.Snapshot(),
		}); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, wrap("update conference", err)
	}
	return out, nil
}

func applyConferencePatch(c *store.Conference, patch Patch) error {
	for _, key := range conferencePatchFields {
		if !patch.has(key) {
			continue
		}
		var err error
		switch key {
		case "year":
			c.Year, err = patch.integer(key)
			if err == nil && c.Year <= 0 {
				err = apperr.Invalid(key, "must be positive")
			}
		case "name":
			c.Name, err = patch.requiredString(key)
		case "theme":
			c.Theme, err = patch.optionalString(key)
		case "venue_name":
			c.VenueName, err = patch.optionalString(key)
		case "venue_city":
			c.VenueCity, err = patch.optionalString(key)
		case "timezone":
			c.Timezone, err = patch.requiredString(key)
		case "status":
			c.Status, err = patch.requiredString(key)
		case "start_date":
			c.StartDate, err = patch.requiredDate(key)
		case "end_date":
			c.EndDate, err = patch.requiredDate(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteConference removes a conference with everything it owns. The caller
// must present the admin secret.
func (s *Service) DeleteConference(ctx context.Context, id int64, secret string) error {
	if err := s.gate.Authorize(secret, rbac.PermConferencesDelete); err != nil {
		return err
	}
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		c, err := getConference(ctx, r, id)
		if err != nil {
			return err
		}
		taskIDs, err := r.Tasks.ListTaskIDs(ctx, c.ID)
		if err != nil {
			return err
		}
		if _, err := r.Assignments.DeleteTaskAssignments(ctx, taskIDs); err != nil {
			return err
		}
		if _, err := r.Milestones.DeleteConferenceMilestones(ctx, c.ID); err != nil {
			return err
		}
		if _, err := r.Audits.DeleteConferenceAudit(ctx, c.ID); err != nil {
			return err
		}
		if _, err := r.Tasks.DeleteConferenceTasks(ctx, c.ID); err != nil {
			return err
		}
		return r.Conferences.DeleteConference(ctx, c.ID)
	})
	if err != nil {
		return wrap("delete conference", err)
	}
	s.logger.Printf("conference %d deleted", id)
	return nil
}

// Summary counts tasks by status and finds the first milestone on or after
// today. A zero today means the current date in the conference's timezone.
func (s *Service) Summary(ctx context.Context, id int64, today store.Date) (*Summary, error) {
	r := s.read()
	c, err := getConference(ctx, r, id)
	if err != nil {
		return nil, err
	}
	if today.IsZero() {
		today = conferenceToday(c.Timezone, time.Now())
	}
	counts, err := r.Tasks.CountTasksByStatus(ctx, c.ID)
	if err != nil {
		return nil, wrap("count tasks", err)
	}
	ms, err := r.Milestones.ListMilestones(ctx, c.ID)
	if err != nil {
		return nil, wrap("list milestones", err)
	}
	out := &Summary{
		ConferenceID:   c.ID,
		TasksByStatus:  counts,
		MilestoneCount: len(ms),
		DaysToEvent:    int(c.StartDate.Time().Sub(today.Time()) / (24 * time.Hour)),
	}
	for _, n := range counts {
		out.TasksTotal += n
	}
	for i := range ms {
		if !ms[i].TargetDate.Before(today) {
			m := ms[i]
			out.NextMilestone = &m
			break
		}
	}
	return out, nil
}

// GenerateMilestones replaces the conference's milestones and optionally
// appends the default task backlog.
func (s *Service) GenerateMilestones(ctx context.Context, id int64, withTasks bool) ([]store.Milestone, error) {
	var out []store.Milestone
	err := s.mutate(ctx, func(r *store.Repos, _ *audit.Recorder) error {
		c, err := getConference(ctx, r, id)
		if err != nil {
			return err
		}
		out, err = milestones.Generate(ctx, r, c, withTasks)
		return err
	})
	if err != nil {
		return nil, wrap("generate milestones", err)
	}
	s.logger.Printf("conference %d: generated %d milestones (default tasks: %t)", id, len(out), withTasks)
	return out, nil
}

func (s *Service) ListMilestones(ctx context.Context, id int64) ([]store.Milestone, error) {
	r := s.read()
	if _, err := getConference(ctx, r, id); err != nil {
		return nil, err
	}
	items, err := r.Milestones.ListMilestones(ctx, id)
	return items, wrap("list milestones", err)
}

func (s *Service) ListAudit(ctx context.Context, id int64, limit int) ([]store.AuditLog, error) {
	r := s.read()
	if _, err := getConference(ctx, r, id); err != nil {
		return nil, err
	}
	items, err := r.Audits.ListAudit(ctx, id, s.cfg.EffectiveAuditLimit(limit))
	return items, wrap("list audit", err)
}
