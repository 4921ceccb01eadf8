package milestones

import (
	"context"
	"fmt"
	"sort"

	"confdesk/core/store"
	"confdesk/core/utils"
)

// Plan derives one unsaved milestone per template entry, dated relative to start
// and sorted ascending by target date. Entries sharing a date keep template order.
func Plan(conferenceID int64, start store.Date, template []Template) []store.Milestone {
	out := make([]store.Milestone, 0, len(template))
	for _, t := range template {
		out = append(out, store.Milestone{
			ConferenceID: conferenceID,
			Key:          t.Key,
			Name:         t.Name,
			RelativeDays: t.RelativeDays,
			TargetDate:   start.AddDays(t.RelativeDays),
			Locked:       false,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TargetDate.Before(out[j].TargetDate)
	})
	return out
}

// DefaultBacklog builds the unsaved default task set for a conference.
func DefaultBacklog(conferenceID int64, template []TaskTemplate) []store.Task {
	out := make([]store.Task, 0, len(template))
	for _, t := range template {
		out = append(out, store.Task{
			ConferenceID: conferenceID,
			TaskGroup:    t.Group,
			Name:         t.Name,
			Status:       store.DefaultTaskStatus,
			Priority:     store.DefaultTaskPriority,
		})
	}
	return out
}

// Generate replaces every milestone of the conference with a fresh plan and,
// when withTasks is set, appends the default backlog. Callers own the transaction.
func Generate(ctx context.Context, repos *store.Repos, conf *store.Conference, withTasks bool) ([]store.Milestone, error) {
	if _, err := repos.Milestones.DeleteConferenceMilestones(ctx, conf.ID); err != nil {
		return nil, fmt.Errorf("clear milestones: %w", err)
	}
	planned := Plan(conf.ID, conf.StartDate, DefaultTemplate)
	for i := range planned {
		if _, err := repos.Milestones.InsertMilestone(ctx, &planned[i]); err != nil {
			return nil, fmt.Errorf("insert milestone %s: %w", planned[i].Key, err)
		}
	}
	if withTasks {
		now := utils.NowUTC()
		backlog := DefaultBacklog(conf.ID, DefaultTasks)
		for i := range backlog {
			backlog[i].CreatedAt = now
			if _, err := repos.Tasks.CreateTask(ctx, &backlog[i]); err != nil {
				return nil, fmt.Errorf("insert default task %q: %w", backlog[i].Name, err)
			}
		}
	}
	return repos.Milestones.ListMilestones(ctx, conf.ID)
}
