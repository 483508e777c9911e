package Recurring

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"Momentum/AbstractFunctions"
	"Momentum/Models"
)

// taskKey identifies a recurring task across fetches. Remote identifiers
// are not reliably present on freshly fetched milestones, so identity is
// the (title, description, target calendar day) triple.
type taskKey struct {
	Title       string
	Description string
	TargetDay   string
}

func milestoneKey(m Models.Milestone) taskKey {
	return taskKey{
		Title:       m.Title,
		Description: m.Description,
		TargetDay:   AbstractFunctions.DayString(m.TargetDate),
	}
}

func instanceKey(t Models.RecurringTask) taskKey {
	return taskKey{
		Title:       t.Title,
		Description: t.Description,
		TargetDay:   AbstractFunctions.DayString(t.TargetDate),
	}
}

// DailyMilestones flattens every everyDayAction milestone across the goal
// set, in goal order then milestone order. No sort is applied.
func DailyMilestones(goals []Models.Goal) []Models.Milestone {
	var daily []Models.Milestone
	for _, goal := range goals {
		for _, milestone := range goal.Milestones {
			if milestone.EveryDayAction {
				daily = append(daily, milestone)
			}
		}
	}
	return daily
}

// Reconcile computes today's recurring task set from the live goals and
// the cached instances. Cached instances whose backing milestone still
// exists keep their completion flag and come first; milestones with no
// cached counterpart are appended as new instances in discovery order.
// Cached entries whose milestone disappeared or lost its everyDayAction
// flag are dropped. shouldPersist is true only when the set changed.
func Reconcile(goals []Models.Goal, cached []Models.RecurringTask) (reconciled []Models.RecurringTask, shouldPersist bool) {
	daily := DailyMilestones(goals)

	valid := make([]Models.RecurringTask, 0, len(cached))
	for _, task := range cached {
		key := instanceKey(task)
		if slices.IndexFunc(daily, func(m Models.Milestone) bool { return milestoneKey(m) == key }) >= 0 {
			valid = append(valid, task)
		}
	}

	var fresh []Models.RecurringTask
	for _, milestone := range daily {
		key := milestoneKey(milestone)
		if slices.IndexFunc(cached, func(t Models.RecurringTask) bool { return instanceKey(t) == key }) >= 0 {
			continue
		}
		task := Models.FromMilestone(milestone)
		if task.TaskID == "" {
			task.TaskID = uuid.NewString()
		}
		fresh = append(fresh, task)
	}

	reconciled = append(valid, fresh...)
	shouldPersist = len(fresh) > 0 || len(valid) != len(cached)
	return reconciled, shouldPersist
}
