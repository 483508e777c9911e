package Recurring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Momentum/Models"
)

var reconcileDay = time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

func goalWithMilestones(milestones ...Models.Milestone) Models.Goal {
	return Models.Goal{
		RemoteID:   "goal-1",
		Title:      "Get healthy",
		Milestones: milestones,
	}
}

func dailyMilestone(id, title, description string) Models.Milestone {
	return Models.Milestone{
		RemoteID:       id,
		Title:          title,
		Description:    description,
		TargetDate:     reconcileDay,
		EveryDayAction: true,
	}
}

func TestReconcile_EmptyCacheProducesNewTasks(t *testing.T) {
	goals := []Models.Goal{goalWithMilestones(dailyMilestone("m1", "Stretch", ""))}

	reconciled, shouldPersist := Reconcile(goals, nil)

	require.Len(t, reconciled, 1)
	assert.True(t, shouldPersist)
	assert.Equal(t, "Stretch", reconciled[0].Title)
	assert.False(t, reconciled[0].Completed)
}

func TestReconcile_IsIdempotent(t *testing.T) {
	goals := []Models.Goal{goalWithMilestones(
		dailyMilestone("m1", "Stretch", ""),
		dailyMilestone("m2", "Meditate", "10 minutes"),
	)}

	first, shouldPersist := Reconcile(goals, nil)
	require.True(t, shouldPersist)

	second, shouldPersist := Reconcile(goals, first)
	assert.False(t, shouldPersist, "unchanged input must not persist a second time")
	assert.Equal(t, first, second)
}

func TestReconcile_MatchesByFieldsNotIdentifier(t *testing.T) {
	// The cached instance was created from an earlier fetch that carried a
	// different identifier for the same milestone.
	cached := []Models.RecurringTask{{
		TaskID:      "old-id",
		Title:       "Meditate",
		Description: "10 minutes",
		TargetDate:  reconcileDay,
		Completed:   true,
	}}
	goals := []Models.Goal{goalWithMilestones(dailyMilestone("new-id", "Meditate", "10 minutes"))}

	reconciled, shouldPersist := Reconcile(goals, cached)

	require.Len(t, reconciled, 1)
	assert.False(t, shouldPersist)
	assert.Equal(t, "old-id", reconciled[0].TaskID)
	assert.True(t, reconciled[0].Completed, "cached completion must survive an identifier change")
}

func TestReconcile_DropsStaleEntries(t *testing.T) {
	cached := []Models.RecurringTask{
		{TaskID: "m1", Title: "Stretch", TargetDate: reconcileDay},
		{TaskID: "m2", Title: "Journal", TargetDate: reconcileDay},
	}
	// Journal lost its everyDayAction flag.
	journal := dailyMilestone("m2", "Journal", "")
	journal.EveryDayAction = false
	goals := []Models.Goal{goalWithMilestones(dailyMilestone("m1", "Stretch", ""), journal)}

	reconciled, shouldPersist := Reconcile(goals, cached)

	require.Len(t, reconciled, 1)
	assert.True(t, shouldPersist, "a shrinking set must persist")
	assert.Equal(t, "Stretch", reconciled[0].Title)
}

func TestReconcile_ValidComeBeforeNewInDiscoveryOrder(t *testing.T) {
	cached := []Models.RecurringTask{
		{TaskID: "m2", Title: "Meditate", TargetDate: reconcileDay, Completed: true},
	}
	goals := []Models.Goal{
		goalWithMilestones(dailyMilestone("m1", "Stretch", "")),
		goalWithMilestones(dailyMilestone("m2", "Meditate", ""), dailyMilestone("m3", "Journal", "")),
	}

	reconciled, shouldPersist := Reconcile(goals, cached)

	require.Len(t, reconciled, 3)
	assert.True(t, shouldPersist)
	assert.Equal(t, "Meditate", reconciled[0].Title, "valid cached entries come first")
	assert.Equal(t, "Stretch", reconciled[1].Title)
	assert.Equal(t, "Journal", reconciled[2].Title)
}

func TestReconcile_AssignsIdentifierToUnpersistedMilestones(t *testing.T) {
	milestone := dailyMilestone("", "Stretch", "")
	goals := []Models.Goal{goalWithMilestones(milestone)}

	reconciled, _ := Reconcile(goals, nil)

	require.Len(t, reconciled, 1)
	assert.NotEmpty(t, reconciled[0].TaskID, "instances need an identifier to survive persistence")
}

func TestReconcile_IgnoresDateBelowDayPrecision(t *testing.T) {
	cached := []Models.RecurringTask{{
		TaskID:     "m1",
		Title:      "Stretch",
		TargetDate: reconcileDay.Add(8 * time.Hour),
		Completed:  true,
	}}
	goals := []Models.Goal{goalWithMilestones(dailyMilestone("m1", "Stretch", ""))}

	reconciled, shouldPersist := Reconcile(goals, cached)

	require.Len(t, reconciled, 1)
	assert.False(t, shouldPersist)
	assert.True(t, reconciled[0].Completed)
}

func TestDailyMilestones_FlattensInOrder(t *testing.T) {
	weekly := Models.Milestone{RemoteID: "w1", Title: "Plan week", TargetDate: reconcileDay}
	goals := []Models.Goal{
		goalWithMilestones(dailyMilestone("m1", "Stretch", ""), weekly),
		goalWithMilestones(dailyMilestone("m2", "Meditate", "")),
	}

	daily := DailyMilestones(goals)

	require.Len(t, daily, 2)
	assert.Equal(t, "Stretch", daily[0].Title)
	assert.Equal(t, "Meditate", daily[1].Title)
}
