package Store

import (
	"context"
	"sync"

	"Momentum/Gateway"
	"Momentum/Models"
)

// GoalsSlice caches the user's goals.
type GoalsSlice struct {
	mu      sync.RWMutex
	gateway *Gateway.Client

	goals  []Models.Goal
	status Status
	err    error
}

// Fetch loads the full goal collection from the backend.
func (s *GoalsSlice) Fetch(ctx context.Context) error {
	s.setLoading()
	goals, err := s.gateway.FetchGoals(ctx)
	if err != nil {
		s.setFailed(err)
		return err
	}

	s.mu.Lock()
	s.goals = goals
	s.status = StatusSucceeded
	s.err = nil
	s.mu.Unlock()
	return nil
}

// Goals returns a copy of the cached collection.
func (s *GoalsSlice) Goals() []Models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// State reports the slice status and last error.
func (s *GoalsSlice) State() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.err
}

// Create dispatches a new goal, then refetches.
func (s *GoalsSlice) Create(ctx context.Context, goal Models.Goal) error {
	if _, err := s.gateway.CreateGoal(ctx, goal); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// Update dispatches a goal edit, then refetches.
func (s *GoalsSlice) Update(ctx context.Context, goal Models.Goal) error {
	if _, err := s.gateway.UpdateGoal(ctx, goal.RemoteID, goal); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// Delete dispatches a goal removal, then refetches.
func (s *GoalsSlice) Delete(ctx context.Context, goalID string) error {
	if err := s.gateway.DeleteGoal(ctx, goalID); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// AddMilestone dispatches a milestone creation, then refetches.
func (s *GoalsSlice) AddMilestone(ctx context.Context, goalID string, milestone Models.Milestone) error {
	if _, err := s.gateway.AddMilestone(ctx, goalID, milestone); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// UpdateMilestone dispatches a milestone edit, then refetches.
func (s *GoalsSlice) UpdateMilestone(ctx context.Context, goalID, milestoneID string, milestone Models.Milestone) error {
	if _, err := s.gateway.UpdateMilestone(ctx, goalID, milestoneID, milestone); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// DeleteMilestone dispatches a milestone removal, then refetches.
func (s *GoalsSlice) DeleteMilestone(ctx context.Context, goalID, milestoneID string) error {
	if err := s.gateway.DeleteMilestone(ctx, goalID, milestoneID); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

func (s *GoalsSlice) setLoading() {
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()
}

func (s *GoalsSlice) setFailed(err error) {
	s.mu.Lock()
	s.status = StatusFailed
	s.err = err
	s.mu.Unlock()
}
