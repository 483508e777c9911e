package Gateway

import (
	"context"
	"fmt"
	"net/http"

	"Momentum/Models"
)

// FetchGoals retrieves all goals of the signed-in user.
func (c *Client) FetchGoals(ctx context.Context) ([]Models.Goal, error) {
	var goals []Models.Goal
	if err := c.do(ctx, http.MethodGet, "/goals/user", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoal creates a new goal and returns the persisted record.
func (c *Client) CreateGoal(ctx context.Context, goal Models.Goal) (Models.Goal, error) {
	var created Models.Goal
	if err := c.do(ctx, http.MethodPost, "/goals", goal, &created); err != nil {
		return Models.Goal{}, err
	}
	return created, nil
}

// UpdateGoal updates an existing goal.
func (c *Client) UpdateGoal(ctx context.Context, goalID string, goal Models.Goal) (Models.Goal, error) {
	var updated Models.Goal
	if err := c.do(ctx, http.MethodPut, "/goals/"+goalID, goal, &updated); err != nil {
		return Models.Goal{}, err
	}
	return updated, nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, goalID string) error {
	return c.do(ctx, http.MethodDelete, "/goals/"+goalID, nil, nil)
}

// AddMilestone creates a milestone under a goal.
func (c *Client) AddMilestone(ctx context.Context, goalID string, milestone Models.Milestone) (Models.Goal, error) {
	var updated Models.Goal
	path := fmt.Sprintf("/goals/%s/milestones", goalID)
	if err := c.do(ctx, http.MethodPost, path, milestone, &updated); err != nil {
		return Models.Goal{}, err
	}
	return updated, nil
}

// UpdateMilestone updates a milestone of a goal.
func (c *Client) UpdateMilestone(ctx context.Context, goalID, milestoneID string, milestone Models.Milestone) (Models.Goal, error) {
	var updated Models.Goal
	path := fmt.Sprintf("/goals/%s/milestones/%s", goalID, milestoneID)
	if err := c.do(ctx, http.MethodPut, path, milestone, &updated); err != nil {
		return Models.Goal{}, err
	}
	return updated, nil
}

// DeleteMilestone removes a milestone from a goal.
func (c *Client) DeleteMilestone(ctx context.Context, goalID, milestoneID string) error {
	path := fmt.Sprintf("/goals/%s/milestones/%s", goalID, milestoneID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
