package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"Momentum/Models"
	"Momentum/Recurring"
	"Momentum/Store"
)

// GoalsController handles goal and milestone endpoints. Every mutation
// dispatches to the backend through the store, then reloads the recurring
// planner since the milestone set may have changed.
type GoalsController struct {
	Store   *Store.Store
	Planner *Recurring.Planner
}

// NewGoalsController creates a new GoalsController
func NewGoalsController(store *Store.Store, planner *Recurring.Planner) *GoalsController {
	return &GoalsController{Store: store, Planner: planner}
}

// GoalInput is the payload for creating or updating a goal.
type GoalInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Step        int       `json:"step" validate:"gte=0"`
	Priority    string    `json:"priority" validate:"required,oneof=haute moyenne basse"`
	Status      string    `json:"status" validate:"omitempty,oneof='non démarré' 'en cours' complet"`
	Progress    int       `json:"progress" validate:"gte=0,lte=100"`
	TargetDate  time.Time `json:"targetDate" validate:"required"`
}

// MilestoneInput is the payload for creating or updating a milestone.
type MilestoneInput struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	Step           int       `json:"step" validate:"gte=0"`
	Completed      bool      `json:"completed"`
	Status         string    `json:"status"`
	TargetDate     time.Time `json:"targetDate" validate:"required"`
	EveryDayAction bool      `json:"everyDayAction"`
}

// GetGoals retrieves the cached goal collection.
func (c *GoalsController) GetGoals(ctx *fiber.Ctx) error {
	status, err := c.Store.Goals.State()
	if status == Store.StatusFailed && err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(c.Store.Goals.Goals())
}

// CreateGoal creates a new goal on the backend.
func (c *GoalsController) CreateGoal(ctx *fiber.Ctx) error {
	var input GoalInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	goal := Models.Goal{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Step:        input.Step,
		Priority:    input.Priority,
		Status:      input.Status,
		Progress:    input.Progress,
		TargetDate:  input.TargetDate,
	}
	if goal.Status == "" {
		goal.Status = Models.GoalStatusNotStarted
	}

	if err := c.Store.Goals.Create(ctx.UserContext(), goal); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create goal"})
	}
	c.reloadPlanner()
	return ctx.Status(fiber.StatusCreated).JSON(c.Store.Goals.Goals())
}

// UpdateGoal updates an existing goal on the backend.
func (c *GoalsController) UpdateGoal(ctx *fiber.Ctx) error {
	var input GoalInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	goal := Models.Goal{
		RemoteID:    ctx.Params("id"),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Step:        input.Step,
		Priority:    input.Priority,
		Status:      input.Status,
		Progress:    input.Progress,
		TargetDate:  input.TargetDate,
	}

	if err := c.Store.Goals.Update(ctx.UserContext(), goal); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to update goal"})
	}
	c.reloadPlanner()
	return ctx.JSON(c.Store.Goals.Goals())
}

// DeleteGoal removes a goal on the backend.
func (c *GoalsController) DeleteGoal(ctx *fiber.Ctx) error {
	if err := c.Store.Goals.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to delete goal"})
	}
	c.reloadPlanner()
	return ctx.JSON(fiber.Map{"message": "Goal deleted successfully"})
}

// AddMilestone creates a milestone under a goal.
func (c *GoalsController) AddMilestone(ctx *fiber.Ctx) error {
	var input MilestoneInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	milestone := milestoneFromInput(input)
	if err := c.Store.Goals.AddMilestone(ctx.UserContext(), ctx.Params("id"), milestone); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to add milestone"})
	}
	c.reloadPlanner()
	return ctx.Status(fiber.StatusCreated).JSON(c.Store.Goals.Goals())
}

// UpdateMilestone updates a milestone of a goal. Once a milestone is
// complete its everyDayAction flag can no longer be toggled.
func (c *GoalsController) UpdateMilestone(ctx *fiber.Ctx) error {
	var input MilestoneInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	goalID := ctx.Params("id")
	milestoneID := ctx.Params("milestoneId")

	if existing := c.findMilestone(goalID, milestoneID); existing != nil {
		if existing.Status == Models.GoalStatusComplete && existing.EveryDayAction != input.EveryDayAction {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Daily action flag cannot change on a completed milestone",
			})
		}
	}

	milestone := milestoneFromInput(input)
	milestone.RemoteID = milestoneID
	if err := c.Store.Goals.UpdateMilestone(ctx.UserContext(), goalID, milestoneID, milestone); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to update milestone"})
	}
	c.reloadPlanner()
	return ctx.JSON(c.Store.Goals.Goals())
}

// DeleteMilestone removes a milestone from a goal.
func (c *GoalsController) DeleteMilestone(ctx *fiber.Ctx) error {
	if err := c.Store.Goals.DeleteMilestone(ctx.UserContext(), ctx.Params("id"), ctx.Params("milestoneId")); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to delete milestone"})
	}
	c.reloadPlanner()
	return ctx.JSON(fiber.Map{"message": "Milestone deleted successfully"})
}

func (c *GoalsController) findMilestone(goalID, milestoneID string) *Models.Milestone {
	for _, goal := range c.Store.Goals.Goals() {
		if goal.RemoteID != goalID {
			continue
		}
		for i := range goal.Milestones {
			if goal.Milestones[i].RemoteID == milestoneID {
				m := goal.Milestones[i]
				return &m
			}
		}
	}
	return nil
}

func (c *GoalsController) reloadPlanner() {
	if c.Planner != nil {
		c.Planner.Load(c.Store.Goals.Goals())
	}
}

func milestoneFromInput(input MilestoneInput) Models.Milestone {
	return Models.Milestone{
		Title:          input.Title,
		Description:    input.Description,
		Step:           input.Step,
		Completed:      input.Completed,
		Status:         input.Status,
		TargetDate:     input.TargetDate,
		EveryDayAction: input.EveryDayAction,
	}
}
