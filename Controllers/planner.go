package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"Momentum/AbstractFunctions"
	"Momentum/Recurring"
	"Momentum/Store"
)

// overridable in tests
var timeNow = time.Now

// PlannerController serves the day-planning view: today's recurring tasks
// and the schedule for a date.
type PlannerController struct {
	Planner *Recurring.Planner
	Store   *Store.Store
}

// NewPlannerController creates a new PlannerController
func NewPlannerController(planner *Recurring.Planner, store *Store.Store) *PlannerController {
	return &PlannerController{Planner: planner, Store: store}
}

// GetRecurring returns the in-memory working set of recurring tasks.
func (c *PlannerController) GetRecurring(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Planner.Tasks())
}

// ToggleRecurring flips completion on one recurring task. Local only;
// nothing is sent to the backend.
func (c *PlannerController) ToggleRecurring(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	task, err := c.Planner.ToggleCompletion(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recurring task not found"})
	}
	return ctx.JSON(task)
}

// ReloadRecurring re-runs reconciliation against the current goal set.
func (c *PlannerController) ReloadRecurring(ctx *fiber.Ctx) error {
	if err := c.Planner.Load(c.Store.Goals.Goals()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reload recurring tasks"})
	}
	return ctx.JSON(c.Planner.Tasks())
}

// GetToday returns today's schedule. A day without a schedule is the
// expected empty case, rendered as an explicit empty payload.
func (c *PlannerController) GetToday(ctx *fiber.Ctx) error {
	return c.scheduleForDate(ctx, AbstractFunctions.DayString(timeNow()))
}

// GetByDate returns the schedule planned for the given date.
func (c *PlannerController) GetByDate(ctx *fiber.Ctx) error {
	return c.scheduleForDate(ctx, ctx.Params("date"))
}

func (c *PlannerController) scheduleForDate(ctx *fiber.Ctx, date string) error {
	schedule := AbstractFunctions.GetScheduleForDate(date, c.Store.Schedules.Schedules())
	if schedule == nil {
		return ctx.JSON(fiber.Map{
			"date":     AbstractFunctions.NormalizeDay(date),
			"schedule": nil,
		})
	}
	return ctx.JSON(fiber.Map{
		"date":     AbstractFunctions.NormalizeDay(date),
		"schedule": schedule,
	})
}
