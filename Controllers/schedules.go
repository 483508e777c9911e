package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"Momentum/AbstractFunctions"
	"Momentum/Gateway"
	"Momentum/Models"
	"Momentum/Store"
)

// ScheduleController handles daily schedule endpoints.
type ScheduleController struct {
	Store *Store.Store
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(store *Store.Store) *ScheduleController {
	return &ScheduleController{Store: store}
}

// TaskInput is the payload for a task inside a schedule.
type TaskInput struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Priority      string `json:"priority" validate:"required,oneof=haute moyenne basse"`
	Status        string `json:"status" validate:"omitempty,oneof='à faire' 'en cours' complet"`
	EstimatedTime int    `json:"estimatedTime" validate:"gte=0"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

// ScheduleInput is the payload for creating or replacing the schedule of
// one date.
type ScheduleInput struct {
	Date  string      `json:"date" validate:"required,datetime=2006-01-02"`
	Tasks []TaskInput `json:"tasks" validate:"dive"`
}

// GetSchedules retrieves the cached schedule collection.
func (c *ScheduleController) GetSchedules(ctx *fiber.Ctx) error {
	status, err := c.Store.Schedules.State()
	if status == Store.StatusFailed && err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(c.Store.Schedules.Schedules())
}

// CreateOrUpdateSchedule upserts the schedule for a date.
func (c *ScheduleController) CreateOrUpdateSchedule(ctx *fiber.Ctx) error {
	var input ScheduleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	payload := Gateway.SchedulePayload{
		Date:  AbstractFunctions.NormalizeDay(input.Date),
		Tasks: tasksFromInput(input.Tasks),
	}
	if err := c.Store.Schedules.CreateOrUpdate(ctx.UserContext(), payload); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to save schedule"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(c.Store.Schedules.Schedules())
}

// DeleteSchedule removes a schedule.
func (c *ScheduleController) DeleteSchedule(ctx *fiber.Ctx) error {
	if err := c.Store.Schedules.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to delete schedule"})
	}
	return ctx.JSON(fiber.Map{"message": "Schedule deleted successfully"})
}

// AddTask appends a task to a schedule.
func (c *ScheduleController) AddTask(ctx *fiber.Ctx) error {
	var input TaskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	if err := c.Store.Schedules.AddTask(ctx.UserContext(), ctx.Params("id"), taskFromInput(input)); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to add task"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(c.Store.Schedules.Schedules())
}

// UpdateTask updates one task inside a schedule.
func (c *ScheduleController) UpdateTask(ctx *fiber.Ctx) error {
	var input TaskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	task := taskFromInput(input)
	task.RemoteID = ctx.Params("taskId")
	if err := c.Store.Schedules.UpdateTask(ctx.UserContext(), ctx.Params("id"), task.RemoteID, task); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to update task"})
	}
	return ctx.JSON(c.Store.Schedules.Schedules())
}

// DeleteTask removes one task from a schedule.
func (c *ScheduleController) DeleteTask(ctx *fiber.Ctx) error {
	if err := c.Store.Schedules.DeleteTask(ctx.UserContext(), ctx.Params("id"), ctx.Params("taskId")); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to delete task"})
	}
	return ctx.JSON(fiber.Map{"message": "Task deleted successfully"})
}

func taskFromInput(input TaskInput) Models.Task {
	task := Models.Task{
		Title:         input.Title,
		Description:   input.Description,
		Priority:      input.Priority,
		Status:        input.Status,
		EstimatedTime: input.EstimatedTime,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
	}
	if task.Status == "" {
		task.Status = Models.TaskStatusToDo
	}
	return task
}

func tasksFromInput(inputs []TaskInput) []Models.Task {
	tasks := make([]Models.Task, 0, len(inputs))
	for _, input := range inputs {
		tasks = append(tasks, taskFromInput(input))
	}
	return tasks
}
