package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"Momentum/Models"
	"Momentum/Store"
)

// TodoController handles todo list endpoints.
type TodoController struct {
	Store *Store.Store
}

// NewTodoController creates a new TodoController
func NewTodoController(store *Store.Store) *TodoController {
	return &TodoController{Store: store}
}

// TodoInput is the payload for creating or renaming a todo list.
type TodoInput struct {
	Title string `json:"title" validate:"required"`
}

// TodoItemInput is the payload for a todo list item.
type TodoItemInput struct {
	Title string `json:"title" validate:"required"`
	Done  bool   `json:"done"`
}

// GetTodos retrieves the cached todo collection.
func (c *TodoController) GetTodos(ctx *fiber.Ctx) error {
	status, err := c.Store.Todos.State()
	if status == Store.StatusFailed && err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(c.Store.Todos.Todos())
}

// CreateTodo creates a new todo list on the backend.
func (c *TodoController) CreateTodo(ctx *fiber.Ctx) error {
	var input TodoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	if err := c.Store.Todos.Create(ctx.UserContext(), Models.TodoList{Title: input.Title}); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create todo"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(c.Store.Todos.Todos())
}

// UpdateTodo renames a todo list.
func (c *TodoController) UpdateTodo(ctx *fiber.Ctx) error {
	var input TodoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	todo := Models.TodoList{RemoteID: ctx.Params("id"), Title: input.Title}
	if err := c.Store.Todos.Update(ctx.UserContext(), todo); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to update todo"})
	}
	return ctx.JSON(c.Store.Todos.Todos())
}

// DeleteTodo removes a todo list.
func (c *TodoController) DeleteTodo(ctx *fiber.Ctx) error {
	if err := c.Store.Todos.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to delete todo"})
	}
	return ctx.JSON(fiber.Map{"message": "Todo deleted successfully"})
}

// AddItem appends an item to a todo list.
func (c *TodoController) AddItem(ctx *fiber.Ctx) error {
	var input TodoItemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	if err := c.Store.Todos.AddItem(ctx.UserContext(), ctx.Params("id"), input.Title); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to add item"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(c.Store.Todos.Todos())
}

// UpdateItem updates one item of a todo list.
func (c *TodoController) UpdateItem(ctx *fiber.Ctx) error {
	var input TodoItemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	item := Models.TodoItem{RemoteID: ctx.Params("itemId"), Title: input.Title, Done: input.Done}
	if err := c.Store.Todos.UpdateItem(ctx.UserContext(), ctx.Params("id"), item.RemoteID, item); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to update item"})
	}
	return ctx.JSON(c.Store.Todos.Todos())
}

// DeleteItem removes one item from a todo list.
func (c *TodoController) DeleteItem(ctx *fiber.Ctx) error {
	if err := c.Store.Todos.DeleteItem(ctx.UserContext(), ctx.Params("id"), ctx.Params("itemId")); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to delete item"})
	}
	return ctx.JSON(fiber.Map{"message": "Item deleted successfully"})
}
