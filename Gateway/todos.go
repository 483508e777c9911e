package Gateway

import (
	"context"
	"fmt"
	"net/http"

	"Momentum/Models"
)

// FetchTodos retrieves all todo lists of the signed-in user.
func (c *Client) FetchTodos(ctx context.Context) ([]Models.TodoList, error) {
	var todos []Models.TodoList
	if err := c.do(ctx, http.MethodGet, "/todos/user", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo creates a new todo list.
func (c *Client) CreateTodo(ctx context.Context, todo Models.TodoList) (Models.TodoList, error) {
	var created Models.TodoList
	if err := c.do(ctx, http.MethodPost, "/todos", todo, &created); err != nil {
		return Models.TodoList{}, err
	}
	return created, nil
}

// UpdateTodo updates an existing todo list.
func (c *Client) UpdateTodo(ctx context.Context, todoID string, todo Models.TodoList) (Models.TodoList, error) {
	var updated Models.TodoList
	if err := c.do(ctx, http.MethodPut, "/todos/"+todoID, todo, &updated); err != nil {
		return Models.TodoList{}, err
	}
	return updated, nil
}

// DeleteTodo removes a todo list.
func (c *Client) DeleteTodo(ctx context.Context, todoID string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+todoID, nil, nil)
}

// AddTodoItem appends an item to a todo list.
func (c *Client) AddTodoItem(ctx context.Context, todoID string, item Models.TodoItem) (Models.TodoList, error) {
	var updated Models.TodoList
	path := fmt.Sprintf("/todos/%s/items", todoID)
	if err := c.do(ctx, http.MethodPost, path, item, &updated); err != nil {
		return Models.TodoList{}, err
	}
	return updated, nil
}

// UpdateTodoItem updates one item of a todo list.
func (c *Client) UpdateTodoItem(ctx context.Context, todoID, itemID string, item Models.TodoItem) (Models.TodoList, error) {
	var updated Models.TodoList
	path := fmt.Sprintf("/todos/%s/items/%s", todoID, itemID)
	if err := c.do(ctx, http.MethodPut, path, item, &updated); err != nil {
		return Models.TodoList{}, err
	}
	return updated, nil
}

// DeleteTodoItem removes one item from a todo list.
func (c *Client) DeleteTodoItem(ctx context.Context, todoID, itemID string) error {
	path := fmt.Sprintf("/todos/%s/items/%s", todoID, itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
