package Store

import (
	"context"
	"sync"

	"Momentum/Gateway"
	"Momentum/Models"
)

// TodoSlice caches the user's todo lists.
type TodoSlice struct {
	mu      sync.RWMutex
	gateway *Gateway.Client

	todos  []Models.TodoList
	status Status
	err    error
}

// Fetch loads the full todo collection from the backend.
func (s *TodoSlice) Fetch(ctx context.Context) error {
	s.setLoading()
	todos, err := s.gateway.FetchTodos(ctx)
	if err != nil {
		s.setFailed(err)
		return err
	}

	s.mu.Lock()
	s.todos = todos
	s.status = StatusSucceeded
	s.err = nil
	s.mu.Unlock()
	return nil
}

// Todos returns a copy of the cached collection.
func (s *TodoSlice) Todos() []Models.TodoList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Models.TodoList, len(s.todos))
	copy(out, s.todos)
	return out
}

// State reports the slice status and last error.
func (s *TodoSlice) State() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.err
}

// Create dispatches a new todo list, then refetches.
func (s *TodoSlice) Create(ctx context.Context, todo Models.TodoList) error {
	if _, err := s.gateway.CreateTodo(ctx, todo); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// Update dispatches a todo list edit, then refetches.
func (s *TodoSlice) Update(ctx context.Context, todo Models.TodoList) error {
	if _, err := s.gateway.UpdateTodo(ctx, todo.RemoteID, todo); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// Delete dispatches a todo list removal, then refetches.
func (s *TodoSlice) Delete(ctx context.Context, todoID string) error {
	if err := s.gateway.DeleteTodo(ctx, todoID); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// AddItem dispatches an item addition, then refetches.
func (s *TodoSlice) AddItem(ctx context.Context, todoID, title string) error {
	if _, err := s.gateway.AddTodoItem(ctx, todoID, Models.TodoItem{Title: title}); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// UpdateItem dispatches an item edit, then refetches.
func (s *TodoSlice) UpdateItem(ctx context.Context, todoID, itemID string, item Models.TodoItem) error {
	if _, err := s.gateway.UpdateTodoItem(ctx, todoID, itemID, item); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// DeleteItem dispatches an item removal, then refetches.
func (s *TodoSlice) DeleteItem(ctx context.Context, todoID, itemID string) error {
	if err := s.gateway.DeleteTodoItem(ctx, todoID, itemID); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

func (s *TodoSlice) setLoading() {
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()
}

func (s *TodoSlice) setFailed(err error) {
	s.mu.Lock()
	s.status = StatusFailed
	s.err = err
	s.mu.Unlock()
}
