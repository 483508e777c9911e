package Store

import (
	"context"
	"sync"

	"Momentum/Gateway"
	"Momentum/Models"
)

// AuthSlice tracks the session. The session cookie itself lives in the
// gateway's cookie jar; this slice only mirrors who is signed in.
type AuthSlice struct {
	mu      sync.RWMutex
	gateway *Gateway.Client

	user   *Models.User
	status Status
	err    error
}

// Login signs in against the backend and records the user.
func (s *AuthSlice) Login(ctx context.Context, email, password string) (Models.User, error) {
	s.setLoading()
	user, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.setFailed(err)
		return Models.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.status = StatusSucceeded
	s.err = nil
	s.mu.Unlock()
	return user, nil
}

// Register creates an account and records the user.
func (s *AuthSlice) Register(ctx context.Context, reg Gateway.Registration) (Models.User, error) {
	s.setLoading()
	user, err := s.gateway.Register(ctx, reg)
	if err != nil {
		s.setFailed(err)
		return Models.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.status = StatusSucceeded
	s.err = nil
	s.mu.Unlock()
	return user, nil
}

// Logout invalidates the session and clears the recorded user.
func (s *AuthSlice) Logout(ctx context.Context) error {
	err := s.gateway.Logout(ctx)

	s.mu.Lock()
	s.user = nil
	s.status = StatusIdle
	s.err = nil
	s.mu.Unlock()
	return err
}

// UpdateProfile dispatches a profile edit and records the result.
func (s *AuthSlice) UpdateProfile(ctx context.Context, user Models.User) (Models.User, error) {
	updated, err := s.gateway.UpdateProfile(ctx, user)
	if err != nil {
		s.setFailed(err)
		return Models.User{}, err
	}

	s.mu.Lock()
	s.user = &updated
	s.status = StatusSucceeded
	s.err = nil
	s.mu.Unlock()
	return updated, nil
}

// User returns the signed-in user, or nil.
func (s *AuthSlice) User() *Models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// State reports the slice status and last error.
func (s *AuthSlice) State() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.err
}

func (s *AuthSlice) setLoading() {
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()
}

func (s *AuthSlice) setFailed(err error) {
	s.mu.Lock()
	s.status = StatusFailed
	s.err = err
	s.mu.Unlock()
}
