package engine

import (
	"context"
	"fmt"

	"example.com/leggo/internal/auth"
	"example.com/leggo/internal/domain"
	"example.com/leggo/internal/observability"
	"example.com/leggo/internal/persistence"
)

// LoginUser persists the session and commits the authenticated state. If
// persistence fails the error is returned and the state is left
// unauthenticated.
func (e *Engine) LoginUser(ctx context.Context, session domain.UserSession) error {
	blob, err := persistence.EncodeSession(session)
	if err != nil {
		return err
	}
	if err := e.store.Set(ctx, persistence.SessionKey, blob); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	e.commit(func(s *State) bool {
		user := session
		s.IsAuthenticated = true
		s.Token = session.Token
		s.CurrentUser = &user
		s.IsLoadingAuth = false
		return true
	})
	return nil
}

// Authenticate drives the mock credential exchange and, on success, logs the
// session in. An unknown login pair yields (false, nil): invalid credentials
// are an expected outcome the caller branches on, not an error.
func (e *Engine) Authenticate(ctx context.Context, kind auth.Kind, email, password string) (bool, error) {
	var (
		session *domain.UserSession
		err     error
	)
	switch kind {
	case auth.KindSignup:
		session, err = e.auth.Signup(ctx, email, password)
	default:
		session, err = e.auth.Login(ctx, email, password)
	}
	if err != nil {
		observability.RecordAuthAttempt("error")
		return false, err
	}
	if session == nil {
		observability.RecordAuthAttempt("invalid_credentials")
		return false, nil
	}
	if err := e.LoginUser(ctx, *session); err != nil {
		observability.RecordAuthAttempt("error")
		return false, err
	}
	observability.RecordAuthAttempt("success")
	return true, nil
}

// Logout removes the persisted session and resets the auth slice. Local state
// is cleared even when removal fails; the error is returned so the UI can
// surface it.
func (e *Engine) Logout(ctx context.Context) error {
	err := e.store.Remove(ctx, persistence.SessionKey)
	e.commit(func(s *State) bool {
		clearAuth(s)
		return true
	})
	if err != nil {
		return fmt.Errorf("remove persisted session: %w", err)
	}
	return nil
}

// RecoverSession restores a previously persisted session at startup. It never
// fails: adapter errors and malformed blobs degrade to the unauthenticated
// defaults, and IsLoadingAuth is false when it returns regardless of outcome.
func (e *Engine) RecoverSession(ctx context.Context) {
	e.commit(func(s *State) bool {
		s.IsLoadingAuth = true
		return true
	})

	value, ok, err := e.store.Get(ctx, persistence.SessionKey)
	if err != nil {
		e.logger.Printf("session recovery failed: %v", err)
	}
	if err != nil || !ok {
		e.commit(func(s *State) bool {
			clearAuth(s)
			return true
		})
		return
	}

	session, err := persistence.DecodeSession(value)
	if err != nil || session.Token == "" {
		if err != nil {
			e.logger.Printf("discarding malformed persisted session: %v", err)
		}
		e.commit(func(s *State) bool {
			clearAuth(s)
			return true
		})
		return
	}

	e.commit(func(s *State) bool {
		user := session
		s.IsAuthenticated = true
		s.Token = session.Token
		s.CurrentUser = &user
		s.IsLoadingAuth = false
		return true
	})
}

func clearAuth(s *State) {
	s.IsAuthenticated = false
	s.Token = ""
	s.CurrentUser = nil
	s.IsLoadingAuth = false
}
