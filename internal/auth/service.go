package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"example.com/leggo/internal/domain"
)

// The single credential pair accepted by the mock login exchange.
const (
	DemoEmail    = "user@leggo.com"
	DemoPassword = "password123"
	DemoUserID   = "mockUser123"
)

// Kind selects which credential exchange Authenticate performs.
type Kind string

const (
	KindLogin  Kind = "login"
	KindSignup Kind = "signup"
)

// Service simulates a credential exchange against a backend that does not
// exist. Login accepts exactly one demo pair; Signup always succeeds. Both
// wait an artificial delay before resolving.
type Service struct {
	cfg   Config
	delay time.Duration
	sleep func(context.Context, time.Duration)
	now   func() time.Time
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithSleep overrides the delay function, letting tests resolve immediately.
func WithSleep(sleep func(context.Context, time.Duration)) Option {
	return func(s *Service) {
		s.sleep = sleep
	}
}

// WithClock overrides the time source used for token claims.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService constructs a Service with the given signing config and simulated
// round-trip delay.
func NewService(cfg Config, delay time.Duration, opts ...Option) *Service {
	s := &Service{
		cfg:   cfg,
		delay: delay,
		sleep: defaultSleep,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Login exchanges credentials for a session. An unknown pair yields
// (nil, nil): an expected negative outcome the caller branches on, not an
// error.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.UserSession, error) {
	s.sleep(ctx, s.delay)
	if email != DemoEmail || password != DemoPassword {
		return nil, nil
	}
	token, err := MintToken(s.cfg, DemoUserID, email, s.now())
	if err != nil {
		return nil, err
	}
	return &domain.UserSession{
		Token:  token,
		UserID: DemoUserID,
		Email:  email,
	}, nil
}

// Signup registers a new identity. It always succeeds and synthesizes a fresh
// user id.
func (s *Service) Signup(ctx context.Context, email, password string) (*domain.UserSession, error) {
	s.sleep(ctx, s.delay)
	userID := fmt.Sprintf("user-%s", uuid.NewString())
	token, err := MintToken(s.cfg, userID, email, s.now())
	if err != nil {
		return nil, err
	}
	return &domain.UserSession{
		Token:  token,
		UserID: userID,
		Email:  email,
	}, nil
}
