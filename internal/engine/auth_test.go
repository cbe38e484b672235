package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/leggo/internal/auth"
	"example.com/leggo/internal/domain"
	"example.com/leggo/internal/persistence"
	"example.com/leggo/internal/persistence/memory"
)

func demoSession() *domain.UserSession {
	return &domain.UserSession{
		Token:  "mock-jwt-token",
		UserID: "mockUser123",
		Email:  "user@leggo.com",
	}
}

func TestEngineStartsLoading(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	snap := e.Snapshot()
	require.True(t, snap.IsLoadingAuth)
	require.False(t, snap.IsAuthenticated)
	require.Nil(t, snap.CurrentUser)
}

func TestAuthenticateLoginSuccess(t *testing.T) {
	store := memory.NewStore()
	e := newTestEngine(t, store, &stubAuth{loginSession: demoSession()})

	ok, err := e.Authenticate(context.Background(), auth.KindLogin, "user@leggo.com", "password123")
	require.NoError(t, err)
	require.True(t, ok)

	snap := e.Snapshot()
	require.True(t, snap.IsAuthenticated)
	require.False(t, snap.IsLoadingAuth)
	require.Equal(t, "mockUser123", snap.CurrentUser.UserID)
	require.Equal(t, "mock-jwt-token", snap.Token)

	value, found, err := store.Get(context.Background(), persistence.SessionKey)
	require.NoError(t, err)
	require.True(t, found)
	restored, err := persistence.DecodeSession(value)
	require.NoError(t, err)
	require.Equal(t, *demoSession(), restored)
}

func TestAuthenticateInvalidCredentialsIsNotAnError(t *testing.T) {
	stub := &stubAuth{loginSession: nil}
	e := newTestEngine(t, nil, stub)

	ok, err := e.Authenticate(context.Background(), auth.KindLogin, "user@leggo.com", "wrong")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, stub.loginCalls)
	require.False(t, e.Snapshot().IsAuthenticated)
}

func TestAuthenticateSignupUsesSignupExchange(t *testing.T) {
	stub := &stubAuth{signupSession: &domain.UserSession{
		Token:  "fresh",
		UserID: "user-1",
		Email:  "new@leggo.com",
	}}
	e := newTestEngine(t, nil, stub)

	ok, err := e.Authenticate(context.Background(), auth.KindSignup, "new@leggo.com", "pw")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, stub.signupCalls)
	require.Zero(t, stub.loginCalls)
	require.Equal(t, "user-1", e.Snapshot().CurrentUser.UserID)
}

func TestLoginPersistenceFailureLeavesStateUnauthenticated(t *testing.T) {
	store := memory.NewStore()
	store.SetErr = errors.New("storage full")
	e := newTestEngine(t, store, nil)

	err := e.LoginUser(context.Background(), *demoSession())
	require.Error(t, err)

	snap := e.Snapshot()
	require.False(t, snap.IsAuthenticated)
	require.Nil(t, snap.CurrentUser)
	require.Empty(t, snap.Token)
}

func TestLogoutClearsStateEvenWhenRemovalFails(t *testing.T) {
	store := memory.NewStore()
	e := newTestEngine(t, store, nil)
	login(t, e)

	store.RemoveErr = errors.New("io error")
	err := e.Logout(context.Background())
	require.Error(t, err, "removal failure must be surfaced")

	snap := e.Snapshot()
	require.False(t, snap.IsAuthenticated)
	require.Nil(t, snap.CurrentUser)
	require.Empty(t, snap.Token)
	require.False(t, snap.IsLoadingAuth)
}

func TestLogoutRemovesPersistedSession(t *testing.T) {
	store := memory.NewStore()
	e := newTestEngine(t, store, nil)
	login(t, e)
	require.Equal(t, 1, store.Len())

	require.NoError(t, e.Logout(context.Background()))
	require.Zero(t, store.Len())
}

func TestRecoverSessionRestoresValidSession(t *testing.T) {
	store := memory.NewStore()
	blob, err := persistence.EncodeSession(*demoSession())
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), persistence.SessionKey, blob))

	e := newTestEngine(t, store, nil)
	e.RecoverSession(context.Background())

	snap := e.Snapshot()
	require.True(t, snap.IsAuthenticated)
	require.False(t, snap.IsLoadingAuth)
	require.Equal(t, "mockUser123", snap.CurrentUser.UserID)
	require.Equal(t, "mock-jwt-token", snap.Token)
}

func TestRecoverSessionAlwaysEndsLoading(t *testing.T) {
	cases := []struct {
		name  string
		store func() *memory.Store
	}{
		{"no persisted session", func() *memory.Store {
			return memory.NewStore()
		}},
		{"malformed blob", func() *memory.Store {
			s := memory.NewStore()
			_ = s.Set(context.Background(), persistence.SessionKey, "{not json")
			return s
		}},
		{"empty token", func() *memory.Store {
			s := memory.NewStore()
			blob, _ := persistence.EncodeSession(domain.UserSession{UserID: "u", Email: "e"})
			_ = s.Set(context.Background(), persistence.SessionKey, blob)
			return s
		}},
		{"adapter read error", func() *memory.Store {
			s := memory.NewStore()
			s.GetErr = errors.New("corrupt store")
			return s
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, tc.store(), nil)
			e.RecoverSession(context.Background())

			snap := e.Snapshot()
			if snap.IsLoadingAuth {
				t.Fatal("recovery must always end with IsLoadingAuth=false")
			}
			if snap.IsAuthenticated {
				t.Fatal("degraded recovery must leave the engine unauthenticated")
			}
			if snap.CurrentUser != nil || snap.Token != "" {
				t.Fatal("degraded recovery must reset session fields")
			}
		})
	}
}

func TestRecoverSessionSignalsLoadingTransition(t *testing.T) {
	store := memory.NewStore()
	e := newTestEngine(t, store, nil)

	var loadingSeen []bool
	defer e.Subscribe(func(s State) {
		loadingSeen = append(loadingSeen, s.IsLoadingAuth)
	})()

	e.RecoverSession(context.Background())

	require.Equal(t, []bool{true, false}, loadingSeen,
		"UI relies on the loading flag flipping on, then off")
}

func TestAuthenticateExchangeErrorPropagates(t *testing.T) {
	stub := &stubAuth{loginErr: errors.New("token signing broken")}
	e := newTestEngine(t, nil, stub)

	ok, err := e.Authenticate(context.Background(), auth.KindLogin, "user@leggo.com", "password123")
	require.Error(t, err)
	require.False(t, ok)
	require.False(t, e.Snapshot().IsAuthenticated)
}
