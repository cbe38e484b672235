// Package persistence defines the scoped key-value contract the client uses
// for durable state, plus the codec for the persisted session blob.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"example.com/leggo/internal/domain"
)

// SessionKey is the single key under which the session blob is stored.
const SessionKey = "leggo:user_session"

// Store is an asynchronous string key-value adapter. Get reports absence via
// ok=false rather than an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// EncodeSession serialises a session for storage.
func EncodeSession(session domain.UserSession) (string, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	return string(raw), nil
}

// DecodeSession parses a stored session blob.
func DecodeSession(value string) (domain.UserSession, error) {
	var session domain.UserSession
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		return domain.UserSession{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}
