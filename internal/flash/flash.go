// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package flash provides the one-time notice channel. Notices are
// queued in Valkey under a random id carried by a browser cookie and
// consumed on the next rendered view.
package flash

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the cookie that ties a browser to its queued notices.
	CookieName = "kronika_flash"

	// DefaultTTL bounds how long an unconsumed notice survives.
	DefaultTTL = 15 * time.Minute

	// keyPrefix namespaces flash keys in Valkey.
	keyPrefix = "flash:"

	// idLength is the byte length of the random flash id.
	idLength = 16
)

// Notice is a single queued message.
type Notice struct {
	Type    string `json:"type"` // "success" or "error"
	Message string `json:"message"`
}

// Store queues and drains notices in Valkey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a flash store backed by the given Valkey client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: DefaultTTL}
}

// Add queues a notice for the requesting browser, creating the flash
// cookie if it does not exist yet.
func (s *Store) Add(ctx context.Context, w http.ResponseWriter, r *http.Request, kind, message string) error {
	id, err := s.ensureCookie(w, r)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(Notice{Type: kind, Message: message})
	if err != nil {
		return fmt.Errorf("flash marshal: %w", err)
	}

	key := keyPrefix + id
	if err := s.client.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("flash push: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("flash expire: %w", err)
	}
	return nil
}

// Take drains and returns all queued notices for the requesting
// browser. A missing cookie or empty queue yields nil without error.
func (s *Store) Take(ctx context.Context, r *http.Request) ([]Notice, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	key := keyPrefix + cookie.Value
	payloads, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err == redis.Nil || len(payloads) == 0 {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("flash range: %w", err)
	}
	s.client.Del(ctx, key)

	notices := make([]Notice, 0, len(payloads))
	for _, p := range payloads {
		var n Notice
		if err := json.Unmarshal([]byte(p), &n); err != nil {
			continue
		}
		notices = append(notices, n)
	}
	return notices, nil
}

// ensureCookie returns the browser's flash id, minting the cookie when
// absent.
func (s *Store) ensureCookie(w http.ResponseWriter, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("flash id: %w", err)
	}
	id := hex.EncodeToString(b)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
	return id, nil
}
