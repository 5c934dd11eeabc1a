package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lojinha/internal/cart"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Store is the durable per-session key-value slot backed by Redis. It holds
// the cart snapshot and the checkout prefill so a session survives reloads.
// It satisfies the ledger's durable slot contract.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewStore creates a session store. Keys expire after ttl; every write
// refreshes the expiry.
func NewStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "session-store").Logger(),
	}
}

// NewClient creates a Redis client for the given address.
func NewClient(address, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
}

// Get reads the raw value stored under key. Returns cart.ErrSnapshotNotFound
// for a missing key so the ledger can treat it as "start empty".
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", cart.ErrSnapshotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session store get failed: %w", err)
	}
	return value, nil
}

// Set writes the raw value under key and refreshes its expiry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("session store set failed: %w", err)
	}
	return nil
}

var _ cart.Store = (*Store)(nil)

// CartKey returns the durable slot for a session's cart snapshot.
func CartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// prefillKey returns the durable slot for a session's checkout prefill.
func prefillKey(sessionID string) string {
	return fmt.Sprintf("checkout:%s", sessionID)
}

// Prefill is the last-used customer contact block, persisted so the
// checkout form can be pre-populated on the next visit.
type Prefill struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// SavePrefill stores the contact block for the session. Failures are logged
// only; prefill is a convenience, never a checkout dependency.
func (s *Store) SavePrefill(ctx context.Context, sessionID string, p Prefill) {
	data, err := json.Marshal(p)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode checkout prefill")
		return
	}
	if err := s.client.Set(ctx, prefillKey(sessionID), string(data), s.ttl).Err(); err != nil {
		s.logger.Warn().Err(err).Str("session", sessionID).Msg("failed to save checkout prefill")
	}
}

// LoadPrefill reads the contact block for the session. A missing or corrupt
// entry yields an empty prefill.
func (s *Store) LoadPrefill(ctx context.Context, sessionID string) Prefill {
	var p Prefill

	data, err := s.client.Get(ctx, prefillKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return p
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("session", sessionID).Msg("failed to load checkout prefill")
		return p
	}

	if err := json.Unmarshal([]byte(data), &p); err != nil {
		s.logger.Warn().Err(err).Str("session", sessionID).Msg("corrupt checkout prefill")
		return Prefill{}
	}
	return p
}
