package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const alertGateKeyPrefix = "alert"

// AlertGateStore persists the per-user alert gate in Redis so the
// empty-to-non-empty transition survives restarts and is shared across
// API instances.
//
// Keys: "alert:{userID}:pending" and "alert:{userID}:urgent", no TTL —
// the gate only changes on explicit transitions.
type AlertGateStore struct {
	client *RedisClient
}

// NewAlertGateStore creates an AlertGateStore backed by the given RedisClient.
func NewAlertGateStore(r *RedisClient) *AlertGateStore {
	return &AlertGateStore{client: r}
}

// Pending reports whether an unacknowledged alert exists for the user.
func (s *AlertGateStore) Pending(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.getBool(ctx, s.key(userID, "pending"))
}

// SetPending records the alert-pending flag.
func (s *AlertGateStore) SetPending(ctx context.Context, userID uuid.UUID, v bool) error {
	return s.setBool(ctx, s.key(userID, "pending"), v)
}

// WasUrgent reports whether the urgent set was non-empty at the last
// observation. A never-observed user reads as false, so the first
// non-empty computation fires the gate.
func (s *AlertGateStore) WasUrgent(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.getBool(ctx, s.key(userID, "urgent"))
}

// SetWasUrgent records the urgent-set non-emptiness observation.
func (s *AlertGateStore) SetWasUrgent(ctx context.Context, userID uuid.UUID, v bool) error {
	return s.setBool(ctx, s.key(userID, "urgent"), v)
}

func (s *AlertGateStore) getBool(ctx context.Context, key string) (bool, error) {
	v, err := s.client.Client().Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("alert gate get: %w", err)
	}
	return v == "1", nil
}

func (s *AlertGateStore) setBool(ctx context.Context, key string, v bool) error {
	val := "0"
	if v {
		val = "1"
	}
	if err := s.client.Client().Set(ctx, key, val, 0).Err(); err != nil {
		return fmt.Errorf("alert gate set: %w", err)
	}
	return nil
}

func (s *AlertGateStore) key(userID uuid.UUID, field string) string {
	return fmt.Sprintf("%s:%s:%s", alertGateKeyPrefix, userID, field)
}
