package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marketplace/backend/internal/infrastructure/config"
)

// TokenRevocationStore invalidates JWT tokens before they expire.
// Logout revokes the single token by its JTI; suspending an account
// revokes every token issued to the user before the revocation time.
type TokenRevocationStore interface {
	// Revoke marks a token's JTI as revoked until the token would expire anyway
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked checks if a token's JTI has been revoked
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// RevokeAllForUser invalidates every token the user currently holds
	RevokeAllForUser(ctx context.Context, userID string, ttl time.Duration) error

	// IsUserRevoked checks if the token was issued before the user-wide revocation
	IsUserRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}

// RedisRevocationStore implements TokenRevocationStore on Redis.
// Entries expire together with the tokens they revoke, so the store
// never needs explicit cleanup.
type RedisRevocationStore struct {
	client *redis.Client
	prefix string
}

// NewRedisRevocationStore connects to Redis and returns a revocation store
func NewRedisRevocationStore(cfg config.RedisConfig) (*RedisRevocationStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for token revocation: %w", err)
	}

	return &RedisRevocationStore{
		client: client,
		prefix: "token:revoked:",
	}, nil
}

// NewRedisRevocationStoreWithClient wraps an existing Redis client
func NewRedisRevocationStoreWithClient(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{
		client: client,
		prefix: "token:revoked:",
	}
}

func (s *RedisRevocationStore) jtiKey(jti string) string {
	return s.prefix + "jti:" + jti
}

func (s *RedisRevocationStore) userKey(userID string) string {
	return s.prefix + "user:" + userID
}

// Revoke marks a token's JTI as revoked
func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked checks if a token's JTI has been revoked
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	exists, err := s.client.Exists(ctx, s.jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return exists > 0, nil
}

// RevokeAllForUser stores the current timestamp; tokens issued before it are rejected
func (s *RedisRevocationStore) RevokeAllForUser(ctx context.Context, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.userKey(userID), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke user tokens: %w", err)
	}
	return nil
}

// IsUserRevoked checks if the token predates a user-wide revocation
func (s *RedisRevocationStore) IsUserRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	value, err := s.client.Get(ctx, s.userKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user revocation: %w", err)
	}

	var revokedAt int64
	if _, err := fmt.Sscanf(value, "%d", &revokedAt); err != nil {
		return false, fmt.Errorf("failed to parse revocation timestamp: %w", err)
	}

	return issuedAt.Unix() <= revokedAt, nil
}

// Close closes the Redis client
func (s *RedisRevocationStore) Close() error {
	return s.client.Close()
}

var _ TokenRevocationStore = (*RedisRevocationStore)(nil)

// InMemoryRevocationStore provides an in-memory implementation for
// tests and single-instance development setups.
type InMemoryRevocationStore struct {
	mu        sync.RWMutex
	jtis      map[string]time.Time // JTI -> entry expiration
	userTimes map[string]time.Time // userID -> revocation time
}

// NewInMemoryRevocationStore creates a new in-memory revocation store
func NewInMemoryRevocationStore() *InMemoryRevocationStore {
	return &InMemoryRevocationStore{
		jtis:      make(map[string]time.Time),
		userTimes: make(map[string]time.Time),
	}
}

// Revoke marks a token's JTI as revoked
func (s *InMemoryRevocationStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jtis[jti] = time.Now().Add(ttl)
	return nil
}

// IsRevoked checks if a token's JTI is revoked and the entry has not lapsed
func (s *InMemoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiration, exists := s.jtis[jti]
	if !exists {
		return false, nil
	}
	if time.Now().After(expiration) {
		delete(s.jtis, jti)
		return false, nil
	}
	return true, nil
}

// RevokeAllForUser invalidates every token the user currently holds
func (s *InMemoryRevocationStore) RevokeAllForUser(_ context.Context, userID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userTimes[userID] = time.Now()
	return nil
}

// IsUserRevoked checks if the token predates a user-wide revocation
func (s *InMemoryRevocationStore) IsUserRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	revokedAt, exists := s.userTimes[userID]
	if !exists {
		return false, nil
	}
	return issuedAt.UnixNano() <= revokedAt.UnixNano(), nil
}

var _ TokenRevocationStore = (*InMemoryRevocationStore)(nil)
