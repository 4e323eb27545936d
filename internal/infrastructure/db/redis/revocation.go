package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList is the token denylist backed by Redis. Deleting a user marks
// the account revoked; the auth middleware checks the mark on every request,
// so outstanding access tokens die immediately instead of at expiry.
// Key format: revoked:user:<user_id>
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList creates a RevocationList wrapping the given Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke marks every token of the user as dead for at least ttl. The entry
// only needs to outlive the longest-lived access token.
func (l *RevocationList) Revoke(ctx context.Context, userID string, ttl time.Duration) error {
	if err := l.client.Set(ctx, l.key(userID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke user: %w", err)
	}
	return nil
}

// IsRevoked reports whether the user's tokens have been denylisted.
func (l *RevocationList) IsRevoked(ctx context.Context, userID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (l *RevocationList) key(userID string) string {
	return fmt.Sprintf("revoked:user:%s", userID)
}
