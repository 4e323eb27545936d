package ports

import (
	"context"
	"time"
)

// TokenRevoker invalidates all outstanding tokens for a user. Access tokens
// are stateless JWTs, so revocation is a denylist consulted by the auth
// middleware; entries only need to outlive the access token TTL.
type TokenRevoker interface {
	Revoke(ctx context.Context, userID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, userID string) (bool, error)
}
