package ports

import (
	"context"
	"time"
)

// ResetTokenStore keeps password-reset tokens with a TTL. A user has at
// most one live token: saving a new one invalidates the previous.
type ResetTokenStore interface {
	Save(ctx context.Context, userID, token string, ttl time.Duration) error
	// Lookup resolves a token to its user. Unknown or expired tokens yield
	// domain.ErrInvalidResetToken.
	Lookup(ctx context.Context, token string) (userID string, err error)
	Delete(ctx context.Context, userID, token string) error
}
