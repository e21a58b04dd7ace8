package ports

import "context"

// Notifier delivers out-of-band messages to users. The default
// implementation only logs; swapping in a real mail provider is a
// deployment concern.
type Notifier interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}
