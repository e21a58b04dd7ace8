package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/domain"
)

// SignupInput carries the public society-admin registration payload.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// UpdateProfileInput applies partial profile changes; nil means unchanged.
type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// AuthService implements identity, credentials, and session issuance.
type AuthService interface {
	// Signup registers a SOCIETY_ADMIN with status ACTIVE and returns a
	// token for immediate use.
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	// Login verifies credentials. SUSPENDED accounts are rejected;
	// PENDING_APPROVAL accounts may log in (to poll their join request)
	// but remain blocked from protected routes by the status gate.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ForgotPassword issues a reset token when the email is registered. It
	// never reveals whether the email exists; the returned token is only
	// surfaced to the caller in non-production environments.
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
}
