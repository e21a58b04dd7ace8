package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
)

// CreateSocietyInput carries the data needed to register a society.
type CreateSocietyInput struct {
	Name         string
	AddressLine1 string
	City         string
	State        string
	Pincode      string
	SocietyType  domain.SocietyType
}

// UpdateSocietyInput applies partial changes; nil means unchanged.
type UpdateSocietyInput struct {
	Name         *string
	AddressLine1 *string
	City         *string
	State        *string
	Pincode      *string
	SocietyType  *domain.SocietyType
}

// SocietyService defines tenant-root operations.
type SocietyService interface {
	// Create registers a society for the acting admin, generates its code,
	// and links the admin to it. One admin owns at most one society.
	Create(ctx context.Context, actor access.Actor, in CreateSocietyInput) (*domain.Society, error)
	// ListPublic returns ACTIVE societies for the resident signup flow.
	ListPublic(ctx context.Context) ([]*domain.Society, error)
	List(ctx context.Context, actor access.Actor) ([]*domain.Society, error)
	Get(ctx context.Context, actor access.Actor, id string) (*domain.Society, error)
	Update(ctx context.Context, actor access.Actor, id string, in UpdateSocietyInput) (*domain.Society, error)
	// Deactivate soft-deletes to INACTIVE; blocked while units exist.
	Deactivate(ctx context.Context, actor access.Actor, id string) (*domain.Society, error)
}
