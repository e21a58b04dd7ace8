package domain

import "time"

// Role determines the tenant scope a user operates in.
type Role string

const (
	RolePlatformOwner Role = "PLATFORM_OWNER"
	RoleSocietyAdmin  Role = "SOCIETY_ADMIN"
	RoleResident      Role = "RESIDENT"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePlatformOwner, RoleSocietyAdmin, RoleResident:
		return true
	}
	return false
}

// AccountStatus gates access to protected routes.
type AccountStatus string

const (
	AccountActive          AccountStatus = "ACTIVE"
	AccountPendingApproval AccountStatus = "PENDING_APPROVAL"
	AccountSuspended       AccountStatus = "SUSPENDED"
)

// User models a login identity. SocietyID and UnitID are empty until the user
// is linked to a tenant: admins on society creation, residents on join-request
// submission.
type User struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Name         string        `json:"name" bson:"name"`
	Email        string        `json:"email" bson:"email"`
	PasswordHash string        `json:"-" bson:"password_hash"`
	Role         Role          `json:"role" bson:"role"`
	Status       AccountStatus `json:"status" bson:"status"`
	SocietyID    string        `json:"society_id,omitempty" bson:"society_id,omitempty"`
	UnitID       string        `json:"unit_id,omitempty" bson:"unit_id,omitempty"`
	CreatedBy    string        `json:"created_by,omitempty" bson:"created_by,omitempty"`
	LastLoginAt  *time.Time    `json:"last_login_at,omitempty" bson:"last_login_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}
