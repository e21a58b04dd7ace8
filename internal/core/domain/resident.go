package domain

import "time"

// ResidentType distinguishes owners from tenants.
type ResidentType string

const (
	ResidentOwner  ResidentType = "OWNER"
	ResidentTenant ResidentType = "TENANT"
)

// ResidentStatus is the lifecycle state of a resident record.
type ResidentStatus string

const (
	ResidentActive    ResidentStatus = "ACTIVE"
	ResidentSuspended ResidentStatus = "SUSPENDED"
)

// Resident associates a person with a unit, distinct from the User login
// identity. A unit holds at most one ACTIVE owner and one ACTIVE tenant at a
// time; a TENANT record must reference an ACTIVE OWNER in the same society.
type Resident struct {
	ID              string         `json:"id" bson:"_id,omitempty"`
	UserID          string         `json:"user_id" bson:"user_id"`
	SocietyID       string         `json:"society_id" bson:"society_id"`
	UnitID          string         `json:"unit_id" bson:"unit_id"`
	ResidentType    ResidentType   `json:"resident_type" bson:"resident_type"`
	Status          ResidentStatus `json:"status" bson:"status"`
	OwnerResidentID string         `json:"owner_resident_id,omitempty" bson:"owner_resident_id,omitempty"`
	CreatedBy       string         `json:"created_by" bson:"created_by"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" bson:"updated_at"`
}
