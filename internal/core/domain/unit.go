package domain

import "time"

// UnitStatus tracks occupancy.
type UnitStatus string

const (
	UnitVacant   UnitStatus = "VACANT"
	UnitOccupied UnitStatus = "OCCUPIED"
)

// UnitType is the dwelling layout.
type UnitType string

const (
	UnitOneBHK   UnitType = "ONE_BHK"
	UnitTwoBHK   UnitType = "TWO_BHK"
	UnitThreeBHK UnitType = "THREE_BHK"
	UnitFourBHK  UnitType = "FOUR_BHK"
	UnitStudio   UnitType = "STUDIO"
	UnitPenthouse UnitType = "PENTHOUSE"
)

// Unit is a dwelling within a society, unique on
// (society, building name, unit number). OwnerResidentID and TenantResidentID
// are back-references to the currently active resident records and are only
// ever mutated together with those records inside a transaction.
type Unit struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	SocietyID        string     `json:"society_id" bson:"society_id"`
	BuildingName     string     `json:"building_name" bson:"building_name"`
	UnitNumber       string     `json:"unit_number" bson:"unit_number"`
	FloorNumber      int        `json:"floor_number" bson:"floor_number"`
	UnitType         UnitType   `json:"unit_type" bson:"unit_type"`
	AreaSqFt         float64    `json:"area_sq_ft,omitempty" bson:"area_sq_ft,omitempty"`
	Status           UnitStatus `json:"status" bson:"status"`
	OwnerResidentID  string     `json:"owner_resident_id,omitempty" bson:"owner_resident_id,omitempty"`
	TenantResidentID string     `json:"tenant_resident_id,omitempty" bson:"tenant_resident_id,omitempty"`
	CreatedBy        string     `json:"created_by" bson:"created_by"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
}

// Slot is the human-readable unit identifier, e.g. "Block A-203".
func (u *Unit) Slot() string {
	return u.BuildingName + "-" + u.UnitNumber
}
