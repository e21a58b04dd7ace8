package domain

import "time"

// SocietyStatus is the lifecycle state of a society. Removal is a soft
// delete to INACTIVE; rows are never dropped.
type SocietyStatus string

const (
	SocietyActive   SocietyStatus = "ACTIVE"
	SocietyInactive SocietyStatus = "INACTIVE"
)

// SocietyType classifies the kind of residential complex.
type SocietyType string

const (
	SocietyApartment SocietyType = "APARTMENT"
	SocietyVilla     SocietyType = "VILLA"
	SocietyRowHouse  SocietyType = "ROW_HOUSE"
	SocietyGated     SocietyType = "GATED_COMMUNITY"
)

// Society is the tenant root. Every unit, resident, maintenance row, issue
// and announcement belongs to exactly one society. CreatedBy references the
// SOCIETY_ADMIN who owns it; one admin owns at most one society.
type Society struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Name         string        `json:"name" bson:"name"`
	Code         string        `json:"code" bson:"code"`
	AddressLine1 string        `json:"address_line1" bson:"address_line1"`
	City         string        `json:"city" bson:"city"`
	State        string        `json:"state" bson:"state"`
	Pincode      string        `json:"pincode" bson:"pincode"`
	SocietyType  SocietyType   `json:"society_type" bson:"society_type"`
	Status       SocietyStatus `json:"status" bson:"status"`
	CreatedBy    string        `json:"created_by" bson:"created_by"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}
