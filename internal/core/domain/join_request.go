package domain

import "time"

// JoinRequestStatus is the decision state of a resident's application.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "PENDING"
	JoinRequestApproved JoinRequestStatus = "APPROVED"
	JoinRequestRejected JoinRequestStatus = "REJECTED"
)

// ResidentJoinRequest is a pending resident's application to be approved
// into a society/unit, one-to-one with the PENDING_APPROVAL user it was
// submitted with. Approval flips the linked user to ACTIVE in the same
// transaction; rejection records a reason and leaves the user blocked.
type ResidentJoinRequest struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	UserID          string            `json:"user_id" bson:"user_id"`
	SocietyID       string            `json:"society_id" bson:"society_id"`
	UnitID          string            `json:"unit_id" bson:"unit_id"`
	Status          JoinRequestStatus `json:"status" bson:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`
	ReviewedBy      string            `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}
