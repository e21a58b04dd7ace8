package domain

import "time"

// MaintenanceStatus is the billing lifecycle state. PAID is terminal.
type MaintenanceStatus string

const (
	MaintenanceUpcoming MaintenanceStatus = "UPCOMING"
	MaintenanceDue      MaintenanceStatus = "DUE"
	MaintenanceOverdue  MaintenanceStatus = "OVERDUE"
	MaintenancePaid     MaintenanceStatus = "PAID"
)

// Outstanding reports whether the charge still counts towards a unit's
// balance.
func (s MaintenanceStatus) Outstanding() bool {
	switch s {
	case MaintenanceUpcoming, MaintenanceDue, MaintenanceOverdue:
		return true
	}
	return false
}

// Maintenance is a monthly charge against a unit, unique on
// (unit, month, year). PaidAt/PaidBy are stamped only on the transition
// to PAID.
type Maintenance struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	SocietyID string            `json:"society_id" bson:"society_id"`
	UnitID    string            `json:"unit_id" bson:"unit_id"`
	Month     int               `json:"month" bson:"month"`
	Year      int               `json:"year" bson:"year"`
	Amount    float64           `json:"amount" bson:"amount"`
	DueDate   time.Time         `json:"due_date" bson:"due_date"`
	Status    MaintenanceStatus `json:"status" bson:"status"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
	PaidAt    *time.Time        `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	PaidBy    string            `json:"paid_by,omitempty" bson:"paid_by,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}

// InitialMaintenanceStatus picks the creation status from the due date:
// already-past due dates start DUE, future ones UPCOMING.
func InitialMaintenanceStatus(dueDate, now time.Time) MaintenanceStatus {
	if !dueDate.After(now) {
		return MaintenanceDue
	}
	return MaintenanceUpcoming
}
