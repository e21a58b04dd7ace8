package domain

import "time"

// Announcement is a society-wide notice. Expired announcements stay visible
// to admins and the platform owner but disappear for residents.
type Announcement struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	SocietyID   string     `json:"society_id" bson:"society_id"`
	CreatedBy   string     `json:"created_by" bson:"created_by"`
	Title       string     `json:"title" bson:"title"`
	Content     string     `json:"content" bson:"content"`
	IsImportant bool       `json:"is_important" bson:"is_important"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}

// Expired reports whether the announcement has an expiry in the past.
func (a *Announcement) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}
