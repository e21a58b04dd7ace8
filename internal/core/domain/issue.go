package domain

import "time"

// IssueStatus is the ticket lifecycle state.
type IssueStatus string

const (
	IssueOpen       IssueStatus = "OPEN"
	IssueInProgress IssueStatus = "IN_PROGRESS"
	IssueResolved   IssueStatus = "RESOLVED"
	IssueClosed     IssueStatus = "CLOSED"
)

// issueTransitions defines the allowed ticket state machine. CLOSED is
// reachable from any prior state; closing an unresolved issue implicitly
// resolves it.
var issueTransitions = map[IssueStatus][]IssueStatus{
	IssueOpen:       {IssueInProgress, IssueResolved, IssueClosed},
	IssueInProgress: {IssueResolved, IssueClosed},
	IssueResolved:   {IssueClosed},
}

// Valid reports whether the status is one of the known states.
func (s IssueStatus) Valid() bool {
	switch s {
	case IssueOpen, IssueInProgress, IssueResolved, IssueClosed:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	for _, allowed := range issueTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IssuePriority orders tickets for triage.
type IssuePriority string

const (
	PriorityLow    IssuePriority = "LOW"
	PriorityMedium IssuePriority = "MEDIUM"
	PriorityHigh   IssuePriority = "HIGH"
	PriorityUrgent IssuePriority = "URGENT"
)

// Issue is a ticket raised by a user against their society, optionally tied
// to a unit. Resolution metadata is stamped on the RESOLVED and CLOSED
// transitions.
type Issue struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	SocietyID       string        `json:"society_id" bson:"society_id"`
	UnitID          string        `json:"unit_id,omitempty" bson:"unit_id,omitempty"`
	RaisedBy        string        `json:"raised_by" bson:"raised_by"`
	Title           string        `json:"title" bson:"title"`
	Description     string        `json:"description" bson:"description"`
	Priority        IssuePriority `json:"priority" bson:"priority"`
	Status          IssueStatus   `json:"status" bson:"status"`
	ResolutionNotes string        `json:"resolution_notes,omitempty" bson:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time    `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
	ResolvedBy      string        `json:"resolved_by,omitempty" bson:"resolved_by,omitempty"`
	ClosedAt        *time.Time    `json:"closed_at,omitempty" bson:"closed_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}
