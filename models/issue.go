package models

import (
	"fmt"
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	RoadsPotholes IssueCategory = "Roads & Potholes"
	StreetLights  IssueCategory = "Street Lighting"
	Sanitation    IssueCategory = "Sanitation"
	Transport     IssueCategory = "Public Transportation"
	Parks         IssueCategory = "Parks & Recreation"
	Signals       IssueCategory = "Traffic Signals"
	Sidewalks     IssueCategory = "Sidewalks"
	Drainage      IssueCategory = "Drainage"
	Other         IssueCategory = "Other"
)

// ValidCategory reports whether the given category is one of the known ones.
func ValidCategory(c string) bool {
	switch IssueCategory(c) {
	case RoadsPotholes, StreetLights, Sanitation, Transport, Parks,
		Signals, Sidewalks, Drainage, Other:
		return true
	}
	return false
}

// IssueStatus enum
type IssueStatus string

const (
	Submitted  IssueStatus = "submitted"
	InProgress IssueStatus = "in_progress"
	Completed  IssueStatus = "completed"
)

// ValidStatus reports whether the given status is one of the three workflow states.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case Submitted, InProgress, Completed:
		return true
	}
	return false
}

// NextStatus returns the next state in the fixed progression
// submitted -> in_progress -> completed. Completed is terminal and maps to
// itself. A value outside the enum is a caller contract violation and is
// rejected with an error rather than defaulted.
func NextStatus(s IssueStatus) (IssueStatus, error) {
	switch s {
	case Submitted:
		return InProgress, nil
	case InProgress:
		return Completed, nil
	case Completed:
		return Completed, nil
	default:
		return "", fmt.Errorf("unknown issue status %q", s)
	}
}

// CanTransition reports whether moving from one status to another is allowed.
// The workflow is strictly forward: only the single next step or a
// same-status no-op is permitted. There is no skip-ahead and no way back.
func CanTransition(from, to IssueStatus) bool {
	if from == to {
		return ValidStatus(string(from))
	}
	next, err := NextStatus(from)
	if err != nil {
		return false
	}
	return next == to
}

// Issue represents a civic issue reported by a user
type Issue struct {
	ID          int64         `bson:"_id" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Category    IssueCategory `bson:"category" json:"category"`
	Status      IssueStatus   `bson:"status" json:"status"`
	Latitude    float64       `bson:"latitude" json:"latitude"`
	Longitude   float64       `bson:"longitude" json:"longitude"`
	Address     string        `bson:"address,omitempty" json:"address,omitempty"`
	ImageURL    *string       `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedBy   int64         `bson:"createdBy" json:"createdBy"`
	Timestamp   int64         `bson:"timestamp" json:"timestamp"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Touch sets both encodings of the creation instant from a single clock
// reading so they cannot drift apart.
func (i *Issue) Touch(now time.Time) {
	i.CreatedAt = now
	i.UpdatedAt = now
	i.Timestamp = now.UnixMilli()
}
