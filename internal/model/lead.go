package model

import (
	"fmt"
	"time"
)

// Status is lead pipeline stage persisted with the lead
type Status string

const (
	// StatusNew is the stage every lead starts in
	StatusNew Status = "New"
	// StatusContacted means the lead has been reached out to
	StatusContacted Status = "Contacted"
	// StatusQualified means the lead has been qualified
	StatusQualified Status = "Qualified"
	// StatusConverted is display-only, it is never persisted
	StatusConverted Status = "Converted"
)

// Valid reports whether s belongs to the persisted enumeration.
// StatusConverted is deliberately not a member.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// NextStatus returns the next stage of the display ladder. The ladder is total -
// Converted and unknown values map to themselves.
func NextStatus(s Status) Status {
	switch s {
	case StatusNew:
		return StatusContacted
	case StatusContacted:
		return StatusQualified
	case StatusQualified:
		return StatusConverted
	}
	return s
}

// PrevStatus returns the previous stage of the display ladder. New has no
// predecessor and maps to itself, same for unknown values.
func PrevStatus(s Status) Status {
	switch s {
	case StatusContacted:
		return StatusNew
	case StatusQualified:
		return StatusContacted
	case StatusConverted:
		return StatusQualified
	}
	return s
}

// TransitionPolicy is consulted by the service before a status write.
// It never replaces the storage-level enumeration check.
type TransitionPolicy func(from, to Status) error

// AnyTransition permits jumping between any persisted statuses regardless of
// the current one. This is the reference behavior.
func AnyTransition(Status, Status) error {
	return nil
}

// AdjacentOnly restricts writes to the neighbours of the current stage on the
// ladder. Writing the current value again is allowed, status writes are
// idempotent.
func AdjacentOnly(from, to Status) error {
	if to == from || to == NextStatus(from) || to == PrevStatus(from) {
		return nil
	}
	return fmt.Errorf("transition %s -> %s is not adjacent", from, to)
}

// Activity is a single journal entry owned by a lead. Once appended it is
// never updated or reordered.
type Activity struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Type        string    `json:"type" bson:"type"`
	Description string    `json:"description" bson:"description"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

// Lead is lead model entity
type Lead struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	FirstName   string     `json:"firstName" bson:"firstName"`
	CompanyName string     `json:"companyName" bson:"companyName"`
	Email       string     `json:"email" bson:"email"`
	Source      string     `json:"source" bson:"source"`
	Note        string     `json:"note" bson:"note"`
	Status      Status     `json:"status" bson:"status"`
	Activities  []Activity `json:"activities" bson:"activities"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}
