package application

import (
	"time"

	"janseva/scheme"
	"janseva/submission"
)

// Application mirrors the applications table. The field snapshot and
// the ordered document reference list are immutable after creation;
// only the review status and rejection reason change later.
type Application struct {
	ID              string
	UserID          string
	SchemeID        string
	Status          submission.Status
	RejectionReason *string
	DocumentRefs    []string
	SubmittedData   map[string]any
	CreatedAt       time.Time

	// Scheme is populated on list and detail reads so callers don't
	// need a second round trip for the scheme title.
	Scheme *scheme.Scheme
}
