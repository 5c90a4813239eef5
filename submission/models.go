package submission

import "time"

// Status enumerates the review lifecycle of a submitted record. The
// pipeline only ever writes StatusPending; later transitions belong to
// the reviewing side.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusUnderReview Status = "Under Review"
	StatusApproved    Status = "Approved"
	StatusRejected    Status = "Rejected"
	StatusResolved    Status = "Resolved"
)

// Document pairs a human-facing label with the raw payload to store.
// Documents are submitted as an ordered list; the resulting reference
// list preserves that order so callers can map references back to
// labels positionally.
type Document struct {
	Label   string
	Payload []byte
}

// Request is the caller-constructed input to Submit. Fields have
// already passed caller-side schema validation; the pipeline checks
// only the structural completeness needed to persist.
type Request struct {
	OwnerID   string
	SchemeID  *string
	Fields    map[string]any
	Documents []Document
}

// Row is the assembled record handed to the Inserter once every
// document reference has resolved.
type Row struct {
	OwnerID      string
	SchemeID     *string
	Status       Status
	Fields       map[string]any
	DocumentRefs []string
	SubmittedAt  time.Time
}

// Record is a persisted submission as returned by the store, with its
// store-assigned id and creation timestamp.
type Record struct {
	ID           string
	OwnerID      string
	SchemeID     *string
	Status       Status
	Fields       map[string]any
	DocumentRefs []string
	CreatedAt    time.Time
}
