package grievance

import (
	"time"

	"janseva/submission"
)

// IssueType classifies a grievance at filing time.
type IssueType string

const (
	IssueApplicationDelay   IssueType = "application_delay"
	IssueDocumentProblem    IssueType = "document_problem"
	IssueBenefitNotReceived IssueType = "benefit_not_received"
	IssueOther              IssueType = "other"
)

// Grievance mirrors the grievances table. A grievance may reference an
// application, a scheme, both, or neither (a general grievance).
type Grievance struct {
	ID            string
	UserID        string
	ApplicationID *string
	SchemeID      *string
	IssueType     IssueType
	Description   string
	Status        submission.Status
	Response      *string
	DocumentRefs  []string
	CreatedAt     time.Time
}

// ValidIssueType reports whether t is one of the filing categories.
func ValidIssueType(t IssueType) bool {
	switch t {
	case IssueApplicationDelay, IssueDocumentProblem, IssueBenefitNotReceived, IssueOther:
		return true
	default:
		return false
	}
}
