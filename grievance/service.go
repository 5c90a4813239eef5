package grievance

import (
	"context"
	"fmt"
	"strings"

	"janseva/submission"
)

// Submitter runs the document-upload-then-insert pipeline.
// Implemented by *submission.Pipeline.
type Submitter interface {
	Submit(ctx context.Context, req submission.Request) (submission.Record, error)
}

// Service handles grievance business logic.
type Service struct {
	pipeline Submitter
	repo     Repository
}

// SubmitParams is the caller-facing shape of a new grievance. Both
// ApplicationID and SchemeID may be nil for a general grievance.
type SubmitParams struct {
	UserID        string
	ApplicationID *string
	SchemeID      *string
	IssueType     IssueType
	Description   string
	Documents     []submission.Document
}

func NewService(pipeline Submitter, repo Repository) *Service {
	return &Service{pipeline: pipeline, repo: repo}
}

// Submit files one grievance through the shared pipeline: supporting
// documents first, then the record insert.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (submission.Record, error) {
	if params.UserID == "" {
		return submission.Record{}, fmt.Errorf("%w: missing user id", submission.ErrInvalidRequest)
	}
	if !ValidIssueType(params.IssueType) {
		return submission.Record{}, fmt.Errorf("%w: unknown issue type %q", submission.ErrInvalidRequest, params.IssueType)
	}
	description := strings.TrimSpace(params.Description)
	if description == "" {
		return submission.Record{}, fmt.Errorf("%w: description required", submission.ErrInvalidRequest)
	}

	fields := map[string]any{
		"issue_type":  string(params.IssueType),
		"description": description,
	}
	if params.ApplicationID != nil && *params.ApplicationID != "" {
		fields["application_id"] = *params.ApplicationID
	}

	return s.pipeline.Submit(ctx, submission.Request{
		OwnerID:   params.UserID,
		SchemeID:  params.SchemeID,
		Fields:    fields,
		Documents: params.Documents,
	})
}

// ListByUser returns the user's grievances, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Grievance, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetByID returns one grievance owned by the user.
func (s *Service) GetByID(ctx context.Context, userID, id string) (Grievance, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Respond records the reviewing official's reply.
func (s *Service) Respond(ctx context.Context, id string, status submission.Status, response string) (Grievance, error) {
	return s.repo.Respond(ctx, id, status, response)
}
