package application

import (
	"context"
	"fmt"

	"janseva/submission"
)

// Submitter runs the document-upload-then-insert pipeline.
// Implemented by *submission.Pipeline.
type Submitter interface {
	Submit(ctx context.Context, req submission.Request) (submission.Record, error)
}

// Service handles application business logic.
type Service struct {
	pipeline Submitter
	repo     Repository
}

// SubmitParams is the caller-facing shape of a new application.
type SubmitParams struct {
	UserID    string
	SchemeID  string
	Fields    map[string]any
	Documents []submission.Document
}

func NewService(pipeline Submitter, repo Repository) *Service {
	return &Service{pipeline: pipeline, repo: repo}
}

// Submit files one application: documents first, record second.
// Exactly one call per user-initiated submit action; debouncing is the
// caller's responsibility.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (submission.Record, error) {
	if params.UserID == "" {
		return submission.Record{}, fmt.Errorf("%w: missing user id", submission.ErrInvalidRequest)
	}
	if params.SchemeID == "" {
		return submission.Record{}, fmt.Errorf("%w: missing scheme id", submission.ErrInvalidRequest)
	}

	schemeID := params.SchemeID
	return s.pipeline.Submit(ctx, submission.Request{
		OwnerID:   params.UserID,
		SchemeID:  &schemeID,
		Fields:    params.Fields,
		Documents: params.Documents,
	})
}

// ListByUser returns the user's applications, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetByID returns one application owned by the user.
func (s *Service) GetByID(ctx context.Context, userID, id string) (Application, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Review applies a reviewer's status decision.
func (s *Service) Review(ctx context.Context, id string, status submission.Status, rejectionReason *string) (Application, error) {
	return s.repo.UpdateStatus(ctx, id, status, rejectionReason)
}
