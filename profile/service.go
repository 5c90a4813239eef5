package profile

import (
	"context"
	"errors"
)

// Service handles profile business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate returns the user's profile, creating an empty row on
// first sign-in so later reads never miss.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (Profile, error) {
	p, err := s.repo.GetByID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}
	return s.repo.Create(ctx, userID)
}

// Update replaces the citizen-editable fields.
func (s *Service) Update(ctx context.Context, userID string, params UpdateParams) (Profile, error) {
	return s.repo.Update(ctx, userID, params)
}
