package scheme

import (
	"context"
	"time"

	"janseva/profile"
)

// CatalogReader abstracts repository operations for the service.
type CatalogReader interface {
	List(ctx context.Context, filters Filters) ([]Scheme, error)
	GetByID(ctx context.Context, id string) (Scheme, error)
}

// Service exposes catalog-level scheme operations.
type Service struct {
	repo CatalogReader
	now  func() time.Time
}

// NewService builds a Service using the provided repository.
func NewService(repo CatalogReader) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns schemes matching the filters, newest first.
func (s *Service) List(ctx context.Context, filters Filters) ([]Scheme, error) {
	return s.repo.List(ctx, filters)
}

// GetByID returns the scheme for the given identifier.
func (s *Service) GetByID(ctx context.Context, id string) (Scheme, error) {
	return s.repo.GetByID(ctx, id)
}

// Recommend returns the schemes whose eligibility bounds admit the
// profile. Unset profile fields never disqualify: a citizen with an
// incomplete profile still sees every scheme they might qualify for.
func (s *Service) Recommend(ctx context.Context, p profile.Profile) ([]Scheme, error) {
	all, err := s.repo.List(ctx, Filters{})
	if err != nil {
		return nil, err
	}

	out := make([]Scheme, 0, len(all))
	for _, sch := range all {
		if s.eligible(sch, p) {
			out = append(out, sch)
		}
	}
	return out, nil
}

func (s *Service) eligible(sch Scheme, p profile.Profile) bool {
	if sch.ExpiryDate != nil && sch.ExpiryDate.Before(s.now()) {
		return false
	}
	if p.Age != nil {
		if sch.AgeMin != nil && *p.Age < *sch.AgeMin {
			return false
		}
		if sch.AgeMax != nil && *p.Age > *sch.AgeMax {
			return false
		}
	}
	if p.AnnualIncome != nil && sch.IncomeLimit != nil && *p.AnnualIncome > *sch.IncomeLimit {
		return false
	}
	if p.Gender != nil && sch.GenderSpecific != nil && *p.Gender != *sch.GenderSpecific {
		return false
	}
	if p.CasteCategory != nil && len(sch.CasteCategories) > 0 && !contains(sch.CasteCategories, *p.CasteCategory) {
		return false
	}
	if sch.RegionSpecific && p.State != nil && !contains(sch.Regions, *p.State) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
