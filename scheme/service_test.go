package scheme

import (
	"context"
	"testing"
	"time"

	"janseva/profile"
)

func TestRecommend_FiltersByProfile(t *testing.T) {
	age := 30
	income := int64(150000)
	gender := "female"
	state := "Bihar"
	p := profile.Profile{
		ID:           "user-1",
		Age:          &age,
		AnnualIncome: &income,
		Gender:       &gender,
		State:        &state,
	}

	repo := &fakeCatalog{schemes: []Scheme{
		{ID: "s1", Title: "Open Scheme"},
		{ID: "s2", Title: "Too Rich", IncomeLimit: int64Ptr(100000)},
		{ID: "s3", Title: "Men Only", GenderSpecific: strPtr("male")},
		{ID: "s4", Title: "Seniors", AgeMin: intPtr(60)},
		{ID: "s5", Title: "Other State", RegionSpecific: true, Regions: []string{"Kerala"}},
		{ID: "s6", Title: "Home State", RegionSpecific: true, Regions: []string{"Bihar"}},
	}}

	svc := NewService(repo)
	got, err := svc.Recommend(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := map[string]bool{"s1": true, "s6": true}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d schemes got %d: %+v", len(wantIDs), len(got), got)
	}
	for _, s := range got {
		if !wantIDs[s.ID] {
			t.Errorf("unexpected scheme %q in recommendations", s.ID)
		}
	}
}

func TestRecommend_IncompleteProfileNeverDisqualified(t *testing.T) {
	repo := &fakeCatalog{schemes: []Scheme{
		{ID: "s1", IncomeLimit: int64Ptr(100000), AgeMin: intPtr(60), GenderSpecific: strPtr("male")},
	}}

	svc := NewService(repo)
	got, err := svc.Recommend(context.Background(), profile.Profile{ID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("empty profile must match bounded schemes, got %d", len(got))
	}
}

func TestRecommend_SkipsExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	repo := &fakeCatalog{schemes: []Scheme{
		{ID: "expired", ExpiryDate: &past},
		{ID: "live", ExpiryDate: &future},
	}}

	svc := NewService(repo).WithClock(func() time.Time { return now })
	got, err := svc.Recommend(context.Background(), profile.Profile{ID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "live" {
		t.Fatalf("expected only the live scheme, got %+v", got)
	}
}

type fakeCatalog struct {
	schemes []Scheme
}

func (f *fakeCatalog) List(ctx context.Context, filters Filters) ([]Scheme, error) {
	return f.schemes, nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (Scheme, error) {
	for _, s := range f.schemes {
		if s.ID == id {
			return s, nil
		}
	}
	return Scheme{}, ErrNotFound
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
