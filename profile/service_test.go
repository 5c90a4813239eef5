package profile

import (
	"context"
	"testing"
	"time"
)

func TestGetOrCreate_ExistingProfile(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["user-1"] = Profile{ID: "user-1", Name: "Asha Devi"}
	svc := NewService(repo)

	p, err := svc.GetOrCreate(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Asha Devi" {
		t.Fatalf("expected existing profile, got %+v", p)
	}
	if repo.created != 0 {
		t.Fatal("must not create when the profile exists")
	}
}

func TestGetOrCreate_FirstSignIn(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	p, err := svc.GetOrCreate(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "user-2" {
		t.Fatalf("expected fresh profile for user-2, got %+v", p)
	}
	if repo.created != 1 {
		t.Fatalf("expected one create, got %d", repo.created)
	}
}

func TestUpdate_UnknownProfile(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	if _, err := svc.Update(context.Background(), "ghost", UpdateParams{Name: "X"}); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

type fakeRepository struct {
	profiles map[string]Profile
	created  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{profiles: make(map[string]Profile)}
}

func (f *fakeRepository) GetByID(ctx context.Context, userID string) (Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepository) Create(ctx context.Context, userID string) (Profile, error) {
	p := Profile{ID: userID, CreatedAt: time.Now().UTC()}
	f.profiles[userID] = p
	f.created++
	return p, nil
}

func (f *fakeRepository) Update(ctx context.Context, userID string, params UpdateParams) (Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	p.Name = params.Name
	p.Age = params.Age
	p.Gender = params.Gender
	p.CasteCategory = params.CasteCategory
	p.Religion = params.Religion
	p.AnnualIncome = params.AnnualIncome
	p.State = params.State
	p.District = params.District
	p.CityVillage = params.CityVillage
	p.AvatarURL = params.AvatarURL
	f.profiles[userID] = p
	return p, nil
}
