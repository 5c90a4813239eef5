package grievance

import (
	"context"
	"errors"
	"testing"

	"janseva/submission"
)

func TestSubmit_Validation(t *testing.T) {
	svc := NewService(&fakePipeline{}, &fakeRepo{})

	cases := []struct {
		name   string
		params SubmitParams
	}{
		{"missing user", SubmitParams{IssueType: IssueOther, Description: "x"}},
		{"unknown issue type", SubmitParams{UserID: "u1", IssueType: "nonsense", Description: "x"}},
		{"blank description", SubmitParams{UserID: "u1", IssueType: IssueOther, Description: "   "}},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(context.Background(), tc.params); !errors.Is(err, submission.ErrInvalidRequest) {
			t.Errorf("%s: expected ErrInvalidRequest, got %v", tc.name, err)
		}
	}
}

func TestSubmit_GeneralGrievanceWithoutTargets(t *testing.T) {
	pipe := &fakePipeline{rec: submission.Record{ID: "grv-1", Status: submission.StatusPending}}
	svc := NewService(pipe, &fakeRepo{})

	rec, err := svc.Submit(context.Background(), SubmitParams{
		UserID:      "user-1",
		IssueType:   IssueOther,
		Description: "office unreachable",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "grv-1" {
		t.Fatalf("expected pipeline record, got %+v", rec)
	}
	if pipe.req.SchemeID != nil {
		t.Fatal("general grievance must not carry a scheme id")
	}
	if _, ok := pipe.req.Fields["application_id"]; ok {
		t.Fatal("general grievance must not carry an application id")
	}
}

func TestSubmit_FieldSnapshotAssembled(t *testing.T) {
	pipe := &fakePipeline{}
	svc := NewService(pipe, &fakeRepo{})

	appID := "app-7"
	schemeID := "scheme-2"
	_, err := svc.Submit(context.Background(), SubmitParams{
		UserID:        "user-1",
		ApplicationID: &appID,
		SchemeID:      &schemeID,
		IssueType:     IssueApplicationDelay,
		Description:   "  pending for 90 days  ",
		Documents: []submission.Document{
			{Label: "Acknowledgement", Payload: []byte("file-a")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := pipe.req.Fields["issue_type"]; got != string(IssueApplicationDelay) {
		t.Fatalf("expected issue_type forwarded, got %v", got)
	}
	if got := pipe.req.Fields["description"]; got != "pending for 90 days" {
		t.Fatalf("expected trimmed description, got %v", got)
	}
	if got := pipe.req.Fields["application_id"]; got != appID {
		t.Fatalf("expected application_id forwarded, got %v", got)
	}
	if pipe.req.SchemeID == nil || *pipe.req.SchemeID != schemeID {
		t.Fatalf("expected scheme id forwarded, got %v", pipe.req.SchemeID)
	}
}

type fakePipeline struct {
	req submission.Request
	rec submission.Record
	err error
}

func (f *fakePipeline) Submit(ctx context.Context, req submission.Request) (submission.Record, error) {
	f.req = req
	if f.err != nil {
		return submission.Record{}, f.err
	}
	return f.rec, nil
}

type fakeRepo struct{}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string) ([]Grievance, error) {
	return nil, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, userID, id string) (Grievance, error) {
	return Grievance{}, ErrNotFound
}

func (f *fakeRepo) Respond(ctx context.Context, id string, status submission.Status, response string) (Grievance, error) {
	return Grievance{}, ErrNotFound
}
