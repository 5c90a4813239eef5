package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestSubmit_AllUploadsSucceed(t *testing.T) {
	store := newFakeStore()
	records := &fakeInserter{}
	p := newTestPipeline(store, records)

	rec, err := p.Submit(context.Background(), Request{
		OwnerID: "user-1",
		Fields:  map[string]any{"full_name": "Asha Devi"},
		Documents: []Document{
			{Label: "ID Proof", Payload: []byte("file-a")},
			{Label: "Income Cert", Payload: []byte("file-b")},
		},
	})
	if err != nil {
		t.Fatalf("submit: unexpected error: %v", err)
	}

	if len(rec.DocumentRefs) != 2 {
		t.Fatalf("expected 2 references got %d", len(rec.DocumentRefs))
	}
	if rec.Status != StatusPending {
		t.Fatalf("expected status %q got %q", StatusPending, rec.Status)
	}
	if len(store.uploads) != 2 {
		t.Fatalf("expected 2 uploads got %d", len(store.uploads))
	}
	// Order preservation: reference i corresponds to document i.
	if !strings.Contains(rec.DocumentRefs[0], "ID-Proof") {
		t.Errorf("first reference %q should derive from first label", rec.DocumentRefs[0])
	}
	if !strings.Contains(rec.DocumentRefs[1], "Income-Cert") {
		t.Errorf("second reference %q should derive from second label", rec.DocumentRefs[1])
	}
	if records.row == nil {
		t.Fatal("expected record insert")
	}
	if got := records.row.Fields["submitted_at"]; got == nil {
		t.Error("expected submitted_at stamp in field snapshot")
	}
}

func TestSubmit_UploadFailureAborts(t *testing.T) {
	quotaErr := errors.New("storage quota exceeded")
	store := newFakeStore()
	store.failOn["Income Cert"] = quotaErr
	records := &fakeInserter{}
	p := newTestPipeline(store, records)

	_, err := p.Submit(context.Background(), Request{
		OwnerID: "user-1",
		Documents: []Document{
			{Label: "ID Proof", Payload: []byte("file-a")},
			{Label: "Income Cert", Payload: []byte("file-b")},
			{Label: "Photo", Payload: []byte("file-c")},
		},
	})

	var upErr *UploadError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	if upErr.Label != "Income Cert" {
		t.Fatalf("expected failing label %q got %q", "Income Cert", upErr.Label)
	}
	if !errors.Is(err, quotaErr) {
		t.Fatal("expected underlying storage error to be wrapped")
	}
	// Short-circuit: nothing after the failing index is attempted, and
	// no record insert happens.
	if len(store.uploads) != 1 {
		t.Fatalf("expected exactly 1 completed upload got %d", len(store.uploads))
	}
	if records.row != nil {
		t.Fatal("no record must be inserted after a failed upload")
	}
}

func TestSubmit_InsertFailure(t *testing.T) {
	store := newFakeStore()
	insertErr := errors.New("connection reset")
	records := &fakeInserter{err: insertErr}
	p := newTestPipeline(store, records)

	_, err := p.Submit(context.Background(), Request{
		OwnerID:   "user-1",
		Documents: []Document{{Label: "ID Proof", Payload: []byte("file-a")}},
	})

	var insErr *InsertError
	if !errors.As(err, &insErr) {
		t.Fatalf("expected InsertError, got %v", err)
	}
	if !errors.Is(err, insertErr) {
		t.Fatal("expected underlying store error to be wrapped")
	}
	// The uploaded blob stays behind as an orphan; it is inert until
	// referenced, so the user-visible outcome is "nothing submitted".
	if len(store.uploads) != 1 {
		t.Fatalf("expected the upload to remain, got %d", len(store.uploads))
	}
}

func TestSubmit_NoDocuments(t *testing.T) {
	store := newFakeStore()
	records := &fakeInserter{}
	p := newTestPipeline(store, records)

	rec, err := p.Submit(context.Background(), Request{
		OwnerID: "user-1",
		Fields:  map[string]any{"issue_type": "delay"},
	})
	if err != nil {
		t.Fatalf("submit: unexpected error: %v", err)
	}
	if len(store.uploads) != 0 {
		t.Fatalf("expected no uploads got %d", len(store.uploads))
	}
	if len(rec.DocumentRefs) != 0 {
		t.Fatalf("expected empty reference list got %v", rec.DocumentRefs)
	}
	if records.row == nil {
		t.Fatal("expected record insert to proceed directly")
	}
}

func TestSubmit_MissingOwner(t *testing.T) {
	p := newTestPipeline(newFakeStore(), &fakeInserter{})

	_, err := p.Submit(context.Background(), Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestSubmit_EmptyPayloadRejectedBeforeAnyUpload(t *testing.T) {
	store := newFakeStore()
	p := newTestPipeline(store, &fakeInserter{})

	_, err := p.Submit(context.Background(), Request{
		OwnerID: "user-1",
		Documents: []Document{
			{Label: "ID Proof", Payload: []byte("file-a")},
			{Label: "Income Cert"},
		},
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if len(store.uploads) != 0 {
		t.Fatalf("structural validation must run before uploads, got %d uploads", len(store.uploads))
	}
}

func TestSubmit_SameLabelSameMillisecondDistinctPaths(t *testing.T) {
	store := newFakeStore()
	frozen := time.UnixMilli(1700000000000)
	seq := 0
	newID := func() string {
		seq++
		return fmt.Sprintf("uniq-%d", seq)
	}

	p := NewPipeline(store, "application-documents", &fakeInserter{}).
		WithClock(func() time.Time { return frozen }).
		WithIDGenerator(newID)

	req := Request{
		OwnerID:   "user-1",
		Documents: []Document{{Label: "ID Proof", Payload: []byte("file-a")}},
	}

	if _, err := p.Submit(context.Background(), req); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := p.Submit(context.Background(), req); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if len(store.uploads) != 2 {
		t.Fatalf("expected 2 uploads got %d", len(store.uploads))
	}
	if store.uploads[0].path == store.uploads[1].path {
		t.Fatalf("identical paths for same-millisecond submissions: %q", store.uploads[0].path)
	}
}

func TestSubmit_CancelledBetweenUploads(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := newFakeStore()
	store.afterUpload = cancel
	records := &fakeInserter{}
	p := newTestPipeline(store, records)

	_, err := p.Submit(ctx, Request{
		OwnerID: "user-1",
		Documents: []Document{
			{Label: "ID Proof", Payload: []byte("file-a")},
			{Label: "Income Cert", Payload: []byte("file-b")},
		},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(store.uploads) != 1 {
		t.Fatalf("expected 1 upload before cancellation got %d", len(store.uploads))
	}
	if records.row != nil {
		t.Fatal("no record must be inserted after cancellation")
	}
}

func TestSanitizeLabel(t *testing.T) {
	cases := map[string]string{
		"ID Proof":        "ID-Proof",
		"income cert.pdf": "income-cert.pdf",
		"../../etc":       "..-..-etc",
		"   ":             "document",
	}
	for in, want := range cases {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func newTestPipeline(store *fakeStore, records *fakeInserter) *Pipeline {
	return NewPipeline(store, "application-documents", records)
}

type uploadCall struct {
	bucket  string
	path    string
	payload []byte
}

type fakeStore struct {
	uploads     []uploadCall
	failOn      map[string]error // keyed by label substring match
	afterUpload func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{failOn: make(map[string]error)}
}

func (f *fakeStore) Upload(ctx context.Context, bucket, path string, payload []byte) (string, error) {
	for label, err := range f.failOn {
		if strings.Contains(path, sanitizeLabel(label)) {
			return "", err
		}
	}
	f.uploads = append(f.uploads, uploadCall{bucket: bucket, path: path, payload: payload})
	if f.afterUpload != nil {
		f.afterUpload()
	}
	return bucket + "/" + path, nil
}

type fakeInserter struct {
	row *Row
	err error
}

func (f *fakeInserter) Insert(ctx context.Context, row Row) (Record, error) {
	if f.err != nil {
		return Record{}, f.err
	}
	f.row = &row
	return Record{
		ID:           "rec-1",
		OwnerID:      row.OwnerID,
		SchemeID:     row.SchemeID,
		Status:       row.Status,
		Fields:       row.Fields,
		DocumentRefs: row.DocumentRefs,
		CreatedAt:    row.SubmittedAt,
	}, nil
}
