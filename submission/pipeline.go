package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Uploader stores one named binary blob durably and returns a stable
// reference. Path uniqueness is the caller's responsibility; a
// colliding path must fail rather than overwrite.
type Uploader interface {
	Upload(ctx context.Context, bucket, path string, payload []byte) (string, error)
}

// Inserter persists the assembled record and returns it with its
// store-assigned id and creation timestamp.
type Inserter interface {
	Insert(ctx context.Context, row Row) (Record, error)
}

// Pipeline orchestrates one submission: ordered document uploads
// followed by a single record insert. It keeps no state between calls.
//
// Failure semantics: the first failed upload aborts the whole
// submission and no record is inserted. Already-uploaded blobs are not
// rolled back; they carry no reference from any record and are treated
// as garbage. Either a record with all its references exists, or no
// record exists at all.
type Pipeline struct {
	store   Uploader
	bucket  string
	records Inserter
	newID   func() string
	now     func() time.Time
}

// NewPipeline builds a pipeline writing blobs to the given bucket and
// records through the given inserter.
func NewPipeline(store Uploader, bucket string, records Inserter) *Pipeline {
	return &Pipeline{
		store:   store,
		bucket:  bucket,
		records: records,
		newID:   func() string { return uuid.NewString() },
		now:     time.Now,
	}
}

func (p *Pipeline) WithIDGenerator(gen func() string) *Pipeline {
	p.newID = gen
	return p
}

func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Submit runs the full pipeline for one request. Uploads happen
// strictly in list order and are not parallelized; this bounds load on
// the storage backend and keeps the reference list aligned with the
// input labels. Cancellation is honored between uploads.
func (p *Pipeline) Submit(ctx context.Context, req Request) (Record, error) {
	if req.OwnerID == "" {
		return Record{}, fmt.Errorf("%w: missing owner id", ErrInvalidRequest)
	}
	for i, doc := range req.Documents {
		if len(doc.Payload) == 0 {
			return Record{}, fmt.Errorf("%w: document %d (%q) has no payload", ErrInvalidRequest, i, doc.Label)
		}
	}

	refs := make([]string, 0, len(req.Documents))
	for _, doc := range req.Documents {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		path := destinationPath(req.OwnerID, p.now(), p.newID(), doc.Label)
		ref, err := p.store.Upload(ctx, p.bucket, path, doc.Payload)
		if err != nil {
			return Record{}, &UploadError{Label: doc.Label, Err: err}
		}
		refs = append(refs, ref)
	}

	submittedAt := p.now().UTC()

	fields := make(map[string]any, len(req.Fields)+2)
	for k, v := range req.Fields {
		fields[k] = v
	}
	fields["documents"] = refs
	fields["submitted_at"] = submittedAt.Format(time.RFC3339)

	rec, err := p.records.Insert(ctx, Row{
		OwnerID:      req.OwnerID,
		SchemeID:     req.SchemeID,
		Status:       StatusPending,
		Fields:       fields,
		DocumentRefs: refs,
		SubmittedAt:  submittedAt,
	})
	if err != nil {
		return Record{}, &InsertError{Err: err}
	}

	return rec, nil
}
