package submission

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest signals a caller error; resubmitting without
// correction will not succeed.
var ErrInvalidRequest = errors.New("submission: invalid request")

// UploadError reports the first failed document upload. Uploads at
// earlier indices have already succeeded and are not rolled back; the
// stored blobs remain unreferenced garbage. Retry means resubmitting
// the whole request.
type UploadError struct {
	Label string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("submission: upload %q: %v", e.Label, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// InsertError reports a failed record insert after all uploads
// succeeded. The uploaded documents remain orphaned; no record was
// created, so from the caller's perspective nothing was submitted.
type InsertError struct {
	Err error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("submission: insert record: %v", e.Err)
}

func (e *InsertError) Unwrap() error { return e.Err }
