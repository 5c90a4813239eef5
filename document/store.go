package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrPathExists signals a destination path collision. Uploads never
	// overwrite: a colliding path fails closed.
	ErrPathExists = errors.New("document: path already exists")
	// ErrNotFound signals an unknown document reference.
	ErrNotFound = errors.New("document: not found")
)

// defaultCacheControl is attached to every stored blob.
const defaultCacheControl = "max-age=3600"

// PGStore persists named binary blobs in PostgreSQL. A successful
// Upload guarantees the payload is durably retrievable by the returned
// reference from then on.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a PostgreSQL-backed document store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Upload stores payload under bucket/path and returns the document
// reference. Path uniqueness is the caller's responsibility; a
// duplicate path returns ErrPathExists.
func (s *PGStore) Upload(ctx context.Context, bucket, path string, payload []byte) (string, error) {
	if bucket == "" || path == "" {
		return "", fmt.Errorf("document: bucket and path required")
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("document: empty payload")
	}

	const insertSQL = `
		INSERT INTO documents (bucket, path, content_type, cache_control, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING bucket || '/' || path
	`

	var ref string
	err := s.pool.QueryRow(ctx, insertSQL, bucket, path, detectContentType(path), defaultCacheControl, payload).Scan(&ref)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrPathExists
		}
		return "", fmt.Errorf("document: upload: %w", err)
	}

	return ref, nil
}

// Get loads the blob identified by a reference previously returned by
// Upload.
func (s *PGStore) Get(ctx context.Context, ref string) (Blob, error) {
	bucket, path, err := splitReference(ref)
	if err != nil {
		return Blob{}, err
	}

	const selectSQL = `
		SELECT bucket, path, content_type, cache_control, octet_length(payload), payload, created_at
		FROM documents
		WHERE bucket = $1 AND path = $2
	`

	var blob Blob
	err = s.pool.QueryRow(ctx, selectSQL, bucket, path).Scan(
		&blob.Bucket,
		&blob.Path,
		&blob.ContentType,
		&blob.CacheControl,
		&blob.Size,
		&blob.Payload,
		&blob.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Blob{}, ErrNotFound
		}
		return Blob{}, fmt.Errorf("document: get: %w", err)
	}

	blob.Reference = ref
	return blob, nil
}

// splitReference separates a "bucket/path" reference. Bucket names
// never contain slashes, so the first separator is authoritative.
func splitReference(ref string) (bucket, path string, err error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("document: malformed reference %q", ref)
	}
	return parts[0], parts[1], nil
}

func detectContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
