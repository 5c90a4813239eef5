package document

import "time"

// Document mirrors the documents table metadata columns. The payload
// itself is only loaded on download.
type Document struct {
	Reference    string
	Bucket       string
	Path         string
	ContentType  string
	CacheControl string
	Size         int64
	CreatedAt    time.Time
}

// Blob bundles a downloaded payload with its metadata.
type Blob struct {
	Document
	Payload []byte
}
