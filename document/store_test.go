package document

import (
	"errors"
	"testing"
)

func TestSplitReference(t *testing.T) {
	bucket, path, err := splitReference("application-documents/user-1/1700000000_abc_id-proof.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bucket != "application-documents" {
		t.Fatalf("expected bucket %q got %q", "application-documents", bucket)
	}
	if path != "user-1/1700000000_abc_id-proof.pdf" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestSplitReference_Malformed(t *testing.T) {
	for _, ref := range []string{"", "no-separator", "/leading", "trailing/"} {
		if _, _, err := splitReference(ref); err == nil {
			t.Errorf("expected error for %q", ref)
		}
	}
}

func TestDetectContentType(t *testing.T) {
	cases := map[string]string{
		"u/1_a_income.pdf":  "application/pdf",
		"u/1_a_photo.JPG":   "image/jpeg",
		"u/1_a_scan.png":    "image/png",
		"u/1_a_letter.docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"u/1_a_noext":       "application/octet-stream",
	}
	for path, want := range cases {
		if got := detectContentType(path); got != want {
			t.Errorf("detectContentType(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestErrorsAreDistinguishable(t *testing.T) {
	if errors.Is(ErrPathExists, ErrNotFound) {
		t.Fatal("sentinel errors must be distinct")
	}
}
