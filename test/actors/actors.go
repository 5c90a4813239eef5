package actors

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"janseva/application"
	"janseva/document"
	"janseva/grievance"
	"janseva/submission"
)

// Submitter drives the real submission pipeline: ordered document
// uploads followed by the application insert, over and over.
func Submitter(ctx context.Context, pool *pgxpool.Pool, userID, schemeID string, stop <-chan struct{}) error {
	pipeline := submission.NewPipeline(document.NewPGStore(pool), "application-documents", application.NewRepository(pool))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		docCount := 1 + rand.Intn(3)
		docs := make([]submission.Document, docCount)
		for i := range docs {
			docs[i] = submission.Document{
				Label:   fmt.Sprintf("doc-%d.pdf", i),
				Payload: []byte(fmt.Sprintf("payload-%d-%d", rand.Int63(), i)),
			}
		}

		sid := schemeID
		_, err := pipeline.Submit(ctx, submission.Request{
			OwnerID:   userID,
			SchemeID:  &sid,
			Fields:    map[string]any{"note": fmt.Sprintf("stress-%d", rand.Int63())},
			Documents: docs,
		})
		if err != nil && ctx.Err() == nil {
			// Upload and insert errors are tolerated under chaos; the
			// oracles verify no half-written record survives them.
			var upErr *submission.UploadError
			var insErr *submission.InsertError
			if !asAny(err, &upErr, &insErr) {
				return fmt.Errorf("submitter: %w", err)
			}
		}
		time.Sleep(time.Duration(10+rand.Intn(30)) * time.Millisecond)
	}
}

// GrievanceFiler files grievances through the pipeline against the
// grievance bucket and inserter.
func GrievanceFiler(ctx context.Context, pool *pgxpool.Pool, userID string, stop <-chan struct{}) error {
	pipeline := submission.NewPipeline(document.NewPGStore(pool), "grievance-documents", grievance.NewRepository(pool))
	issues := []string{"application_delay", "document_problem", "benefit_not_received", "other"}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		_, err := pipeline.Submit(ctx, submission.Request{
			OwnerID: userID,
			Fields: map[string]any{
				"issue_type":  issues[rand.Intn(len(issues))],
				"description": fmt.Sprintf("stress grievance %d", rand.Int63()),
			},
			Documents: []submission.Document{
				{Label: "evidence.pdf", Payload: []byte(fmt.Sprintf("g-%d", rand.Int63()))},
			},
		})
		if err != nil && ctx.Err() == nil {
			var upErr *submission.UploadError
			var insErr *submission.InsertError
			if !asAny(err, &upErr, &insErr) {
				return fmt.Errorf("grievance filer: %w", err)
			}
		}
		time.Sleep(time.Duration(50+rand.Intn(100)) * time.Millisecond)
	}
}

// Reviewer flips pending applications to a terminal status, the way an
// official works through a queue.
func Reviewer(ctx context.Context, pool *pgxpool.Pool, stop <-chan struct{}) error {
	statuses := []string{"Approved", "Rejected", "Under Review"}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		status := statuses[rand.Intn(len(statuses))]
		tx, err := pool.Begin(ctx)
		if err != nil {
			return err
		}
		var id string
		err = tx.QueryRow(ctx, `SELECT id FROM applications WHERE status='Pending' LIMIT 1 FOR UPDATE SKIP LOCKED`).Scan(&id)
		if err == nil {
			if status == "Rejected" {
				_, _ = tx.Exec(ctx, `UPDATE applications SET status=$2, rejection_reason='stress rejection' WHERE id=$1`, id, status)
			} else {
				_, _ = tx.Exec(ctx, `UPDATE applications SET status=$2, rejection_reason=NULL WHERE id=$1`, id, status)
			}
			_ = tx.Commit(ctx)
		} else {
			_ = tx.Rollback(ctx)
		}
		time.Sleep(time.Duration(40+rand.Intn(80)) * time.Millisecond)
	}
}

// Reader resolves every document reference on the user's applications,
// checking that records only ever point at blobs that exist.
func Reader(ctx context.Context, pool *pgxpool.Pool, userID string, stop <-chan struct{}) error {
	store := document.NewPGStore(pool)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		rows, err := pool.Query(ctx, `SELECT unnest(document_ids) FROM applications WHERE user_id=$1`, userID)
		if err != nil {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		refs := make([]string, 0, 32)
		for rows.Next() {
			var ref string
			_ = rows.Scan(&ref)
			refs = append(refs, ref)
		}
		rows.Close()

		for _, ref := range refs {
			if _, err := store.Get(ctx, ref); err != nil && ctx.Err() == nil {
				return fmt.Errorf("reader: dangling document reference %s: %w", ref, err)
			}
		}
		time.Sleep(time.Duration(60+rand.Intn(120)) * time.Millisecond)
	}
}

// asAny reports whether err matches any of the given error targets.
func asAny(err error, targets ...any) bool {
	for _, t := range targets {
		if errors.As(err, t) {
			return true
		}
	}
	return false
}
