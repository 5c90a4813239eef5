package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"janseva/scheme"
	"janseva/submission"
)

var (
	ErrNotFound  = errors.New("application: not found")
	ErrBadStatus = errors.New("application: invalid status")
)

// Repository defines the read and review operations the service needs.
// Insert lives on PGRepository directly; it is consumed through
// submission.Inserter by the pipeline.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Application, error)
	GetByID(ctx context.Context, userID, id string) (Application, error)
	UpdateStatus(ctx context.Context, id string, status submission.Status, rejectionReason *string) (Application, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert persists one assembled submission row. It implements
// submission.Inserter: one insert, no partial writes.
func (r *PGRepository) Insert(ctx context.Context, row submission.Row) (submission.Record, error) {
	if row.SchemeID == nil || *row.SchemeID == "" {
		return submission.Record{}, fmt.Errorf("application: scheme id required")
	}

	const insertSQL = `
		INSERT INTO applications (user_id, scheme_id, status, document_ids, submitted_data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	rec := submission.Record{
		OwnerID:      row.OwnerID,
		SchemeID:     row.SchemeID,
		Status:       row.Status,
		Fields:       row.Fields,
		DocumentRefs: row.DocumentRefs,
	}
	err := r.pool.QueryRow(ctx, insertSQL,
		row.OwnerID,
		*row.SchemeID,
		row.Status,
		row.DocumentRefs,
		row.Fields,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return submission.Record{}, fmt.Errorf("application: insert: %w", err)
	}

	return rec, nil
}

const listSQL = `
	SELECT a.id, a.user_id, a.scheme_id, a.status, a.rejection_reason,
	       a.document_ids, a.submitted_data, a.created_at,
	       s.id, s.title, s.description, s.ministry, s.category
	FROM applications a
	JOIN schemes s ON s.id = a.scheme_id
`

// ListByUser returns the user's applications newest first, each with
// its scheme embedded. The descending order is the presentation
// contract the session cache relies on.
func (r *PGRepository) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	query := listSQL + ` WHERE a.user_id = $1 ORDER BY a.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("application: list: %w", err)
	}
	defer rows.Close()

	out := make([]Application, 0, 8)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("application: scan: %w", err)
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("application: iterate: %w", err)
	}
	return out, nil
}

// GetByID returns one application owned by the user.
func (r *PGRepository) GetByID(ctx context.Context, userID, id string) (Application, error) {
	query := listSQL + ` WHERE a.id = $1 AND a.user_id = $2`

	app, err := scanApplication(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, fmt.Errorf("application: get by id: %w", err)
	}
	return app, nil
}

// UpdateStatus is the reviewing side's transition. The submission
// pipeline never calls this; records leave it in Pending.
func (r *PGRepository) UpdateStatus(ctx context.Context, id string, status submission.Status, rejectionReason *string) (Application, error) {
	switch status {
	case submission.StatusPending, submission.StatusUnderReview, submission.StatusApproved, submission.StatusRejected:
	default:
		return Application{}, ErrBadStatus
	}
	if status != submission.StatusRejected {
		rejectionReason = nil
	}

	const updateSQL = `
		UPDATE applications
		SET status = $2, rejection_reason = $3
		WHERE id = $1
		RETURNING id, user_id, scheme_id, status, rejection_reason, document_ids, submitted_data, created_at
	`

	var app Application
	err := r.pool.QueryRow(ctx, updateSQL, id, status, rejectionReason).Scan(
		&app.ID,
		&app.UserID,
		&app.SchemeID,
		&app.Status,
		&app.RejectionReason,
		&app.DocumentRefs,
		&app.SubmittedData,
		&app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, fmt.Errorf("application: update status: %w", err)
	}
	return app, nil
}

func scanApplication(row pgx.Row) (Application, error) {
	var (
		app Application
		sch scheme.Scheme
	)
	err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.SchemeID,
		&app.Status,
		&app.RejectionReason,
		&app.DocumentRefs,
		&app.SubmittedData,
		&app.CreatedAt,
		&sch.ID,
		&sch.Title,
		&sch.Description,
		&sch.Ministry,
		&sch.Category,
	)
	if err != nil {
		return Application{}, err
	}
	if app.DocumentRefs == nil {
		app.DocumentRefs = []string{}
	}
	app.Scheme = &sch
	return app, nil
}
