package grievance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"janseva/submission"
)

var (
	ErrNotFound  = errors.New("grievance: not found")
	ErrBadStatus = errors.New("grievance: invalid status")
)

// Repository defines the read and review operations the service needs.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Grievance, error)
	GetByID(ctx context.Context, userID, id string) (Grievance, error)
	Respond(ctx context.Context, id string, status submission.Status, response string) (Grievance, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert persists one assembled grievance row. It implements
// submission.Inserter. Typed columns are pulled from the field
// snapshot the grievance service assembled.
func (r *PGRepository) Insert(ctx context.Context, row submission.Row) (submission.Record, error) {
	issueType, _ := row.Fields["issue_type"].(string)
	description, _ := row.Fields["description"].(string)
	if issueType == "" || description == "" {
		return submission.Record{}, fmt.Errorf("grievance: issue_type and description required")
	}
	var applicationID *string
	if v, ok := row.Fields["application_id"].(string); ok && v != "" {
		applicationID = &v
	}

	const insertSQL = `
		INSERT INTO grievances (user_id, application_id, scheme_id, issue_type, description, status, document_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
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
		applicationID,
		row.SchemeID,
		issueType,
		description,
		row.Status,
		row.DocumentRefs,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return submission.Record{}, fmt.Errorf("grievance: insert: %w", err)
	}

	return rec, nil
}

const grievanceColumns = `
	id, user_id, application_id, scheme_id, issue_type, description,
	status, response, document_ids, created_at
`

// ListByUser returns the user's grievances newest first.
func (r *PGRepository) ListByUser(ctx context.Context, userID string) ([]Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("grievance: list: %w", err)
	}
	defer rows.Close()

	out := make([]Grievance, 0, 8)
	for rows.Next() {
		g, err := scanGrievance(rows)
		if err != nil {
			return nil, fmt.Errorf("grievance: scan: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("grievance: iterate: %w", err)
	}
	return out, nil
}

// GetByID returns one grievance owned by the user.
func (r *PGRepository) GetByID(ctx context.Context, userID, id string) (Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances WHERE id = $1 AND user_id = $2`

	g, err := scanGrievance(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Grievance{}, ErrNotFound
		}
		return Grievance{}, fmt.Errorf("grievance: get by id: %w", err)
	}
	return g, nil
}

// Respond records the reviewing official's reply and status.
func (r *PGRepository) Respond(ctx context.Context, id string, status submission.Status, response string) (Grievance, error) {
	switch status {
	case submission.StatusUnderReview, submission.StatusResolved, submission.StatusRejected:
	default:
		return Grievance{}, ErrBadStatus
	}

	query := `
		UPDATE grievances
		SET status = $2, response = $3
		WHERE id = $1
		RETURNING ` + grievanceColumns

	g, err := scanGrievance(r.pool.QueryRow(ctx, query, id, status, response))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Grievance{}, ErrNotFound
		}
		return Grievance{}, fmt.Errorf("grievance: respond: %w", err)
	}
	return g, nil
}

func scanGrievance(row pgx.Row) (Grievance, error) {
	var g Grievance
	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.ApplicationID,
		&g.SchemeID,
		&g.IssueType,
		&g.Description,
		&g.Status,
		&g.Response,
		&g.DocumentRefs,
		&g.CreatedAt,
	)
	if err != nil {
		return Grievance{}, err
	}
	if g.DocumentRefs == nil {
		g.DocumentRefs = []string{}
	}
	return g, nil
}
