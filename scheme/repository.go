package scheme

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals an unknown scheme id.
var ErrNotFound = errors.New("scheme: not found")

// Repository handles data access for the scheme catalog.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const schemeColumns = `
	id, title, description, eligibility_criteria, benefits, required_documents,
	ministry, category, region_specific, regions, income_limit, age_min, age_max,
	gender_specific, caste_categories, expiry_date, application_link, official_website,
	created_at
`

func (r *Repository) List(ctx context.Context, filters Filters) ([]Scheme, error) {
	query := `SELECT ` + schemeColumns + ` FROM schemes WHERE 1=1`
	args := []any{}
	if filters.Category != "" {
		args = append(args, filters.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filters.Ministry != "" {
		args = append(args, filters.Ministry)
		query += fmt.Sprintf(" AND ministry = $%d", len(args))
	}
	if filters.Region != "" {
		args = append(args, filters.Region)
		query += fmt.Sprintf(" AND (NOT region_specific OR $%d = ANY(regions))", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scheme: list: %w", err)
	}
	defer rows.Close()

	out := make([]Scheme, 0, 16)
	for rows.Next() {
		s, err := scanScheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scheme: scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scheme: iterate: %w", err)
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (Scheme, error) {
	query := `SELECT ` + schemeColumns + ` FROM schemes WHERE id = $1`

	s, err := scanScheme(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Scheme{}, ErrNotFound
		}
		return Scheme{}, fmt.Errorf("scheme: get by id: %w", err)
	}
	return s, nil
}

func scanScheme(row pgx.Row) (Scheme, error) {
	var s Scheme
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.EligibilityCriteria,
		&s.Benefits,
		&s.RequiredDocuments,
		&s.Ministry,
		&s.Category,
		&s.RegionSpecific,
		&s.Regions,
		&s.IncomeLimit,
		&s.AgeMin,
		&s.AgeMax,
		&s.GenderSpecific,
		&s.CasteCategories,
		&s.ExpiryDate,
		&s.ApplicationLink,
		&s.OfficialWebsite,
		&s.CreatedAt,
	)
	if err != nil {
		return Scheme{}, err
	}
	if s.RequiredDocuments == nil {
		s.RequiredDocuments = []string{}
	}
	return s, nil
}
