package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals that no profile row exists for the user.
var ErrNotFound = errors.New("profile: not found")

// Repository handles data access for profiles.
type Repository interface {
	GetByID(ctx context.Context, userID string) (Profile, error)
	Create(ctx context.Context, userID string) (Profile, error)
	Update(ctx context.Context, userID string, params UpdateParams) (Profile, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const profileColumns = `
	id, name, age, gender, caste_category, religion, annual_income,
	state, district, city_village, aadhaar_verified, avatar_url, created_at
`

func (r *PGRepository) GetByID(ctx context.Context, userID string) (Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("profile: get by id: %w", err)
	}
	return p, nil
}

// Create inserts an empty profile row for a first sign-in.
func (r *PGRepository) Create(ctx context.Context, userID string) (Profile, error) {
	query := `INSERT INTO profiles (id) VALUES ($1) RETURNING ` + profileColumns

	p, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return Profile{}, fmt.Errorf("profile: create: %w", err)
	}
	return p, nil
}

func (r *PGRepository) Update(ctx context.Context, userID string, params UpdateParams) (Profile, error) {
	query := `
		UPDATE profiles
		SET name = $2, age = $3, gender = $4, caste_category = $5, religion = $6,
		    annual_income = $7, state = $8, district = $9, city_village = $10,
		    avatar_url = $11
		WHERE id = $1
		RETURNING ` + profileColumns

	p, err := scanProfile(r.pool.QueryRow(ctx, query,
		userID,
		params.Name,
		params.Age,
		params.Gender,
		params.CasteCategory,
		params.Religion,
		params.AnnualIncome,
		params.State,
		params.District,
		params.CityVillage,
		params.AvatarURL,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("profile: update: %w", err)
	}
	return p, nil
}

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Gender,
		&p.CasteCategory,
		&p.Religion,
		&p.AnnualIncome,
		&p.State,
		&p.District,
		&p.CityVillage,
		&p.AadhaarVerified,
		&p.AvatarURL,
		&p.CreatedAt,
	)
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}
