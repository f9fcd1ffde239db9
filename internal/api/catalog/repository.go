package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository fetches the raw catalog collections. Implementations must be
// safe for concurrent calls since the service loads all three in parallel.
type Repository interface {
	FetchBuildings(ctx context.Context) ([]types.Building, error)
	FetchSpots(ctx context.Context) ([]types.StudySpot, error)
	FetchReviews(ctx context.Context) ([]types.Review, error)
}

// DB is the slice of pgxpool.Pool the repository needs. pgxmock pools
// implement it too.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool DB
}

func NewPostgresRepository(pgpool DB, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresRepository) FetchBuildings(ctx context.Context) ([]types.Building, error) {
	query := `
        SELECT id, name, code, address, opening_hours, image_names, latitude, longitude
        FROM buildings
        ORDER BY name
    `
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query buildings: %w", err)
	}
	defer rows.Close()

	var buildings []types.Building
	for rows.Next() {
		var b types.Building
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Code, &b.Address,
			&b.OpeningHours, &b.ImageNames, &b.Latitude, &b.Longitude,
		); err != nil {
			return nil, fmt.Errorf("failed to scan building row: %w", err)
		}
		buildings = append(buildings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating building rows: %w", err)
	}
	return buildings, nil
}

func (r *PostgresRepository) FetchSpots(ctx context.Context) ([]types.StudySpot, error) {
	query := `
        SELECT id, name, building_id, floor, description, features, capacity,
               latitude, longitude, opening_hours, review_ids, average_rating
        FROM study_spots
        ORDER BY name
    `
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query study spots: %w", err)
	}
	defer rows.Close()

	var spots []types.StudySpot
	for rows.Next() {
		var s types.StudySpot
		if err := rows.Scan(
			&s.ID, &s.Name, &s.BuildingID, &s.Floor, &s.Description, &s.Features,
			&s.Capacity, &s.Latitude, &s.Longitude, &s.OpeningHours,
			&s.ReviewIDs, &s.AverageRating,
		); err != nil {
			return nil, fmt.Errorf("failed to scan study spot row: %w", err)
		}
		spots = append(spots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating study spot rows: %w", err)
	}
	return spots, nil
}

func (r *PostgresRepository) FetchReviews(ctx context.Context) ([]types.Review, error) {
	query := `
        SELECT id, spot_id, rating, comment, created_at, user_name, user_id
        FROM reviews
        ORDER BY created_at DESC
    `
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []types.Review
	for rows.Next() {
		var rv types.Review
		if err := rows.Scan(
			&rv.ID, &rv.SpotID, &rv.Rating, &rv.Comment,
			&rv.Timestamp, &rv.UserName, &rv.UserID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}
	return reviews, nil
}

// InsertReview persists a user-submitted review. Only the reviews table is
// touched; stored spot ratings are never recomputed here.
func (r *PostgresRepository) InsertReview(ctx context.Context, review types.Review) error {
	tx, err := r.pgpool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO reviews (id, spot_id, rating, comment, created_at, user_name, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	if _, err = tx.Exec(ctx, query,
		review.ID, review.SpotID, review.Rating, review.Comment,
		review.Timestamp, review.UserName, review.UserID,
	); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
