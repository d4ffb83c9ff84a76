package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portsrepo "github.com/brewnotes/brewnotes_app/internal/core/ports/repositories"
	"github.com/brewnotes/brewnotes_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCafeRepository struct {
	BaseRepository
}

func newPgxCafeRepository(db *pgxpool.Pool) portsrepo.CafeRepository {
	return &PgxCafeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CafeRepository = (*PgxCafeRepository)(nil)

func toDomainCafe(m models.Cafe) domain.Cafe {
	return domain.Cafe{
		CafeID:   m.CafeID,
		Name:     m.Name,
		Location: m.Location,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxCafeRepository) SaveCafe(ctx context.Context, cafe domain.Cafe) error {
	query := `
        INSERT INTO cafes (cafe_id, name, location, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		cafe.CafeID,
		cafe.Name,
		cafe.Location,
		cafe.CreatedAt,
		cafe.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save cafe: %w", err)
	}
	return nil
}

const cafeColumns = `cafe_id, name, location, created_at, last_updated_at`

func (r *PgxCafeRepository) FindCafeByID(ctx context.Context, cafeID string) (*domain.Cafe, error) {
	query := `SELECT ` + cafeColumns + ` FROM cafes WHERE cafe_id = $1;`
	var m models.Cafe
	err := r.Pool.QueryRow(ctx, query, cafeID).Scan(
		&m.CafeID, &m.Name, &m.Location, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cafe %s: %w", cafeID, err)
	}
	cafe := toDomainCafe(m)
	return &cafe, nil
}

func (r *PgxCafeRepository) FindCafes(ctx context.Context) ([]domain.Cafe, error) {
	query := `SELECT ` + cafeColumns + ` FROM cafes ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cafes: %w", err)
	}
	defer rows.Close()

	cafes := []domain.Cafe{}
	for rows.Next() {
		var m models.Cafe
		if err := rows.Scan(&m.CafeID, &m.Name, &m.Location, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cafe row: %w", err)
		}
		cafes = append(cafes, toDomainCafe(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cafe rows: %w", rows.Err())
	}
	return cafes, nil
}

func (r *PgxCafeRepository) UpdateCafe(ctx context.Context, cafe domain.Cafe) error {
	query := `
        UPDATE cafes
        SET name = $1, location = $2, last_updated_at = $3
        WHERE cafe_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		cafe.Name,
		cafe.Location,
		cafe.LastUpdatedAt,
		cafe.CafeID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update cafe query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cafe not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCafeRepository) DeleteCafe(ctx context.Context, cafeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM cafes WHERE cafe_id = $1;`, cafeID)
	if err != nil {
		return fmt.Errorf("failed to delete cafe: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cafe not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
