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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCoffeeRepository struct {
	BaseRepository
}

func newPgxCoffeeRepository(db *pgxpool.Pool) portsrepo.CoffeeRepository {
	return &PgxCoffeeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CoffeeRepository = (*PgxCoffeeRepository)(nil)

func toDomainCoffee(m models.Coffee) domain.Coffee {
	return domain.Coffee{
		CoffeeID:    m.CoffeeID,
		Name:        m.Name,
		Description: m.Description,
		CafeID:      m.CafeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxCoffeeRepository) SaveCoffee(ctx context.Context, coffee domain.Coffee) error {
	query := `
        INSERT INTO coffees (coffee_id, name, description, cafe_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		coffee.CoffeeID,
		coffee.Name,
		coffee.Description,
		coffee.CafeID,
		coffee.CreatedAt,
		coffee.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewNotFoundError("Cafe not found")
		}
		return fmt.Errorf("failed to save coffee: %w", err)
	}
	return nil
}

const coffeeColumns = `coffee_id, name, description, cafe_id, created_at, last_updated_at`

func (r *PgxCoffeeRepository) FindCoffeeByID(ctx context.Context, coffeeID string) (*domain.Coffee, error) {
	query := `SELECT ` + coffeeColumns + ` FROM coffees WHERE coffee_id = $1;`
	var m models.Coffee
	err := r.Pool.QueryRow(ctx, query, coffeeID).Scan(
		&m.CoffeeID, &m.Name, &m.Description, &m.CafeID, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find coffee %s: %w", coffeeID, err)
	}
	coffee := toDomainCoffee(m)
	return &coffee, nil
}

func (r *PgxCoffeeRepository) FindCoffees(ctx context.Context) ([]domain.Coffee, error) {
	query := `SELECT ` + coffeeColumns + ` FROM coffees ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query coffees: %w", err)
	}
	defer rows.Close()

	coffees := []domain.Coffee{}
	for rows.Next() {
		var m models.Coffee
		if err := rows.Scan(&m.CoffeeID, &m.Name, &m.Description, &m.CafeID, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan coffee row: %w", err)
		}
		coffees = append(coffees, toDomainCoffee(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating coffee rows: %w", rows.Err())
	}
	return coffees, nil
}

func (r *PgxCoffeeRepository) UpdateCoffee(ctx context.Context, coffee domain.Coffee) error {
	query := `
        UPDATE coffees
        SET name = $1, description = $2, last_updated_at = $3
        WHERE coffee_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		coffee.Name,
		coffee.Description,
		coffee.LastUpdatedAt,
		coffee.CoffeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update coffee query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("coffee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCoffeeRepository) DeleteCoffee(ctx context.Context, coffeeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM coffees WHERE coffee_id = $1;`, coffeeID)
	if err != nil {
		return fmt.Errorf("failed to delete coffee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("coffee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
