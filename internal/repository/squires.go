package repository

import (
	"context"
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

func (r *Repository) CreateSquire(squire *domain.Squire) error {
	query := `
		INSERT INTO squires (id, name, email, color)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{squire.ID, squire.Name, squire.Email, squire.Color}
	dst := []any{&squire.CreatedAt, &squire.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSquireByID(id string) (*domain.Squire, error) {
	query := `
		SELECT name, email, color, created_at, version
		FROM squires WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	squire := &domain.Squire{
		ID: id,
	}

	dst := []any{&squire.Name, &squire.Email, &squire.Color, &squire.CreatedAt, &squire.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return squire, nil
}

// GetAllSquires devuelve la plantilla completa en su orden de alta. Ese orden
// es el que usa el reparto automático, por lo que debe ser estable.
func (r *Repository) GetAllSquires() ([]*domain.Squire, error) {
	query := `
		SELECT id, name, email, color, created_at, version
		FROM squires
		ORDER BY created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	squires := make([]*domain.Squire, 0)
	for rows.Next() {
		squire := &domain.Squire{}
		dst := []any{&squire.ID, &squire.Name, &squire.Email, &squire.Color, &squire.CreatedAt, &squire.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		squires = append(squires, squire)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return squires, nil
}

func (r *Repository) UpdateSquire(squire *domain.Squire) error {
	query := `
		UPDATE squires
		SET
			name = $1,
			email = $2,
			color = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{squire.Name, squire.Email, squire.Color, squire.ID, squire.Version}
	dst := []any{&squire.CreatedAt, &squire.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSquire(id string) error {
	query := `
		DELETE FROM squires WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
