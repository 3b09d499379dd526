package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/italosilvaf/TesteSolfacil/internal/domain"
)

// PlantRepository defines persistence access for plants.
type PlantRepository interface {
	Create(ctx context.Context, plant *domain.Plant) error
	Update(ctx context.Context, plant *domain.Plant) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Plant, error)
	List(ctx context.Context) ([]domain.Plant, error)
	ListByPartner(ctx context.Context, partnerID int64) ([]domain.Plant, error)
	ListTopCapacity(ctx context.Context, limit int) ([]domain.Plant, error)
}

type plantRepository struct {
	pool *pgxpool.Pool
}

// NewPlantRepository returns a Postgres-backed implementation.
func NewPlantRepository(pool *pgxpool.Pool) PlantRepository {
	return &plantRepository{pool: pool}
}

func (r *plantRepository) Create(ctx context.Context, plant *domain.Plant) error {
	const query = `
        INSERT INTO plants (uuid, name, cep, latitude, longitude, max_capacity_gw, partner_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		plant.UUID,
		plant.Name,
		plant.CEP,
		plant.Latitude,
		plant.Longitude,
		plant.MaxCapacityGW,
		plant.PartnerID,
	).Scan(&plant.ID, &plant.CreatedAt)
}

func (r *plantRepository) Update(ctx context.Context, plant *domain.Plant) error {
	const query = `
        UPDATE plants SET name=$1, cep=$2, latitude=$3, longitude=$4, max_capacity_gw=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		plant.Name,
		plant.CEP,
		plant.Latitude,
		plant.Longitude,
		plant.MaxCapacityGW,
		plant.ID,
	).Scan(&plant.UpdatedAt)
}

func (r *plantRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM plants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *plantRepository) GetByID(ctx context.Context, id int64) (*domain.Plant, error) {
	const query = `
        SELECT uuid, id, name, cep, latitude, longitude, max_capacity_gw, partner_id, created_at, updated_at
        FROM plants WHERE id=$1`

	var plant domain.Plant
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&plant.UUID,
		&plant.ID,
		&plant.Name,
		&plant.CEP,
		&plant.Latitude,
		&plant.Longitude,
		&plant.MaxCapacityGW,
		&plant.PartnerID,
		&plant.CreatedAt,
		&plant.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *plantRepository) List(ctx context.Context) ([]domain.Plant, error) {
	const query = `
        SELECT uuid, id, name, cep, latitude, longitude, max_capacity_gw, partner_id, created_at, updated_at
        FROM plants ORDER BY id`

	return r.queryMany(ctx, query)
}

func (r *plantRepository) ListByPartner(ctx context.Context, partnerID int64) ([]domain.Plant, error) {
	const query = `
        SELECT uuid, id, name, cep, latitude, longitude, max_capacity_gw, partner_id, created_at, updated_at
        FROM plants WHERE partner_id=$1 ORDER BY id`

	return r.queryMany(ctx, query, partnerID)
}

func (r *plantRepository) ListTopCapacity(ctx context.Context, limit int) ([]domain.Plant, error) {
	const query = `
        SELECT uuid, id, name, cep, latitude, longitude, max_capacity_gw, partner_id, created_at, updated_at
        FROM plants ORDER BY max_capacity_gw DESC LIMIT $1`

	return r.queryMany(ctx, query, limit)
}

func (r *plantRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Plant, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plants []domain.Plant
	for rows.Next() {
		var plant domain.Plant
		if err := rows.Scan(
			&plant.UUID,
			&plant.ID,
			&plant.Name,
			&plant.CEP,
			&plant.Latitude,
			&plant.Longitude,
			&plant.MaxCapacityGW,
			&plant.PartnerID,
			&plant.CreatedAt,
			&plant.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plants = append(plants, plant)
	}
	return plants, rows.Err()
}
