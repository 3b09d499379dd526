package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/italosilvaf/TesteSolfacil/internal/domain"
)

// PartnerRepository defines persistence access for partners.
type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	Update(ctx context.Context, partner *domain.Partner) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Partner, error)
	GetByEmail(ctx context.Context, email string) (*domain.Partner, error)
	List(ctx context.Context) ([]domain.Partner, error)
	ListLast(ctx context.Context, limit int) ([]domain.Partner, error)
}

type partnerRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository returns a Postgres-backed implementation.
func NewPartnerRepository(pool *pgxpool.Pool) PartnerRepository {
	return &partnerRepository{pool: pool}
}

func (r *partnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	const query = `
        INSERT INTO partners (uuid, name, cnpj, email, password_hash)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		partner.UUID,
		partner.Name,
		partner.CNPJ,
		partner.Email,
		partner.PasswordHash,
	).Scan(&partner.ID, &partner.CreatedAt)
}

func (r *partnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	const query = `
        UPDATE partners SET name=$1, cnpj=$2, email=$3, password_hash=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		partner.Name,
		partner.CNPJ,
		partner.Email,
		partner.PasswordHash,
		partner.ID,
	).Scan(&partner.UpdatedAt)
}

func (r *partnerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	const query = `
        SELECT uuid, id, name, cnpj, email, password_hash, created_at, updated_at
        FROM partners WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *partnerRepository) GetByEmail(ctx context.Context, email string) (*domain.Partner, error) {
	const query = `
        SELECT uuid, id, name, cnpj, email, password_hash, created_at, updated_at
        FROM partners WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *partnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	const query = `
        SELECT uuid, id, name, cnpj, email, password_hash, created_at, updated_at
        FROM partners ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanMany(rows)
}

func (r *partnerRepository) ListLast(ctx context.Context, limit int) ([]domain.Partner, error) {
	const query = `
        SELECT uuid, id, name, cnpj, email, password_hash, created_at, updated_at
        FROM partners ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanMany(rows)
}

func (r *partnerRepository) scanOne(row pgx.Row) (*domain.Partner, error) {
	var partner domain.Partner
	if err := row.Scan(
		&partner.UUID,
		&partner.ID,
		&partner.Name,
		&partner.CNPJ,
		&partner.Email,
		&partner.PasswordHash,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) scanMany(rows pgx.Rows) ([]domain.Partner, error) {
	var partners []domain.Partner
	for rows.Next() {
		var partner domain.Partner
		if err := rows.Scan(
			&partner.UUID,
			&partner.ID,
			&partner.Name,
			&partner.CNPJ,
			&partner.Email,
			&partner.PasswordHash,
			&partner.CreatedAt,
			&partner.UpdatedAt,
		); err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, rows.Err()
}
