package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/italosilvaf/TesteSolfacil/internal/domain"
)

// uniqueViolation mimics the error pgx surfaces for duplicate keys.
func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

type fakePartnerRepo struct {
	nextID   int64
	partners map[int64]*domain.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: make(map[int64]*domain.Partner)}
}

func (f *fakePartnerRepo) Create(_ context.Context, partner *domain.Partner) error {
	for _, existing := range f.partners {
		if existing.Email == partner.Email || existing.CNPJ == partner.CNPJ {
			return uniqueViolation()
		}
	}
	f.nextID++
	partner.ID = f.nextID
	stored := *partner
	f.partners[partner.ID] = &stored
	return nil
}

func (f *fakePartnerRepo) Update(_ context.Context, partner *domain.Partner) error {
	if _, ok := f.partners[partner.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range f.partners {
		if id != partner.ID && (existing.Email == partner.Email || existing.CNPJ == partner.CNPJ) {
			return uniqueViolation()
		}
	}
	stored := *partner
	f.partners[partner.ID] = &stored
	return nil
}

func (f *fakePartnerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.partners[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.partners, id)
	return nil
}

func (f *fakePartnerRepo) GetByID(_ context.Context, id int64) (*domain.Partner, error) {
	partner, ok := f.partners[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *partner
	return &copied, nil
}

func (f *fakePartnerRepo) GetByEmail(_ context.Context, email string) (*domain.Partner, error) {
	for _, partner := range f.partners {
		if partner.Email == email {
			copied := *partner
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePartnerRepo) List(_ context.Context) ([]domain.Partner, error) {
	var out []domain.Partner
	for id := int64(1); id <= f.nextID; id++ {
		if partner, ok := f.partners[id]; ok {
			out = append(out, *partner)
		}
	}
	return out, nil
}

func (f *fakePartnerRepo) ListLast(_ context.Context, limit int) ([]domain.Partner, error) {
	var out []domain.Partner
	for id := f.nextID; id >= 1 && len(out) < limit; id-- {
		if partner, ok := f.partners[id]; ok {
			out = append(out, *partner)
		}
	}
	return out, nil
}

type fakePlantRepo struct {
	nextID int64
	plants map[int64]*domain.Plant
}

func newFakePlantRepo() *fakePlantRepo {
	return &fakePlantRepo{plants: make(map[int64]*domain.Plant)}
}

func (f *fakePlantRepo) Create(_ context.Context, plant *domain.Plant) error {
	for _, existing := range f.plants {
		if existing.CEP == plant.CEP {
			return uniqueViolation()
		}
	}
	f.nextID++
	plant.ID = f.nextID
	stored := *plant
	f.plants[plant.ID] = &stored
	return nil
}

func (f *fakePlantRepo) Update(_ context.Context, plant *domain.Plant) error {
	if _, ok := f.plants[plant.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range f.plants {
		if id != plant.ID && existing.CEP == plant.CEP {
			return uniqueViolation()
		}
	}
	stored := *plant
	f.plants[plant.ID] = &stored
	return nil
}

func (f *fakePlantRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.plants[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.plants, id)
	return nil
}

func (f *fakePlantRepo) GetByID(_ context.Context, id int64) (*domain.Plant, error) {
	plant, ok := f.plants[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *plant
	return &copied, nil
}

func (f *fakePlantRepo) List(_ context.Context) ([]domain.Plant, error) {
	var out []domain.Plant
	for id := int64(1); id <= f.nextID; id++ {
		if plant, ok := f.plants[id]; ok {
			out = append(out, *plant)
		}
	}
	return out, nil
}

func (f *fakePlantRepo) ListByPartner(_ context.Context, partnerID int64) ([]domain.Plant, error) {
	var out []domain.Plant
	for id := int64(1); id <= f.nextID; id++ {
		if plant, ok := f.plants[id]; ok && plant.PartnerID == partnerID {
			out = append(out, *plant)
		}
	}
	return out, nil
}

func (f *fakePlantRepo) ListTopCapacity(_ context.Context, limit int) ([]domain.Plant, error) {
	plants, _ := f.List(context.Background())
	// Selection by capacity, largest first.
	for i := 0; i < len(plants); i++ {
		for j := i + 1; j < len(plants); j++ {
			if plants[j].MaxCapacityGW > plants[i].MaxCapacityGW {
				plants[i], plants[j] = plants[j], plants[i]
			}
		}
	}
	if len(plants) > limit {
		plants = plants[:limit]
	}
	return plants, nil
}
