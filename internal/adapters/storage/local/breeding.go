package local

import (
	"context"

	"rebanho-backend/internal/domain/breeding"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"
)

const keyBreeding = "breeding_records"

// BreedingRepository lista por breeding_date desc (ciclo mais novo primeiro).
type BreedingRepository struct {
	c collection[breeding.Record]
}

func NewBreedingRepository(st storage.Store, log logger.Logger) *BreedingRepository {
	return &BreedingRepository{c: collection[breeding.Record]{
		col:      storage.NewCollection[breeding.Record](st, keyBreeding, log),
		id:       func(rec breeding.Record) string { return rec.ID },
		notFound: breeding.ErrNotFound,
		less: func(a, b breeding.Record) bool {
			return a.BreedingDate.After(b.BreedingDate)
		},
	}}
}

func (r *BreedingRepository) List(ctx context.Context) ([]breeding.Record, error) {
	return r.c.list(ctx)
}

func (r *BreedingRepository) GetByID(ctx context.Context, id string) (breeding.Record, error) {
	return r.c.getByID(ctx, id)
}

func (r *BreedingRepository) Create(ctx context.Context, rec breeding.Record) error {
	return r.c.create(ctx, rec)
}

func (r *BreedingRepository) Update(ctx context.Context, rec breeding.Record) error {
	return r.c.update(ctx, rec)
}

func (r *BreedingRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
