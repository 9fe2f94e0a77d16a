package local

import (
	"context"

	"rebanho-backend/internal/domain/animals"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"
)

const (
	keyAnimals = "animals"
	keyWeights = "animal_weights"
)

// AnimalRepository lista por created_at desc (cadastro mais novo primeiro).
type AnimalRepository struct {
	c collection[animals.Animal]
}

func NewAnimalRepository(st storage.Store, log logger.Logger) *AnimalRepository {
	return &AnimalRepository{c: collection[animals.Animal]{
		col:      storage.NewCollection[animals.Animal](st, keyAnimals, log),
		id:       func(a animals.Animal) string { return a.ID },
		notFound: animals.ErrNotFound,
		less:     func(a, b animals.Animal) bool { return a.CreatedAt.After(b.CreatedAt) },
	}}
}

func (r *AnimalRepository) List(ctx context.Context) ([]animals.Animal, error) {
	return r.c.list(ctx)
}

func (r *AnimalRepository) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	return r.c.getByID(ctx, id)
}

func (r *AnimalRepository) Create(ctx context.Context, a animals.Animal) error {
	return r.c.create(ctx, a)
}

func (r *AnimalRepository) Update(ctx context.Context, a animals.Animal) error {
	return r.c.update(ctx, a)
}

func (r *AnimalRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

// WeightRepository lista por data asc (a série de pesagem é crescente).
type WeightRepository struct {
	c collection[animals.Weight]
}

func NewWeightRepository(st storage.Store, log logger.Logger) *WeightRepository {
	return &WeightRepository{c: collection[animals.Weight]{
		col:      storage.NewCollection[animals.Weight](st, keyWeights, log),
		id:       func(w animals.Weight) string { return w.ID },
		notFound: animals.ErrNotFound,
		less:     func(a, b animals.Weight) bool { return a.Date.Before(b.Date) },
	}}
}

func (r *WeightRepository) List(ctx context.Context) ([]animals.Weight, error) {
	return r.c.list(ctx)
}

func (r *WeightRepository) ListByAnimal(ctx context.Context, animalID string) ([]animals.Weight, error) {
	all, err := r.c.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]animals.Weight, 0)
	for _, w := range all {
		if w.AnimalID == animalID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *WeightRepository) Create(ctx context.Context, w animals.Weight) error {
	return r.c.create(ctx, w)
}

func (r *WeightRepository) Update(ctx context.Context, w animals.Weight) error {
	return r.c.update(ctx, w)
}

func (r *WeightRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
