package animals

import (
	"context"
	"errors"
)

// ErrNotFound é devolvido por GetByID/Update quando o id não existe.
var ErrNotFound = errors.New("animal not found")

// Repository persiste animais. List devolve created_at desc.
type Repository interface {
	List(ctx context.Context) ([]Animal, error)
	GetByID(ctx context.Context, id string) (Animal, error)
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error // no-op se o id não existe
}

// WeightRepository persiste a série de pesagens.
type WeightRepository interface {
	List(ctx context.Context) ([]Weight, error)
	ListByAnimal(ctx context.Context, animalID string) ([]Weight, error) // date asc
	Create(ctx context.Context, w Weight) error
	Update(ctx context.Context, w Weight) error
	Delete(ctx context.Context, id string) error
}
