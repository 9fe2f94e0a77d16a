package breeding

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("breeding record not found")

// Repository persiste os ciclos reprodutivos. List devolve breeding_date desc.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}
