package notes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("note not found")

// Repository persiste anotações. List devolve created_at desc.
type Repository interface {
	List(ctx context.Context) ([]Note, error)
	GetByID(ctx context.Context, id string) (Note, error)
	Create(ctx context.Context, n Note) error
	Update(ctx context.Context, n Note) error
	Delete(ctx context.Context, id string) error
}
