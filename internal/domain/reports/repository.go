package reports

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("report not found")

// Repository persiste os relatórios salvos. List devolve generated_at
// desc. Relatórios são imutáveis: não há Update.
type Repository interface {
	List(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id string) (Report, error)
	Create(ctx context.Context, rep Report) error
	Delete(ctx context.Context, id string) error
}
