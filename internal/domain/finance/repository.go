package finance

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("finance record not found")

// RecordRepository persiste o livro-caixa. List devolve date desc.
type RecordRepository interface {
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}

// AccountRepository persiste as contas agendadas na ordem de inserção.
// SaveAll existe para o motor de vencidos regravar a coleção projetada.
type AccountRepository interface {
	List(ctx context.Context) ([]Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	Create(ctx context.Context, a Account) error
	Update(ctx context.Context, a Account) error
	Delete(ctx context.Context, id string) error
	SaveAll(ctx context.Context, accounts []Account) error
}

// CostCenterRepository persiste centros de custo (inclusive inativos).
type CostCenterRepository interface {
	List(ctx context.Context) ([]CostCenter, error)
	GetByID(ctx context.Context, id string) (CostCenter, error)
	Create(ctx context.Context, cc CostCenter) error
	Update(ctx context.Context, cc CostCenter) error
}

// BudgetRepository persiste orçamentos.
type BudgetRepository interface {
	List(ctx context.Context) ([]Budget, error)
	GetByID(ctx context.Context, id string) (Budget, error)
	Create(ctx context.Context, b Budget) error
	Update(ctx context.Context, b Budget) error
	Delete(ctx context.Context, id string) error
}
