package local

import (
	"context"

	"rebanho-backend/internal/domain/finance"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"
)

const (
	keyFinancialRecords  = "financial_records"
	keyFinancialAccounts = "financial_accounts"
	keyCostCenters       = "cost_centers"
	keyBudgets           = "budgets"
)

// FinancialRecordRepository lista por date desc (lançamento mais novo primeiro).
type FinancialRecordRepository struct {
	c collection[finance.Record]
}

func NewFinancialRecordRepository(st storage.Store, log logger.Logger) *FinancialRecordRepository {
	return &FinancialRecordRepository{c: collection[finance.Record]{
		col:      storage.NewCollection[finance.Record](st, keyFinancialRecords, log),
		id:       func(rec finance.Record) string { return rec.ID },
		notFound: finance.ErrNotFound,
		less:     func(a, b finance.Record) bool { return a.Date.After(b.Date) },
	}}
}

func (r *FinancialRecordRepository) List(ctx context.Context) ([]finance.Record, error) {
	return r.c.list(ctx)
}

func (r *FinancialRecordRepository) GetByID(ctx context.Context, id string) (finance.Record, error) {
	return r.c.getByID(ctx, id)
}

func (r *FinancialRecordRepository) Create(ctx context.Context, rec finance.Record) error {
	return r.c.create(ctx, rec)
}

func (r *FinancialRecordRepository) Update(ctx context.Context, rec finance.Record) error {
	return r.c.update(ctx, rec)
}

func (r *FinancialRecordRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

// FinancialAccountRepository mantém a ordem de inserção; o motor de
// vencidos regrava a coleção inteira via SaveAll.
type FinancialAccountRepository struct {
	c collection[finance.Account]
}

func NewFinancialAccountRepository(st storage.Store, log logger.Logger) *FinancialAccountRepository {
	return &FinancialAccountRepository{c: collection[finance.Account]{
		col:      storage.NewCollection[finance.Account](st, keyFinancialAccounts, log),
		id:       func(a finance.Account) string { return a.ID },
		notFound: finance.ErrNotFound,
	}}
}

func (r *FinancialAccountRepository) List(ctx context.Context) ([]finance.Account, error) {
	return r.c.list(ctx)
}

func (r *FinancialAccountRepository) GetByID(ctx context.Context, id string) (finance.Account, error) {
	return r.c.getByID(ctx, id)
}

func (r *FinancialAccountRepository) Create(ctx context.Context, a finance.Account) error {
	return r.c.create(ctx, a)
}

func (r *FinancialAccountRepository) Update(ctx context.Context, a finance.Account) error {
	return r.c.update(ctx, a)
}

func (r *FinancialAccountRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

func (r *FinancialAccountRepository) SaveAll(ctx context.Context, accounts []finance.Account) error {
	return r.c.saveAll(ctx, accounts)
}

// CostCenterRepository mantém ordem de inserção; inativos continuam na
// coleção (exclusão é lógica).
type CostCenterRepository struct {
	c collection[finance.CostCenter]
}

func NewCostCenterRepository(st storage.Store, log logger.Logger) *CostCenterRepository {
	return &CostCenterRepository{c: collection[finance.CostCenter]{
		col:      storage.NewCollection[finance.CostCenter](st, keyCostCenters, log),
		id:       func(cc finance.CostCenter) string { return cc.ID },
		notFound: finance.ErrNotFound,
	}}
}

func (r *CostCenterRepository) List(ctx context.Context) ([]finance.CostCenter, error) {
	return r.c.list(ctx)
}

func (r *CostCenterRepository) GetByID(ctx context.Context, id string) (finance.CostCenter, error) {
	return r.c.getByID(ctx, id)
}

func (r *CostCenterRepository) Create(ctx context.Context, cc finance.CostCenter) error {
	return r.c.create(ctx, cc)
}

func (r *CostCenterRepository) Update(ctx context.Context, cc finance.CostCenter) error {
	return r.c.update(ctx, cc)
}

// BudgetRepository mantém ordem de inserção.
type BudgetRepository struct {
	c collection[finance.Budget]
}

func NewBudgetRepository(st storage.Store, log logger.Logger) *BudgetRepository {
	return &BudgetRepository{c: collection[finance.Budget]{
		col:      storage.NewCollection[finance.Budget](st, keyBudgets, log),
		id:       func(b finance.Budget) string { return b.ID },
		notFound: finance.ErrNotFound,
	}}
}

func (r *BudgetRepository) List(ctx context.Context) ([]finance.Budget, error) {
	return r.c.list(ctx)
}

func (r *BudgetRepository) GetByID(ctx context.Context, id string) (finance.Budget, error) {
	return r.c.getByID(ctx, id)
}

func (r *BudgetRepository) Create(ctx context.Context, b finance.Budget) error {
	return r.c.create(ctx, b)
}

func (r *BudgetRepository) Update(ctx context.Context, b finance.Budget) error {
	return r.c.update(ctx, b)
}

func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
