package local

import (
	"context"

	"rebanho-backend/internal/domain/reports"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"
)

const keyReports = "reports"

// ReportRepository lista por generated_at desc.
type ReportRepository struct {
	c collection[reports.Report]
}

func NewReportRepository(st storage.Store, log logger.Logger) *ReportRepository {
	return &ReportRepository{c: collection[reports.Report]{
		col:      storage.NewCollection[reports.Report](st, keyReports, log),
		id:       func(rep reports.Report) string { return rep.ID },
		notFound: reports.ErrNotFound,
		less: func(a, b reports.Report) bool {
			return a.GeneratedAt.After(b.GeneratedAt)
		},
	}}
}

func (r *ReportRepository) List(ctx context.Context) ([]reports.Report, error) {
	return r.c.list(ctx)
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (reports.Report, error) {
	return r.c.getByID(ctx, id)
}

func (r *ReportRepository) Create(ctx context.Context, rep reports.Report) error {
	return r.c.create(ctx, rep)
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
