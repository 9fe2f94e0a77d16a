package local

import (
	"context"

	"rebanho-backend/internal/domain/health"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"
)

const (
	keyVaccinations = "vaccinations"
	keyMedications  = "medications"
)

// VaccinationRepository lista por scheduled_date asc (agenda).
type VaccinationRepository struct {
	c collection[health.Vaccination]
}

func NewVaccinationRepository(st storage.Store, log logger.Logger) *VaccinationRepository {
	return &VaccinationRepository{c: collection[health.Vaccination]{
		col:      storage.NewCollection[health.Vaccination](st, keyVaccinations, log),
		id:       func(v health.Vaccination) string { return v.ID },
		notFound: health.ErrNotFound,
		less: func(a, b health.Vaccination) bool {
			return a.ScheduledDate.Before(b.ScheduledDate)
		},
	}}
}

func (r *VaccinationRepository) List(ctx context.Context) ([]health.Vaccination, error) {
	return r.c.list(ctx)
}

func (r *VaccinationRepository) GetByID(ctx context.Context, id string) (health.Vaccination, error) {
	return r.c.getByID(ctx, id)
}

func (r *VaccinationRepository) Create(ctx context.Context, v health.Vaccination) error {
	return r.c.create(ctx, v)
}

func (r *VaccinationRepository) Update(ctx context.Context, v health.Vaccination) error {
	return r.c.update(ctx, v)
}

func (r *VaccinationRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

// MedicationRepository lista por date asc.
type MedicationRepository struct {
	c collection[health.Medication]
}

func NewMedicationRepository(st storage.Store, log logger.Logger) *MedicationRepository {
	return &MedicationRepository{c: collection[health.Medication]{
		col:      storage.NewCollection[health.Medication](st, keyMedications, log),
		id:       func(m health.Medication) string { return m.ID },
		notFound: health.ErrNotFound,
		less:     func(a, b health.Medication) bool { return a.Date.Before(b.Date) },
	}}
}

func (r *MedicationRepository) List(ctx context.Context) ([]health.Medication, error) {
	return r.c.list(ctx)
}

func (r *MedicationRepository) GetByID(ctx context.Context, id string) (health.Medication, error) {
	return r.c.getByID(ctx, id)
}

func (r *MedicationRepository) Create(ctx context.Context, m health.Medication) error {
	return r.c.create(ctx, m)
}

func (r *MedicationRepository) Update(ctx context.Context, m health.Medication) error {
	return r.c.update(ctx, m)
}

func (r *MedicationRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
