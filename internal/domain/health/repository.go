package health

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("health record not found")

// VaccinationRepository persiste vacinações. List devolve scheduled_date asc.
type VaccinationRepository interface {
	List(ctx context.Context) ([]Vaccination, error)
	GetByID(ctx context.Context, id string) (Vaccination, error)
	Create(ctx context.Context, v Vaccination) error
	Update(ctx context.Context, v Vaccination) error
	Delete(ctx context.Context, id string) error
}

// MedicationRepository persiste medicações. List devolve date asc.
type MedicationRepository interface {
	List(ctx context.Context) ([]Medication, error)
	GetByID(ctx context.Context, id string) (Medication, error)
	Create(ctx context.Context, m Medication) error
	Update(ctx context.Context, m Medication) error
	Delete(ctx context.Context, id string) error
}
