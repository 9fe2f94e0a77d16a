package health

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	vaccs VaccinationRepository
	meds  MedicationRepository
	now   func() time.Time
}

func NewService(vaccs VaccinationRepository, meds MedicationRepository) *Service {
	return &Service{vaccs: vaccs, meds: meds, now: time.Now}
}

// -------------------------
// Vacinações
// -------------------------

type VaccinationInput struct {
	AnimalID      string
	VaccineName   string
	VaccineType   string
	ScheduledDate time.Time
	AppliedDate   *time.Time
	Veterinarian  string
	Notes         string
	Status        string
}

func (s *Service) CreateVaccination(ctx context.Context, in VaccinationInput) (Vaccination, error) {
	if strings.TrimSpace(in.AnimalID) == "" || strings.TrimSpace(in.VaccineName) == "" {
		return Vaccination{}, ErrInvalidInput
	}

	status := VaccinationStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = VaccinationAgendada
	}
	applied, err := normalizeVaccApplied(status, in.AppliedDate, s.now())
	if err != nil {
		return Vaccination{}, err
	}

	now := s.now()
	v := Vaccination{
		ID:            uuid.NewString(),
		AnimalID:      strings.TrimSpace(in.AnimalID),
		VaccineName:   strings.TrimSpace(in.VaccineName),
		VaccineType:   strings.TrimSpace(in.VaccineType),
		ScheduledDate: in.ScheduledDate,
		AppliedDate:   applied,
		Veterinarian:  strings.TrimSpace(in.Veterinarian),
		Notes:         strings.TrimSpace(in.Notes),
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.vaccs.Create(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

type VaccinationUpdate struct {
	VaccineName   *string
	VaccineType   *string
	ScheduledDate *time.Time
	AppliedDate   *time.Time
	Veterinarian  *string
	Notes         *string
	Status        *string
}

func (s *Service) UpdateVaccination(ctx context.Context, id string, in VaccinationUpdate) (Vaccination, error) {
	v, err := s.vaccs.GetByID(ctx, id)
	if err != nil {
		return Vaccination{}, err
	}

	if in.VaccineName != nil {
		if strings.TrimSpace(*in.VaccineName) == "" {
			return Vaccination{}, ErrInvalidInput
		}
		v.VaccineName = strings.TrimSpace(*in.VaccineName)
	}
	if in.VaccineType != nil {
		v.VaccineType = strings.TrimSpace(*in.VaccineType)
	}
	if in.ScheduledDate != nil {
		v.ScheduledDate = *in.ScheduledDate
	}
	if in.Veterinarian != nil {
		v.Veterinarian = strings.TrimSpace(*in.Veterinarian)
	}
	if in.Notes != nil {
		v.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Status != nil {
		v.Status = VaccinationStatus(strings.TrimSpace(*in.Status))
		if v.Status != VaccinationAplicada && in.AppliedDate == nil {
			v.AppliedDate = nil
		}
	}
	if in.AppliedDate != nil {
		v.AppliedDate = in.AppliedDate
	}

	v.AppliedDate, err = normalizeVaccApplied(v.Status, v.AppliedDate, s.now())
	if err != nil {
		return Vaccination{}, err
	}

	v.UpdatedAt = s.now()
	if err := s.vaccs.Update(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

// normalizeVaccApplied garante a invariante applied_date <=> Aplicada.
func normalizeVaccApplied(status VaccinationStatus, applied *time.Time, now time.Time) (*time.Time, error) {
	switch status {
	case VaccinationAplicada:
		if applied == nil {
			return &now, nil
		}
		return applied, nil
	case VaccinationAgendada, VaccinationCancelada:
		if applied != nil {
			return nil, ErrInvalidInput
		}
		return nil, nil
	default:
		return nil, ErrInvalidInput
	}
}

func (s *Service) ListVaccinations(ctx context.Context) ([]Vaccination, error) {
	return s.vaccs.List(ctx)
}

func (s *Service) ListVaccinationsByAnimal(ctx context.Context, animalID string) ([]Vaccination, error) {
	all, err := s.vaccs.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(animalID) == "" {
		return all, nil
	}
	out := make([]Vaccination, 0)
	for _, v := range all {
		if v.AnimalID == animalID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Service) GetVaccination(ctx context.Context, id string) (Vaccination, error) {
	return s.vaccs.GetByID(ctx, id)
}

func (s *Service) DeleteVaccination(ctx context.Context, id string) error {
	return s.vaccs.Delete(ctx, id)
}

// ScheduledInMonth conta vacinações agendadas dentro do mês de ref.
// Alimenta o painel do rebanho (animals.VaccinationSource).
func (s *Service) ScheduledInMonth(ctx context.Context, ref time.Time) (int, error) {
	all, err := s.vaccs.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range all {
		if v.ScheduledDate.Year() == ref.Year() && v.ScheduledDate.Month() == ref.Month() {
			n++
		}
	}
	return n, nil
}

// -------------------------
// Medicações
// -------------------------

type MedicationInput struct {
	AnimalID       string
	MedicationName string
	Dosage         string
	Date           time.Time
	AppliedDate    *time.Time
	NextDate       *time.Time
	Veterinarian   string
	Notes          string
	Status         string
}

func (s *Service) CreateMedication(ctx context.Context, in MedicationInput) (Medication, error) {
	if strings.TrimSpace(in.AnimalID) == "" || strings.TrimSpace(in.MedicationName) == "" {
		return Medication{}, ErrInvalidInput
	}

	status := MedicationStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = MedicationAgendado
	}
	applied, err := normalizeMedApplied(status, in.AppliedDate, s.now())
	if err != nil {
		return Medication{}, err
	}

	now := s.now()
	m := Medication{
		ID:             uuid.NewString(),
		AnimalID:       strings.TrimSpace(in.AnimalID),
		MedicationName: strings.TrimSpace(in.MedicationName),
		Dosage:         strings.TrimSpace(in.Dosage),
		Date:           in.Date,
		AppliedDate:    applied,
		NextDate:       in.NextDate,
		Veterinarian:   strings.TrimSpace(in.Veterinarian),
		Notes:          strings.TrimSpace(in.Notes),
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.meds.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

type MedicationUpdate struct {
	MedicationName *string
	Dosage         *string
	Date           *time.Time
	AppliedDate    *time.Time
	NextDate       *time.Time
	Veterinarian   *string
	Notes          *string
	Status         *string
}

func (s *Service) UpdateMedication(ctx context.Context, id string, in MedicationUpdate) (Medication, error) {
	m, err := s.meds.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}

	if in.MedicationName != nil {
		if strings.TrimSpace(*in.MedicationName) == "" {
			return Medication{}, ErrInvalidInput
		}
		m.MedicationName = strings.TrimSpace(*in.MedicationName)
	}
	if in.Dosage != nil {
		m.Dosage = strings.TrimSpace(*in.Dosage)
	}
	if in.Date != nil {
		m.Date = *in.Date
	}
	if in.NextDate != nil {
		m.NextDate = in.NextDate
	}
	if in.Veterinarian != nil {
		m.Veterinarian = strings.TrimSpace(*in.Veterinarian)
	}
	if in.Notes != nil {
		m.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Status != nil {
		m.Status = MedicationStatus(strings.TrimSpace(*in.Status))
		if m.Status != MedicationAplicado && in.AppliedDate == nil {
			m.AppliedDate = nil
		}
	}
	if in.AppliedDate != nil {
		m.AppliedDate = in.AppliedDate
	}

	m.AppliedDate, err = normalizeMedApplied(m.Status, m.AppliedDate, s.now())
	if err != nil {
		return Medication{}, err
	}

	m.UpdatedAt = s.now()
	if err := s.meds.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func normalizeMedApplied(status MedicationStatus, applied *time.Time, now time.Time) (*time.Time, error) {
	switch status {
	case MedicationAplicado:
		if applied == nil {
			return &now, nil
		}
		return applied, nil
	case MedicationAgendado, MedicationCancelado:
		if applied != nil {
			return nil, ErrInvalidInput
		}
		return nil, nil
	default:
		return nil, ErrInvalidInput
	}
}

func (s *Service) ListMedications(ctx context.Context) ([]Medication, error) {
	return s.meds.List(ctx)
}

func (s *Service) ListMedicationsByAnimal(ctx context.Context, animalID string) ([]Medication, error) {
	all, err := s.meds.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(animalID) == "" {
		return all, nil
	}
	out := make([]Medication, 0)
	for _, m := range all {
		if m.AnimalID == animalID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Service) GetMedication(ctx context.Context, id string) (Medication, error) {
	return s.meds.GetByID(ctx, id)
}

func (s *Service) DeleteMedication(ctx context.Context, id string) error {
	return s.meds.Delete(ctx, id)
}
