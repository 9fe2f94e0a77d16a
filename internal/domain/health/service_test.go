package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testVaccRepo struct {
	items []Vaccination
}

func (r *testVaccRepo) List(ctx context.Context) ([]Vaccination, error) {
	out := make([]Vaccination, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testVaccRepo) GetByID(ctx context.Context, id string) (Vaccination, error) {
	for _, v := range r.items {
		if v.ID == id {
			return v, nil
		}
	}
	return Vaccination{}, ErrNotFound
}

func (r *testVaccRepo) Create(ctx context.Context, v Vaccination) error {
	r.items = append(r.items, v)
	return nil
}

func (r *testVaccRepo) Update(ctx context.Context, v Vaccination) error {
	for i := range r.items {
		if r.items[i].ID == v.ID {
			r.items[i] = v
			return nil
		}
	}
	return ErrNotFound
}

func (r *testVaccRepo) Delete(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, v := range r.items {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	r.items = kept
	return nil
}

type testMedRepo struct {
	items []Medication
}

func (r *testMedRepo) List(ctx context.Context) ([]Medication, error) {
	out := make([]Medication, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testMedRepo) GetByID(ctx context.Context, id string) (Medication, error) {
	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return Medication{}, ErrNotFound
}

func (r *testMedRepo) Create(ctx context.Context, m Medication) error {
	r.items = append(r.items, m)
	return nil
}

func (r *testMedRepo) Update(ctx context.Context, m Medication) error {
	for i := range r.items {
		if r.items[i].ID == m.ID {
			r.items[i] = m
			return nil
		}
	}
	return ErrNotFound
}

func (r *testMedRepo) Delete(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, m := range r.items {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	r.items = kept
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(now time.Time) (*Service, *testVaccRepo, *testMedRepo) {
	vaccs := &testVaccRepo{}
	meds := &testMedRepo{}
	svc := NewService(vaccs, meds)
	svc.now = func() time.Time { return now }
	return svc, vaccs, meds
}

func TestCreateVaccination_AppliedInvariant(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, _ := newTestService(now)

	// Aplicada sem data ganha a data corrente
	v, err := svc.CreateVaccination(ctx, VaccinationInput{
		AnimalID: "a1", VaccineName: "Clostridiose",
		ScheduledDate: date(2026, time.March, 1), Status: "Aplicada",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AppliedDate == nil || !v.AppliedDate.Equal(now) {
		t.Fatalf("applied_date=%v", v.AppliedDate)
	}

	// Agendada com data aplicada é inconsistente
	applied := date(2026, time.March, 2)
	_, err = svc.CreateVaccination(ctx, VaccinationInput{
		AnimalID: "a1", VaccineName: "Raiva",
		ScheduledDate: date(2026, time.April, 1), Status: "Agendada", AppliedDate: &applied,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// default é Agendada
	v, err = svc.CreateVaccination(ctx, VaccinationInput{
		AnimalID: "a1", VaccineName: "Raiva", ScheduledDate: date(2026, time.April, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Status != VaccinationAgendada {
		t.Fatalf("default status=%s", v.Status)
	}
}

func TestUpdateVaccination_RevertClearsApplied(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, vaccs, _ := newTestService(now)

	applied := date(2026, time.March, 1)
	vaccs.items = []Vaccination{{
		ID: "v1", AnimalID: "a1", VaccineName: "Clostridiose",
		ScheduledDate: date(2026, time.March, 1),
		Status:        VaccinationAplicada, AppliedDate: &applied,
	}}

	status := "Agendada"
	v, err := svc.UpdateVaccination(ctx, "v1", VaccinationUpdate{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Status != VaccinationAgendada || v.AppliedDate != nil {
		t.Fatalf("revert must clear applied_date: %+v", v)
	}
}

func TestScheduledInMonth(t *testing.T) {
	ctx := context.Background()
	svc, vaccs, _ := newTestService(date(2026, time.March, 10))

	vaccs.items = []Vaccination{
		{ID: "1", ScheduledDate: date(2026, time.March, 5)},
		{ID: "2", ScheduledDate: date(2026, time.March, 25)},
		{ID: "3", ScheduledDate: date(2026, time.April, 1)},
	}

	n, err := svc.ScheduledInMonth(ctx, date(2026, time.March, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}

func TestCreateMedication_Defaults(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, _ := newTestService(now)

	m, err := svc.CreateMedication(ctx, MedicationInput{
		AnimalID: "a1", MedicationName: "Ivermectina", Date: date(2026, time.March, 15),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != MedicationAgendado {
		t.Fatalf("default status=%s", m.Status)
	}

	// Aplicado sem data recebe a corrente
	m, err = svc.CreateMedication(ctx, MedicationInput{
		AnimalID: "a1", MedicationName: "Ivermectina",
		Date: date(2026, time.March, 15), Status: "Aplicado",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.AppliedDate == nil || !m.AppliedDate.Equal(now) {
		t.Fatalf("applied_date=%v", m.AppliedDate)
	}

	if _, err := svc.CreateMedication(ctx, MedicationInput{MedicationName: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without animal, got %v", err)
	}
}

func TestListByAnimalFilters(t *testing.T) {
	ctx := context.Background()
	svc, vaccs, meds := newTestService(date(2026, time.March, 10))

	vaccs.items = []Vaccination{
		{ID: "1", AnimalID: "a1"},
		{ID: "2", AnimalID: "a2"},
	}
	meds.items = []Medication{
		{ID: "1", AnimalID: "a1"},
		{ID: "2", AnimalID: "a1"},
	}

	vs, err := svc.ListVaccinationsByAnimal(ctx, "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vs) != 1 {
		t.Fatalf("expected 1 vaccination, got %d", len(vs))
	}

	ms, err := svc.ListMedicationsByAnimal(ctx, "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("expected 2 medications, got %d", len(ms))
	}

	// animal vazio devolve tudo
	all, err := svc.ListVaccinationsByAnimal(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected all, got %d", len(all))
	}
}
