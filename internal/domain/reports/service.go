package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"rebanho-backend/internal/domain/animals"
	"rebanho-backend/internal/domain/breeding"
	"rebanho-backend/internal/domain/finance"
	"rebanho-backend/internal/domain/health"
	"rebanho-backend/internal/domain/notes"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// Fontes de leitura dos outros domínios. Os repositórios locais
// satisfazem todas direto.

type AnimalSource interface {
	List(ctx context.Context) ([]animals.Animal, error)
}

type WeightSource interface {
	List(ctx context.Context) ([]animals.Weight, error)
}

type VaccinationSource interface {
	List(ctx context.Context) ([]health.Vaccination, error)
}

type MedicationSource interface {
	List(ctx context.Context) ([]health.Medication, error)
}

type BreedingSource interface {
	List(ctx context.Context) ([]breeding.Record, error)
}

type FinancialSource interface {
	List(ctx context.Context) ([]finance.Record, error)
}

type NoteSource interface {
	List(ctx context.Context) ([]notes.Note, error)
}

// Sources agrupa tudo que o gerador de relatórios lê.
type Sources struct {
	Animals      AnimalSource
	Weights      WeightSource
	Vaccinations VaccinationSource
	Medications  MedicationSource
	Breeding     BreedingSource
	Financial    FinancialSource
	Notes        NoteSource
}

type Service struct {
	src  Sources
	repo Repository
	now  func() time.Time
}

func NewService(src Sources, repo Repository) *Service {
	return &Service{src: src, repo: repo, now: time.Now}
}

// Generate roda a consulta do tipo pedido com os filtros da união.
func (s *Service) Generate(ctx context.Context, t Type, p Parameters) (Result, error) {
	switch t {
	case TypeAnimals:
		f := AnimalsFilter{}
		if p.Animals != nil {
			f = *p.Animals
		}
		return s.AnimalsReport(ctx, p.Period, f)
	case TypeWeights:
		return s.WeightsReport(ctx, p.Period)
	case TypeVaccinations:
		f := VaccinationsFilter{}
		if p.Vaccinations != nil {
			f = *p.Vaccinations
		}
		return s.VaccinationsReport(ctx, p.Period, f)
	case TypeMedications:
		f := MedicationsFilter{}
		if p.Medications != nil {
			f = *p.Medications
		}
		return s.MedicationsReport(ctx, p.Period, f)
	case TypeBreeding:
		f := BreedingFilter{}
		if p.Breeding != nil {
			f = *p.Breeding
		}
		return s.BreedingReport(ctx, p.Period, f)
	case TypeFinancial:
		f := FinancialFilter{}
		if p.Financial != nil {
			f = *p.Financial
		}
		return s.FinancialReport(ctx, p.Period, f)
	case TypeNotes:
		f := NotesFilter{}
		if p.Notes != nil {
			f = *p.Notes
		}
		return s.NotesReport(ctx, p.Period, f)
	default:
		return Result{}, ErrInvalidInput
	}
}

// Save registra a auditoria de um relatório gerado. generatedBy vazio
// vira "Sistema".
func (s *Service) Save(ctx context.Context, t Type, title, generatedBy string, p Parameters) (Report, error) {
	if !ValidType(t) || strings.TrimSpace(title) == "" {
		return Report{}, ErrInvalidInput
	}

	by := strings.TrimSpace(generatedBy)
	if by == "" {
		by = "Sistema"
	}

	now := s.now()
	rep := Report{
		ID:          uuid.NewString(),
		ReportType:  t,
		Title:       strings.TrimSpace(title),
		Parameters:  p,
		GeneratedAt: now,
		GeneratedBy: by,
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}

func (s *Service) ListSaved(ctx context.Context) ([]Report, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetSaved(ctx context.Context, id string) (Report, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteSaved(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
