package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// VaccinationSource expõe o que o painel precisa saber das vacinações.
type VaccinationSource interface {
	ScheduledInMonth(ctx context.Context, ref time.Time) (int, error)
}

// RevenueSource expõe a receita acumulada do caixa.
type RevenueSource interface {
	TotalRevenue(ctx context.Context) (float64, error)
}

type Service struct {
	repo    Repository
	weights WeightRepository
	vaccs   VaccinationSource
	revenue RevenueSource
	now     func() time.Time
}

func NewService(repo Repository, weights WeightRepository, vaccs VaccinationSource, revenue RevenueSource) *Service {
	return &Service{
		repo:    repo,
		weights: weights,
		vaccs:   vaccs,
		revenue: revenue,
		now:     time.Now,
	}
}

type CreateInput struct {
	Code             string
	Name             string
	Species          string
	Breed            string
	Gender           string
	BirthDate        time.Time
	Weight           float64
	Status           string
	Category         string
	Location         string
	LastVaccination  *time.Time
	Pregnant         bool
	ExpectedDelivery *time.Time
	HealthIssue      string
	Weight30         *float64
	Weight60         *float64
	Weight90         *float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Code) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, ErrInvalidInput
	}
	species := Species(strings.TrimSpace(in.Species))
	if species != SpeciesOvino && species != SpeciesCaprino {
		return Animal{}, ErrInvalidInput
	}
	gender := Gender(strings.TrimSpace(in.Gender))
	if gender != GenderMacho && gender != GenderFemea {
		return Animal{}, ErrInvalidInput
	}

	now := s.now()
	a := Animal{
		ID:               uuid.NewString(),
		Code:             strings.TrimSpace(in.Code),
		Name:             strings.TrimSpace(in.Name),
		Species:          species,
		Breed:            strings.TrimSpace(in.Breed),
		Gender:           gender,
		BirthDate:        in.BirthDate,
		Weight:           in.Weight,
		Status:           strings.TrimSpace(in.Status),
		Category:         strings.TrimSpace(in.Category),
		Location:         strings.TrimSpace(in.Location),
		LastVaccination:  in.LastVaccination,
		Pregnant:         in.Pregnant,
		ExpectedDelivery: in.ExpectedDelivery,
		HealthIssue:      strings.TrimSpace(in.HealthIssue),
		Weight30:         in.Weight30,
		Weight60:         in.Weight60,
		Weight90:         in.Weight90,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if a.Status == "" {
		a.Status = StatusSaudavel
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// UpdateInput: ponteiro nil = não tocar no campo.
type UpdateInput struct {
	Code             *string
	Name             *string
	Species          *string
	Breed            *string
	Gender           *string
	BirthDate        *time.Time
	Weight           *float64
	Status           *string
	Category         *string
	Location         *string
	LastVaccination  *time.Time
	Pregnant         *bool
	ExpectedDelivery *time.Time
	HealthIssue      *string
	Weight30         *float64
	Weight60         *float64
	Weight90         *float64
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Code != nil {
		if strings.TrimSpace(*in.Code) == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Code = strings.TrimSpace(*in.Code)
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		species := Species(strings.TrimSpace(*in.Species))
		if species != SpeciesOvino && species != SpeciesCaprino {
			return Animal{}, ErrInvalidInput
		}
		a.Species = species
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Gender != nil {
		gender := Gender(strings.TrimSpace(*in.Gender))
		if gender != GenderMacho && gender != GenderFemea {
			return Animal{}, ErrInvalidInput
		}
		a.Gender = gender
	}
	if in.BirthDate != nil {
		a.BirthDate = *in.BirthDate
	}
	if in.Weight != nil {
		a.Weight = *in.Weight
	}
	if in.Status != nil {
		a.Status = strings.TrimSpace(*in.Status)
	}
	if in.Category != nil {
		a.Category = strings.TrimSpace(*in.Category)
	}
	if in.Location != nil {
		a.Location = strings.TrimSpace(*in.Location)
	}
	if in.LastVaccination != nil {
		a.LastVaccination = in.LastVaccination
	}
	if in.Pregnant != nil {
		a.Pregnant = *in.Pregnant
		if !a.Pregnant {
			a.ExpectedDelivery = nil
		}
	}
	if in.ExpectedDelivery != nil {
		a.ExpectedDelivery = in.ExpectedDelivery
	}
	if in.HealthIssue != nil {
		a.HealthIssue = strings.TrimSpace(*in.HealthIssue)
	}
	if in.Weight30 != nil {
		a.Weight30 = in.Weight30
	}
	if in.Weight60 != nil {
		a.Weight60 = in.Weight60
	}
	if in.Weight90 != nil {
		a.Weight90 = in.Weight90
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type WeightInput struct {
	Date   time.Time
	Weight float64
}

// AddWeight registra uma pesagem e atualiza o peso corrente do animal.
func (s *Service) AddWeight(ctx context.Context, animalID string, in WeightInput) (Weight, error) {
	if in.Weight <= 0 {
		return Weight{}, ErrInvalidInput
	}
	a, err := s.repo.GetByID(ctx, animalID)
	if err != nil {
		return Weight{}, err
	}

	now := s.now()
	w := Weight{
		ID:        uuid.NewString(),
		AnimalID:  a.ID,
		Date:      in.Date,
		Weight:    in.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.weights.Create(ctx, w); err != nil {
		return Weight{}, err
	}

	a.Weight = in.Weight
	a.UpdatedAt = now
	if err := s.repo.Update(ctx, a); err != nil {
		return Weight{}, err
	}
	return w, nil
}

func (s *Service) ListWeights(ctx context.Context, animalID string) ([]Weight, error) {
	return s.weights.ListByAnimal(ctx, animalID)
}

func (s *Service) DeleteWeight(ctx context.Context, id string) error {
	return s.weights.Delete(ctx, id)
}

// Stats calcula o resumo do rebanho para o painel.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := s.now()
	st := Stats{TotalAnimals: len(list)}

	var totalWeight float64
	for _, a := range list {
		totalWeight += a.Weight
		if a.Status == StatusSaudavel {
			st.Healthy++
		}
		if a.Status == StatusEmTratamento {
			st.UnderTreatment++
		}
		if a.Pregnant {
			st.Pregnant++
		}
		if a.BirthDate.Year() == now.Year() && a.BirthDate.Month() == now.Month() {
			st.BirthsThisMonth++
		}
	}
	if len(list) > 0 {
		st.AvgWeight = totalWeight / float64(len(list))
	}

	if s.vaccs != nil {
		n, err := s.vaccs.ScheduledInMonth(ctx, now)
		if err != nil {
			return Stats{}, err
		}
		st.VaccinesThisMonth = n
	}
	if s.revenue != nil {
		r, err := s.revenue.TotalRevenue(ctx)
		if err != nil {
			return Stats{}, err
		}
		st.Revenue = r
	}
	return st, nil
}
