package breeding

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateInput struct {
	FemaleAnimalID string
	MaleAnimalID   string
	BreedingDate   time.Time
	ExpectedBirth  *time.Time
	Stage          string
	Status         string
	Notes          string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if strings.TrimSpace(in.FemaleAnimalID) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.BreedingDate.IsZero() {
		return Record{}, ErrInvalidInput
	}

	status := Status(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusCobertura
	}

	expected := in.ExpectedBirth
	if expected == nil {
		e := in.BreedingDate.AddDate(0, 0, GestationDays)
		expected = &e
	}

	now := s.now()
	rec := Record{
		ID:             uuid.NewString(),
		FemaleAnimalID: strings.TrimSpace(in.FemaleAnimalID),
		MaleAnimalID:   strings.TrimSpace(in.MaleAnimalID),
		BreedingDate:   in.BreedingDate,
		ExpectedBirth:  expected,
		Stage:          strings.TrimSpace(in.Stage),
		Status:         status,
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

type UpdateInput struct {
	MaleAnimalID     *string
	BreedingDate     *time.Time
	ExpectedBirth    *time.Time
	Stage            *string
	Status           *string
	MatingStartDate  *time.Time
	MatingEndDate    *time.Time
	SeparationDate   *time.Time
	UltrasoundDate   *time.Time
	UltrasoundResult *string
	BirthDate        *time.Time
	Notes            *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}

	if in.MaleAnimalID != nil {
		rec.MaleAnimalID = strings.TrimSpace(*in.MaleAnimalID)
	}
	if in.BreedingDate != nil {
		rec.BreedingDate = *in.BreedingDate
		// reprojeta o parto quando a cobertura muda e ninguém fixou a data
		if in.ExpectedBirth == nil {
			e := rec.BreedingDate.AddDate(0, 0, GestationDays)
			rec.ExpectedBirth = &e
		}
	}
	if in.ExpectedBirth != nil {
		rec.ExpectedBirth = in.ExpectedBirth
	}
	if in.Stage != nil {
		rec.Stage = strings.TrimSpace(*in.Stage)
	}
	if in.Status != nil {
		rec.Status = Status(strings.TrimSpace(*in.Status))
	}
	if in.MatingStartDate != nil {
		rec.MatingStartDate = in.MatingStartDate
	}
	if in.MatingEndDate != nil {
		rec.MatingEndDate = in.MatingEndDate
	}
	if in.SeparationDate != nil {
		rec.SeparationDate = in.SeparationDate
	}
	if in.UltrasoundDate != nil {
		rec.UltrasoundDate = in.UltrasoundDate
	}
	if in.UltrasoundResult != nil {
		rec.UltrasoundResult = strings.TrimSpace(*in.UltrasoundResult)
	}
	if in.BirthDate != nil {
		rec.BirthDate = in.BirthDate
	}
	if in.Notes != nil {
		rec.Notes = strings.TrimSpace(*in.Notes)
	}

	rec.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
