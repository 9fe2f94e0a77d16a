package notes

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
	AnimalID string
	Title    string
	Content  string
	Category string
	Priority string
	Date     time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Note, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Note{}, ErrInvalidInput
	}

	priority := Priority(strings.TrimSpace(in.Priority))
	if priority == "" {
		priority = PriorityMedia
	}
	if priority != PriorityBaixa && priority != PriorityMedia && priority != PriorityAlta {
		return Note{}, ErrInvalidInput
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	now := s.now()
	n := Note{
		ID:        uuid.NewString(),
		AnimalID:  strings.TrimSpace(in.AnimalID),
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Category:  strings.TrimSpace(in.Category),
		Priority:  priority,
		Date:      date,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

type UpdateInput struct {
	Title    *string
	Content  *string
	Category *string
	Priority *string
	Date     *time.Time
	IsRead   *bool
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Note, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Note{}, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return Note{}, ErrInvalidInput
		}
		n.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		n.Content = strings.TrimSpace(*in.Content)
	}
	if in.Category != nil {
		n.Category = strings.TrimSpace(*in.Category)
	}
	if in.Priority != nil {
		p := Priority(strings.TrimSpace(*in.Priority))
		if p != PriorityBaixa && p != PriorityMedia && p != PriorityAlta {
			return Note{}, ErrInvalidInput
		}
		n.Priority = p
	}
	if in.Date != nil {
		n.Date = *in.Date
	}
	if in.IsRead != nil {
		n.IsRead = *in.IsRead
	}

	n.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]Note, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(animalID) == "" {
		return all, nil
	}
	out := make([]Note, 0)
	for _, n := range all {
		if n.AnimalID == animalID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Note, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) MarkRead(ctx context.Context, id string, read bool) (Note, error) {
	return s.Update(ctx, id, UpdateInput{IsRead: &read})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
