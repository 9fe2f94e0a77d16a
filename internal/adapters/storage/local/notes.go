package local

import (
	"context"

	"rebanho-backend/internal/domain/notes"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"
)

const keyNotes = "notes"

// NoteRepository lista por created_at desc.
type NoteRepository struct {
	c collection[notes.Note]
}

func NewNoteRepository(st storage.Store, log logger.Logger) *NoteRepository {
	return &NoteRepository{c: collection[notes.Note]{
		col:      storage.NewCollection[notes.Note](st, keyNotes, log),
		id:       func(n notes.Note) string { return n.ID },
		notFound: notes.ErrNotFound,
		less:     func(a, b notes.Note) bool { return a.CreatedAt.After(b.CreatedAt) },
	}}
}

func (r *NoteRepository) List(ctx context.Context) ([]notes.Note, error) {
	return r.c.list(ctx)
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (notes.Note, error) {
	return r.c.getByID(ctx, id)
}

func (r *NoteRepository) Create(ctx context.Context, n notes.Note) error {
	return r.c.create(ctx, n)
}

func (r *NoteRepository) Update(ctx context.Context, n notes.Note) error {
	return r.c.update(ctx, n)
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
