// Package local implementa os repositórios de domínio sobre a porta
// Store: cada coleção é um array JSON relido a cada chamada, no padrão
// load-mutate-save.
package local

import (
	"context"
	"sort"

	"rebanho-backend/internal/storage"
)

// collection é o núcleo genérico dos repositórios: identidade por id,
// sentinela de não-encontrado do domínio e ordenação opcional de List.
type collection[T any] struct {
	col      storage.Collection[T]
	id       func(T) string
	notFound error
	less     func(a, b T) bool // nil = ordem de inserção
}

func (c collection[T]) list(ctx context.Context) ([]T, error) {
	items, err := c.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	if c.less != nil {
		sort.SliceStable(items, func(i, j int) bool { return c.less(items[i], items[j]) })
	}
	return items, nil
}

func (c collection[T]) getByID(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.col.Load(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if c.id(it) == id {
			return it, nil
		}
	}
	return zero, c.notFound
}

func (c collection[T]) create(ctx context.Context, item T) error {
	items, err := c.col.Load(ctx)
	if err != nil {
		return err
	}
	return c.col.Save(ctx, append(items, item))
}

func (c collection[T]) update(ctx context.Context, item T) error {
	items, err := c.col.Load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if c.id(items[i]) == c.id(item) {
			items[i] = item
			return c.col.Save(ctx, items)
		}
	}
	return c.notFound
}

// delete é idempotente: id inexistente não é erro.
func (c collection[T]) delete(ctx context.Context, id string) error {
	items, err := c.col.Load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	removed := false
	for _, it := range items {
		if c.id(it) == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return nil
	}
	return c.col.Save(ctx, kept)
}

func (c collection[T]) saveAll(ctx context.Context, items []T) error {
	return c.col.Save(ctx, items)
}
