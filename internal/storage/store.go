package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rebanho-backend/internal/platform/logger"
)

var (
	// ErrCorrupt indica que o payload persistido não é JSON válido.
	ErrCorrupt = errors.New("storage: corrupt payload")
)

// Store é a porta de persistência: cada coleção é um array JSON
// guardado sob uma chave. Save sobrescreve a coleção inteira.
// As implementações devem serializar Load/Save com mutex próprio
// (o padrão load-mutate-save não é atômico entre writers concorrentes).
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error) // (nil, nil) se a chave não existe
	Save(ctx context.Context, key string, payload []byte) error
}

// Collection tipa o acesso a uma coleção persistida.
// JSON corrompido falha "soft": loga o problema (distinto de coleção
// legitimamente vazia) e devolve slice vazio.
type Collection[T any] struct {
	store Store
	key   string
	log   logger.Logger
}

func NewCollection[T any](store Store, key string, log logger.Logger) Collection[T] {
	return Collection[T]{store: store, key: key, log: log}
}

func (c Collection[T]) Key() string { return c.key }

func (c Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Load(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		if c.log != nil {
			c.log.Error("coleção corrompida, tratando como vazia", map[string]any{
				"key":   c.key,
				"error": fmt.Sprintf("%v: %v", ErrCorrupt, err),
			})
		}
		return []T{}, nil
	}
	return items, nil
}

func (c Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key, err)
	}
	if err := c.store.Save(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
