// Package cloudsync empurra as coleções locais para o espelho remoto.
// O fluxo é um caminho só (local -> nuvem), melhor esforço: erro em uma
// tabela não interrompe as demais e não há resolução de conflito.
package cloudsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"
)

const keyLastSync = "last_sync"

// ErrDisabled indica que não há destino remoto configurado.
var ErrDisabled = errors.New("cloud sync disabled")

// Row é um documento pronto para upsert remoto.
type Row struct {
	ID      string
	Payload []byte
}

// Pusher é a porta de escrita remota.
type Pusher interface {
	Upsert(ctx context.Context, table string, rows []Row) error
}

// step liga uma chave local à tabela remota de mesmo conteúdo.
type step struct {
	key   string
	table string
}

var steps = []step{
	{"animals", "animals"},
	{"animal_weights", "animal_weights"},
	{"vaccinations", "vaccinations"},
	{"medications", "medications"},
	{"notes", "notes"},
	{"breeding_records", "breeding_records"},
	{"financial_records", "financial_records"},
	{"financial_accounts", "financial_accounts"},
	{"cost_centers", "cost_centers"},
	{"budgets", "budgets"},
	{"reports", "reports"},
}

// Summary resume uma execução de sincronização.
type Summary struct {
	SyncedAt time.Time      `json:"synced_at"`
	Pushed   map[string]int `json:"pushed"`
	Errors   []string       `json:"errors,omitempty"`
}

type Service struct {
	store  storage.Store
	pusher Pusher
	log    logger.Logger
	now    func() time.Time
}

func NewService(store storage.Store, pusher Pusher, log logger.Logger) *Service {
	return &Service{store: store, pusher: pusher, log: log, now: time.Now}
}

// Push envia cada coleção e registra o horário ao final. Tabela que
// falha entra em Errors e o restante segue.
func (s *Service) Push(ctx context.Context) (Summary, error) {
	if s.pusher == nil {
		return Summary{}, ErrDisabled
	}
	sum := Summary{Pushed: map[string]int{}}

	for _, st := range steps {
		rows, err := s.loadRows(ctx, st.key)
		if err != nil {
			sum.Errors = append(sum.Errors, fmt.Sprintf("%s: %v", st.key, err))
			s.log.Error("falha lendo coleção para sync", map[string]any{"key": st.key, "error": err.Error()})
			continue
		}
		if len(rows) == 0 {
			sum.Pushed[st.table] = 0
			continue
		}

		if err := s.pusher.Upsert(ctx, st.table, rows); err != nil {
			sum.Errors = append(sum.Errors, fmt.Sprintf("%s: %v", st.table, err))
			s.log.Error("falha empurrando tabela", map[string]any{"table": st.table, "error": err.Error()})
			continue
		}
		sum.Pushed[st.table] = len(rows)
		s.log.Info("tabela sincronizada", map[string]any{"table": st.table, "rows": len(rows)})
	}

	sum.SyncedAt = s.now()
	if err := s.recordLastSync(ctx, sum.SyncedAt); err != nil {
		sum.Errors = append(sum.Errors, fmt.Sprintf("last_sync: %v", err))
	}
	return sum, nil
}

// loadRows relê a coleção crua e extrai o id de cada documento.
// Documento sem id é pulado: sem chave não há upsert.
func (s *Service) loadRows(ctx context.Context, key string) ([]Row, error) {
	raw, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}

	rows := make([]Row, 0, len(docs))
	for _, doc := range docs {
		id, _ := doc["id"].(string)
		if id == "" {
			continue
		}
		payload, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{ID: id, Payload: payload})
	}
	return rows, nil
}

type lastSyncDoc struct {
	SyncedAt time.Time `json:"synced_at"`
}

func (s *Service) recordLastSync(ctx context.Context, at time.Time) error {
	raw, err := json.Marshal(lastSyncDoc{SyncedAt: at})
	if err != nil {
		return err
	}
	return s.store.Save(ctx, keyLastSync, raw)
}

// LastSync devolve o horário da última sincronização, nil se nunca rodou.
func (s *Service) LastSync(ctx context.Context) (*time.Time, error) {
	raw, err := s.store.Load(ctx, keyLastSync)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var doc lastSyncDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	return &doc.SyncedAt, nil
}
