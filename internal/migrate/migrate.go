// Package migrate evolui os dados persistidos na subida do processo.
// A versão corrente fica sob a chave schema_version; cada migração roda
// no máximo uma vez e é segura de repetir.
package migrate

import (
	"context"
	"encoding/json"
	"fmt"

	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"
)

const keySchemaVersion = "schema_version"

// CurrentVersion é a versão que o código espera encontrar.
const CurrentVersion = 3

type migration struct {
	version int
	name    string
	run     func(ctx context.Context, st storage.Store) error
}

var migrations = []migration{
	{2, "medicações sem status viram Agendado", backfillMedicationStatus},
	{3, "contas sem status viram Pendente", backfillAccountStatus},
}

type versionDoc struct {
	Version int `json:"version"`
}

// Run aplica as migrações pendentes em ordem e grava a versão final.
func Run(ctx context.Context, st storage.Store, log logger.Logger) error {
	current, err := readVersion(ctx, st)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		log.Info("aplicando migração", map[string]any{"version": m.version, "name": m.name})
		if err := m.run(ctx, st); err != nil {
			return fmt.Errorf("migrate v%d: %w", m.version, err)
		}
		current = m.version
		if err := writeVersion(ctx, st, current); err != nil {
			return fmt.Errorf("migrate v%d: %w", m.version, err)
		}
	}
	return nil
}

func readVersion(ctx context.Context, st storage.Store) (int, error) {
	raw, err := st.Load(ctx, keySchemaVersion)
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 1, nil // base sem marcador é tratada como v1
	}

	var doc versionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	if doc.Version < 1 {
		return 1, nil
	}
	return doc.Version, nil
}

func writeVersion(ctx context.Context, st storage.Store, v int) error {
	raw, err := json.Marshal(versionDoc{Version: v})
	if err != nil {
		return err
	}
	return st.Save(ctx, keySchemaVersion, raw)
}

// backfillStatus preenche o campo status vazio dos documentos da chave.
func backfillStatus(ctx context.Context, st storage.Store, key, status string) error {
	raw, err := st.Load(ctx, key)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		// coleção corrompida fica para o soft-fail da leitura normal
		return nil
	}

	changed := false
	for _, doc := range docs {
		if s, _ := doc["status"].(string); s == "" {
			doc["status"] = status
			changed = true
		}
	}
	if !changed {
		return nil
	}

	out, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return st.Save(ctx, key, out)
}

func backfillMedicationStatus(ctx context.Context, st storage.Store) error {
	return backfillStatus(ctx, st, "medications", "Agendado")
}

func backfillAccountStatus(ctx context.Context, st storage.Store) error {
	return backfillStatus(ctx, st, "financial_accounts", "Pendente")
}
