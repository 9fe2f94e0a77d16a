package migrate

import (
	"context"
	"encoding/json"
	"testing"

	"rebanho-backend/internal/adapters/store/memory"
	"rebanho-backend/internal/platform/logger"
)

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func TestRun_BackfillsStatuses(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	meds := []map[string]any{
		{"id": "m1", "medication_name": "Ivermectina"},
		{"id": "m2", "medication_name": "Outro", "status": "Aplicado"},
	}
	raw, _ := json.Marshal(meds)
	_ = st.Save(ctx, "medications", raw)

	accounts := []map[string]any{
		{"id": "a1", "category": "Ração"},
	}
	raw, _ = json.Marshal(accounts)
	_ = st.Save(ctx, "financial_accounts", raw)

	if err := Run(ctx, st, testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	raw, _ = st.Load(ctx, "medications")
	var gotMeds []map[string]any
	_ = json.Unmarshal(raw, &gotMeds)
	if gotMeds[0]["status"] != "Agendado" {
		t.Fatalf("m1 status=%v", gotMeds[0]["status"])
	}
	if gotMeds[1]["status"] != "Aplicado" {
		t.Fatalf("m2 status must be untouched, got %v", gotMeds[1]["status"])
	}

	raw, _ = st.Load(ctx, "financial_accounts")
	var gotAccounts []map[string]any
	_ = json.Unmarshal(raw, &gotAccounts)
	if gotAccounts[0]["status"] != "Pendente" {
		t.Fatalf("a1 status=%v", gotAccounts[0]["status"])
	}

	raw, _ = st.Load(ctx, "schema_version")
	var doc struct {
		Version int `json:"version"`
	}
	_ = json.Unmarshal(raw, &doc)
	if doc.Version != CurrentVersion {
		t.Fatalf("version=%d", doc.Version)
	}
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	meds := []map[string]any{{"id": "m1"}}
	raw, _ := json.Marshal(meds)
	_ = st.Save(ctx, "medications", raw)

	if err := Run(ctx, st, testLogger()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// sabota o dado para provar que a segunda rodada não reexecuta
	meds = []map[string]any{{"id": "m1", "status": ""}}
	raw, _ = json.Marshal(meds)
	_ = st.Save(ctx, "medications", raw)

	if err := Run(ctx, st, testLogger()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	raw, _ = st.Load(ctx, "medications")
	var got []map[string]any
	_ = json.Unmarshal(raw, &got)
	if got[0]["status"] != "" {
		t.Fatalf("migration reran: status=%v", got[0]["status"])
	}
}

func TestRun_EmptyBaseJustStampsVersion(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	if err := Run(ctx, st, testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	raw, _ := st.Load(ctx, "schema_version")
	var doc struct {
		Version int `json:"version"`
	}
	_ = json.Unmarshal(raw, &doc)
	if doc.Version != CurrentVersion {
		t.Fatalf("version=%d", doc.Version)
	}
}
