package cloudsync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rebanho-backend/internal/adapters/store/memory"
	"rebanho-backend/internal/platform/logger"
)

type fakePusher struct {
	upserts map[string][]Row
	fail    map[string]bool
}

func newFakePusher() *fakePusher {
	return &fakePusher{upserts: map[string][]Row{}, fail: map[string]bool{}}
}

func (p *fakePusher) Upsert(ctx context.Context, table string, rows []Row) error {
	if p.fail[table] {
		return errors.New("boom")
	}
	p.upserts[table] = rows
	return nil
}

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func seed(t *testing.T, st *memory.Store, key string, docs []map[string]any) {
	t.Helper()
	raw, err := json.Marshal(docs)
	if err != nil {
		t.Fatalf("marshal %s: %v", key, err)
	}
	if err := st.Save(context.Background(), key, raw); err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
}

func TestPush_SendsCollectionsAndRecordsLastSync(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	pusher := newFakePusher()
	svc := NewService(st, pusher, testLogger())
	svc.now = func() time.Time { return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC) }

	seed(t, st, "animals", []map[string]any{
		{"id": "a1", "code": "OV-001"},
		{"id": "a2", "code": "OV-002"},
	})
	seed(t, st, "notes", []map[string]any{{"id": "n1", "title": "x"}})

	sum, err := svc.Push(ctx)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(sum.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", sum.Errors)
	}
	if sum.Pushed["animals"] != 2 || sum.Pushed["notes"] != 1 {
		t.Fatalf("pushed counts: %v", sum.Pushed)
	}
	if len(pusher.upserts["animals"]) != 2 {
		t.Fatalf("animals rows: %d", len(pusher.upserts["animals"]))
	}
	if pusher.upserts["animals"][0].ID != "a1" {
		t.Fatalf("row id=%s", pusher.upserts["animals"][0].ID)
	}

	last, err := svc.LastSync(ctx)
	if err != nil {
		t.Fatalf("last sync: %v", err)
	}
	if last == nil || !last.Equal(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("last sync=%v", last)
	}
}

func TestPush_TableFailureDoesNotStopOthers(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	pusher := newFakePusher()
	pusher.fail["animals"] = true
	svc := NewService(st, pusher, testLogger())

	seed(t, st, "animals", []map[string]any{{"id": "a1"}})
	seed(t, st, "notes", []map[string]any{{"id": "n1"}})

	sum, err := svc.Push(ctx)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(sum.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", sum.Errors)
	}
	if sum.Pushed["notes"] != 1 {
		t.Fatalf("notes should still be pushed: %v", sum.Pushed)
	}
}

func TestPush_SkipsDocsWithoutID(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	pusher := newFakePusher()
	svc := NewService(st, pusher, testLogger())

	seed(t, st, "animals", []map[string]any{
		{"id": "a1"},
		{"code": "sem-id"},
	})

	sum, err := svc.Push(ctx)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if sum.Pushed["animals"] != 1 {
		t.Fatalf("expected 1 row, got %v", sum.Pushed["animals"])
	}
}

func TestPush_DisabledWithoutPusher(t *testing.T) {
	svc := NewService(memory.New(), nil, testLogger())
	if _, err := svc.Push(context.Background()); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestLastSync_NilBeforeFirstRun(t *testing.T) {
	svc := NewService(memory.New(), newFakePusher(), testLogger())
	last, err := svc.LastSync(context.Background())
	if err != nil {
		t.Fatalf("last sync: %v", err)
	}
	if last != nil {
		t.Fatalf("expected nil, got %v", last)
	}
}
