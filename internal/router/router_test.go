package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rebanho-backend/internal/adapters/store/memory"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := router.New(router.Options{
		Store: memory.New(),
		Log:   logger.New(logger.Options{Level: logger.Error}),
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_HerdLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Cadastra um animal
	animalID := createAnimal(t, ts.URL, map[string]any{
		"code":       "OV-001",
		"name":       "Mimosa",
		"species":    "Ovino",
		"gender":     "Fêmea",
		"birth_date": "2025-06-01",
		"weight":     30,
	})

	// 2) Lista inclui o recém-criado
	{
		st, body := doReq(t, ts.URL, "GET", "/animals", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing animals, got %d body=%s", st, string(body))
		}
		var list []map[string]any
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 {
			t.Fatalf("expected 1 animal, got %d", len(list))
		}
	}

	// 3) PATCH parcial mantém o restante
	{
		st, body := doReq(t, ts.URL, "PATCH", "/animals/"+animalID, map[string]any{
			"location": "Piquete 3",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch animal, got %d body=%s", st, string(body))
		}
		var a map[string]any
		_ = json.Unmarshal(body, &a)
		if a["location"] != "Piquete 3" || a["name"] != "Mimosa" {
			t.Fatalf("patch wrong: %v", a)
		}
	}

	// 4) Pesagem atualiza o peso corrente
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/weights", map[string]any{
			"date":   "2026-03-01",
			"weight": 36.5,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add weight, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/animals/"+animalID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
		}
		var a struct {
			Weight float64 `json:"weight"`
		}
		_ = json.Unmarshal(body, &a)
		if a.Weight != 36.5 {
			t.Fatalf("current weight=%v", a.Weight)
		}
	}

	// 5) Painel do rebanho
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/stats", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
		}
		var stats struct {
			TotalAnimals int `json:"totalAnimals"`
		}
		_ = json.Unmarshal(body, &stats)
		if stats.TotalAnimals != 1 {
			t.Fatalf("totalAnimals=%d", stats.TotalAnimals)
		}
	}

	// 6) Relatório de animais sobre o período
	{
		st, body := doReq(t, ts.URL, "POST", "/reports/generate/animals", map[string]any{
			"start": "2020-01-01",
			"end":   "2030-12-31",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 generate report, got %d body=%s", st, string(body))
		}
		var rep struct {
			Summary map[string]float64 `json:"summary"`
			Total   int                `json:"total"`
		}
		_ = json.Unmarshal(body, &rep)
		if rep.Total != 1 || rep.Summary["ovinos"] != 1 {
			t.Fatalf("report wrong: %+v", rep)
		}
	}
}

func TestHTTP_Finance_InstallmentsAndDashboard(t *testing.T) {
	ts := newTestServer(t)

	// Conta parcelada vira três lançamentos
	st, body := doReq(t, ts.URL, "POST", "/finance/accounts", map[string]any{
		"type":         "despesa",
		"category":     "Ração",
		"description":  "Ração concentrada",
		"amount":       300,
		"due_date":     "2030-01-10",
		"installments": 3,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create account, got %d body=%s", st, string(body))
	}
	var created []map[string]any
	_ = json.Unmarshal(body, &created)
	if len(created) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(created))
	}

	st, body = doReq(t, ts.URL, "GET", "/finance/dashboard", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
	}
	var dash struct {
		TotalPending float64 `json:"totalPending"`
	}
	_ = json.Unmarshal(body, &dash)
	if dash.TotalPending != 300 {
		t.Fatalf("totalPending=%v", dash.TotalPending)
	}

	// Baixa de pagamento
	accountID, _ := created[0]["id"].(string)
	st, body = doReq(t, ts.URL, "POST", "/finance/accounts/"+accountID+"/pay", map[string]any{
		"payment_date": "2030-01-09",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 pay account, got %d body=%s", st, string(body))
	}
	var paid struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &paid)
	if paid.Status != "Pago" {
		t.Fatalf("status=%s", paid.Status)
	}
}

func TestHTTP_Notes_MarkRead(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/notes", map[string]any{
		"title": "Verificar cerca do piquete 2",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create note, got %d body=%s", st, string(body))
	}
	var note struct {
		ID       string `json:"id"`
		Priority string `json:"priority"`
	}
	_ = json.Unmarshal(body, &note)
	if note.Priority != "Média" {
		t.Fatalf("default priority=%s", note.Priority)
	}

	st, body = doReq(t, ts.URL, "POST", "/notes/"+note.ID+"/read", map[string]any{"is_read": true})
	if st != http.StatusOK {
		t.Fatalf("expected 200 mark read, got %d body=%s", st, string(body))
	}
	var read struct {
		IsRead bool `json:"is_read"`
	}
	_ = json.Unmarshal(body, &read)
	if !read.IsRead {
		t.Fatal("expected is_read=true")
	}
}

func TestHTTP_ErrorMapping(t *testing.T) {
	ts := newTestServer(t)

	// 404 para id inexistente
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals/nao-existe", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
	}

	// 400 para espécie inválida
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", map[string]any{
			"code":       "X-1",
			"name":       "x",
			"species":    "Bovino",
			"gender":     "Macho",
			"birth_date": "2025-01-01",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid species, got %d", st)
		}
	}

	// sync sem backend remoto configurado
	{
		st, _ := doReq(t, ts.URL, "POST", "/sync", nil)
		if st != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 without sync backend, got %d", st)
		}
	}
}

func createAnimal(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
