package finance

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

// -------------------------
// Repos de teste (in-memory)
// -------------------------

type testAccountRepo struct {
	items []Account
}

func (r *testAccountRepo) List(ctx context.Context) ([]Account, error) {
	out := make([]Account, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testAccountRepo) GetByID(ctx context.Context, id string) (Account, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Account{}, ErrNotFound
}

func (r *testAccountRepo) Create(ctx context.Context, a Account) error {
	r.items = append(r.items, a)
	return nil
}

func (r *testAccountRepo) Update(ctx context.Context, a Account) error {
	for i := range r.items {
		if r.items[i].ID == a.ID {
			r.items[i] = a
			return nil
		}
	}
	return ErrNotFound
}

func (r *testAccountRepo) Delete(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, a := range r.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	r.items = kept
	return nil
}

func (r *testAccountRepo) SaveAll(ctx context.Context, accounts []Account) error {
	r.items = make([]Account, len(accounts))
	copy(r.items, accounts)
	return nil
}

type testRecordRepo struct {
	items []Record
}

func (r *testRecordRepo) List(ctx context.Context) ([]Record, error) {
	out := make([]Record, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRecordRepo) GetByID(ctx context.Context, id string) (Record, error) {
	for _, rec := range r.items {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

func (r *testRecordRepo) Create(ctx context.Context, rec Record) error {
	r.items = append(r.items, rec)
	return nil
}

func (r *testRecordRepo) Update(ctx context.Context, rec Record) error {
	for i := range r.items {
		if r.items[i].ID == rec.ID {
			r.items[i] = rec
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRecordRepo) Delete(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, rec := range r.items {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	r.items = kept
	return nil
}

type testCostCenterRepo struct {
	items []CostCenter
}

func (r *testCostCenterRepo) List(ctx context.Context) ([]CostCenter, error) {
	out := make([]CostCenter, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testCostCenterRepo) GetByID(ctx context.Context, id string) (CostCenter, error) {
	for _, cc := range r.items {
		if cc.ID == id {
			return cc, nil
		}
	}
	return CostCenter{}, ErrNotFound
}

func (r *testCostCenterRepo) Create(ctx context.Context, cc CostCenter) error {
	r.items = append(r.items, cc)
	return nil
}

func (r *testCostCenterRepo) Update(ctx context.Context, cc CostCenter) error {
	for i := range r.items {
		if r.items[i].ID == cc.ID {
			r.items[i] = cc
			return nil
		}
	}
	return ErrNotFound
}

type testBudgetRepo struct {
	items []Budget
}

func (r *testBudgetRepo) List(ctx context.Context) ([]Budget, error) {
	out := make([]Budget, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testBudgetRepo) GetByID(ctx context.Context, id string) (Budget, error) {
	for _, b := range r.items {
		if b.ID == id {
			return b, nil
		}
	}
	return Budget{}, ErrNotFound
}

func (r *testBudgetRepo) Create(ctx context.Context, b Budget) error {
	r.items = append(r.items, b)
	return nil
}

func (r *testBudgetRepo) Update(ctx context.Context, b Budget) error {
	for i := range r.items {
		if r.items[i].ID == b.ID {
			r.items[i] = b
			return nil
		}
	}
	return ErrNotFound
}

func (r *testBudgetRepo) Delete(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, b := range r.items {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	r.items = kept
	return nil
}

func newTestService(now time.Time) (*Service, *testRecordRepo, *testAccountRepo) {
	records := &testRecordRepo{}
	accounts := &testAccountRepo{}
	svc := NewService(records, accounts, &testCostCenterRepo{}, &testBudgetRepo{})
	svc.now = func() time.Time { return now }
	return svc, records, accounts
}

// -------------------------
// Parcelamento
// -------------------------

func TestCreateAccount_Installments(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.January, 15)
	svc, _, accounts := newTestService(now)

	created, err := svc.CreateAccount(ctx, AccountInput{
		Type:         "despesa",
		Category:     "Ração",
		Description:  "Ração premium",
		Amount:       100,
		DueDate:      date(2026, time.February, 10),
		Installments: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(created))
	}

	var sum float64
	for i, a := range created {
		sum += a.Amount
		if a.InstallmentNumber != i+1 {
			t.Fatalf("installment %d: number=%d", i, a.InstallmentNumber)
		}
		if a.ParentID == "" || a.ParentID != created[0].ParentID {
			t.Fatalf("installment %d: parent_id mismatch", i)
		}
		expectedDue := date(2026, time.February, 10).AddDate(0, i, 0)
		if !a.DueDate.Equal(expectedDue) {
			t.Fatalf("installment %d: due=%v expected=%v", i, a.DueDate, expectedDue)
		}
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("installments sum to %v", sum)
	}
	if created[0].Description != "Ração premium (1/3)" {
		t.Fatalf("unexpected description %q", created[0].Description)
	}
	if len(accounts.items) != 3 {
		t.Fatalf("expected 3 persisted accounts, got %d", len(accounts.items))
	}
}

func TestCreateAccount_SingleDefaultsPendente(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(date(2026, time.January, 15))

	created, err := svc.CreateAccount(ctx, AccountInput{
		Type:     "receita",
		Category: "Venda",
		Amount:   500,
		DueDate:  date(2026, time.February, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 account, got %d", len(created))
	}
	if created[0].Status != StatusPendente {
		t.Fatalf("expected Pendente, got %s", created[0].Status)
	}
	if created[0].InstallmentNumber != 0 || created[0].ParentID != "" {
		t.Fatal("single account must not carry installment chain fields")
	}
}

func TestCreateAccount_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(date(2026, time.January, 15))

	cases := []AccountInput{
		{Type: "outro", Category: "x", Amount: 10, DueDate: date(2026, 2, 1)},
		{Type: "despesa", Category: "", Amount: 10, DueDate: date(2026, 2, 1)},
		{Type: "despesa", Category: "x", Amount: 0, DueDate: date(2026, 2, 1)},
		{Type: "despesa", Category: "x", Amount: 10},
		{Type: "despesa", Category: "x", Amount: 10, DueDate: date(2026, 2, 1), IsRecurring: true, RecurrenceFreq: "Quinzenal"},
	}
	for i, in := range cases {
		if _, err := svc.CreateAccount(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

// -------------------------
// Vencidos e consultas
// -------------------------

func TestGetByStatus_RefreshesOverdue(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, accounts := newTestService(now)

	accounts.items = []Account{
		{ID: "a", Type: TypeDespesa, Category: "x", Amount: 10, Status: StatusPendente, DueDate: date(2026, time.March, 1)},
		{ID: "b", Type: TypeDespesa, Category: "x", Amount: 20, Status: StatusPendente, DueDate: date(2026, time.March, 20)},
	}

	overdue, err := svc.GetByStatus(ctx, StatusVencido)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != "a" {
		t.Fatalf("expected only a overdue, got %+v", overdue)
	}

	// a projeção tem que ter sido persistida
	persisted, _ := accounts.GetByID(ctx, "a")
	if persisted.Status != StatusVencido {
		t.Fatalf("overdue not persisted, status=%s", persisted.Status)
	}
}

func TestGetUpcoming_WindowAndOrder(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, accounts := newTestService(now)

	accounts.items = []Account{
		{ID: "late", Status: StatusPendente, DueDate: date(2026, time.March, 1)},   // vira vencida, fora da janela
		{ID: "far", Status: StatusPendente, DueDate: date(2026, time.April, 20)},   // além da janela
		{ID: "b", Status: StatusPendente, DueDate: date(2026, time.March, 15)},
		{ID: "a", Status: StatusPendente, DueDate: date(2026, time.March, 11)},
		{ID: "paid", Status: StatusPago, DueDate: date(2026, time.March, 12)},
	}

	got, err := svc.GetUpcoming(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected due-date order a,b got %s,%s", got[0].ID, got[1].ID)
	}
}

// -------------------------
// Recorrência
// -------------------------

func TestGenerateRecurring_CreatesAndDeduplicates(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, accounts := newTestService(now)

	accounts.items = []Account{
		{
			ID: "rec", Type: TypeDespesa, Category: "Energia", Amount: 300,
			DueDate: date(2026, time.February, 10), Status: StatusPago,
			IsRecurring: true, RecurrenceFreq: FreqMensal,
		},
		{ID: "plain", Type: TypeDespesa, Category: "x", Amount: 5, Status: StatusPendente, DueDate: now},
	}

	created, err := svc.GenerateRecurring(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 child, got %d", len(created))
	}
	child := created[0]
	if child.ParentID != "rec" {
		t.Fatalf("expected parent rec, got %q", child.ParentID)
	}
	if !child.DueDate.Equal(date(2026, time.April, 10)) {
		t.Fatalf("expected due 2026-04-10, got %v", child.DueDate)
	}
	if child.Status != StatusPendente {
		t.Fatalf("child must be Pendente, got %s", child.Status)
	}
	if child.IsRecurring {
		t.Fatal("child must not be a recurring template itself")
	}

	// rodar de novo no mesmo dia não duplica
	again, err := svc.GenerateRecurring(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no duplicates, got %d", len(again))
	}
}

func TestGenerateRecurring_RespectsEndDate(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, accounts := newTestService(now)

	end := date(2026, time.February, 1)
	accounts.items = []Account{
		{
			ID: "rec", Type: TypeDespesa, Category: "Energia", Amount: 300,
			DueDate: date(2026, time.January, 10), Status: StatusPago,
			IsRecurring: true, RecurrenceFreq: FreqMensal, RecurrenceEndDate: &end,
		},
	}

	created, err := svc.GenerateRecurring(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("expired recurrence must not generate, got %d", len(created))
	}
}

// -------------------------
// Painel e fluxo de caixa
// -------------------------

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, accounts := newTestService(now)

	pay := date(2026, time.March, 5)
	oldPay := date(2026, time.February, 5)
	accounts.items = []Account{
		{ID: "p1", Type: TypeDespesa, Amount: 100, Status: StatusPendente, DueDate: date(2026, time.March, 12)}, // pendente e próximo
		{ID: "p2", Type: TypeDespesa, Amount: 50, Status: StatusPendente, DueDate: date(2026, time.April, 2)},   // pendente fora dos 7 dias
		{ID: "v1", Type: TypeDespesa, Amount: 70, Status: StatusPendente, DueDate: date(2026, time.March, 1)},   // vira vencida
		{ID: "g1", Type: TypeReceita, Amount: 400, Status: StatusPago, DueDate: date(2026, time.March, 3), PaymentDate: &pay},
		{ID: "g2", Type: TypeDespesa, Amount: 150, Status: StatusPago, DueDate: date(2026, time.March, 4), PaymentDate: &pay},
		{ID: "g3", Type: TypeDespesa, Amount: 999, Status: StatusPago, DueDate: date(2026, time.February, 4), PaymentDate: &oldPay}, // mês anterior
	}

	st, err := svc.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if st.TotalPending != 150 {
		t.Fatalf("totalPending=%v", st.TotalPending)
	}
	if st.TotalUpcoming != 100 || st.CountUpcoming != 1 {
		t.Fatalf("upcoming=%v count=%d", st.TotalUpcoming, st.CountUpcoming)
	}
	if st.TotalOverdue != 70 || st.CountOverdue != 1 {
		t.Fatalf("overdue=%v count=%d", st.TotalOverdue, st.CountOverdue)
	}
	if st.TotalPaidMonth != 550 || st.CountPaidMonth != 2 {
		t.Fatalf("totalPaidMonth=%v count=%d", st.TotalPaidMonth, st.CountPaidMonth)
	}
	if st.TotalRevenue != 400 || st.TotalExpense != 150 || st.Balance != 250 {
		t.Fatalf("revenue=%v expense=%v balance=%v", st.TotalRevenue, st.TotalExpense, st.Balance)
	}
}

func TestCashFlowProjection(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, accounts := newTestService(now)

	accounts.items = []Account{
		{ID: "a", Type: TypeReceita, Amount: 100, Status: StatusPendente, DueDate: date(2026, time.March, 20)},
		{ID: "b", Type: TypeDespesa, Amount: 40, Status: StatusPago, DueDate: date(2026, time.March, 25)}, // pago também entra: é por vencimento
		{ID: "c", Type: TypeDespesa, Amount: 10, Status: StatusPendente, DueDate: date(2026, time.April, 2)},
		{ID: "old", Type: TypeDespesa, Amount: 999, Status: StatusPendente, DueDate: date(2026, time.February, 1)}, // antes do mês corrente
	}

	flow, err := svc.CashFlowProjection(ctx, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flow) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(flow))
	}
	if flow[0].Revenue != 100 || flow[0].Expense != 40 || flow[0].Balance != 60 {
		t.Fatalf("march bucket wrong: %+v", flow[0])
	}
	if flow[1].Expense != 10 {
		t.Fatalf("april bucket wrong: %+v", flow[1])
	}
	if flow[2].Revenue != 0 || flow[2].Expense != 0 {
		t.Fatalf("empty bucket wrong: %+v", flow[2])
	}
	if !flow[0].Month.Equal(date(2026, time.March, 1)) {
		t.Fatalf("first bucket month=%v", flow[0].Month)
	}
}

// -------------------------
// Quitação e orçamentos
// -------------------------

func TestMarkAsPaid(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, accounts := newTestService(now)
	accounts.items = []Account{
		{ID: "a", Type: TypeDespesa, Amount: 10, Status: StatusPendente, DueDate: now},
	}

	payDate := date(2026, time.March, 9)
	a, err := svc.MarkAsPaid(ctx, "a", payDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusPago || a.PaymentDate == nil || !a.PaymentDate.Equal(payDate) {
		t.Fatalf("unexpected account after pay: %+v", a)
	}

	if _, err := svc.MarkAsPaid(ctx, "missing", payDate); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBudget_MonthRequiredOnlyForMensal(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(date(2026, time.March, 10))

	if _, err := svc.CreateBudget(ctx, BudgetInput{Category: "Ração", Amount: 100, Period: "Mensal", Year: 2026}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("mensal sem mês: expected ErrInvalidInput, got %v", err)
	}

	month := 3
	if _, err := svc.CreateBudget(ctx, BudgetInput{Category: "Ração", Amount: 100, Period: "Mensal", Year: 2026, Month: &month}); err != nil {
		t.Fatalf("mensal com mês: %v", err)
	}
	if _, err := svc.CreateBudget(ctx, BudgetInput{Category: "Ração", Amount: 100, Period: "Anual", Year: 2026}); err != nil {
		t.Fatalf("anual sem mês: %v", err)
	}
}

func TestAnalyzeBudget_SpentByPaymentDate(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 10)
	svc, _, accounts := newTestService(now)

	mar := date(2026, time.March, 5)
	feb := date(2026, time.February, 5)
	accounts.items = []Account{
		{ID: "a", Type: TypeDespesa, Category: "Ração", Amount: 120, Status: StatusPago, DueDate: mar, PaymentDate: &mar},
		{ID: "b", Type: TypeDespesa, Category: "Ração", Amount: 80, Status: StatusPago, DueDate: feb, PaymentDate: &feb},
		{ID: "c", Type: TypeDespesa, Category: "Ração", Amount: 50, Status: StatusPendente, DueDate: mar}, // não pago não conta
		{ID: "d", Type: TypeDespesa, Category: "Energia", Amount: 70, Status: StatusPago, DueDate: mar, PaymentDate: &mar},
	}

	month := 3
	b, err := svc.CreateBudget(ctx, BudgetInput{Category: "Ração", Amount: 200, Period: "Mensal", Year: 2026, Month: &month})
	if err != nil {
		t.Fatalf("create budget: %v", err)
	}

	analysis, err := svc.AnalyzeBudget(ctx, b.ID)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.Spent != 120 || analysis.Planned != 200 {
		t.Fatalf("spent=%v planned=%v", analysis.Spent, analysis.Planned)
	}

	// orçamento anual soma o ano todo
	annual, err := svc.CreateBudget(ctx, BudgetInput{Category: "Ração", Amount: 1000, Period: "Anual", Year: 2026})
	if err != nil {
		t.Fatalf("create annual budget: %v", err)
	}
	analysis, err = svc.AnalyzeBudget(ctx, annual.ID)
	if err != nil {
		t.Fatalf("analyze annual: %v", err)
	}
	if analysis.Spent != 200 {
		t.Fatalf("annual spent=%v", analysis.Spent)
	}
}

func TestCostCenter_SoftDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(date(2026, time.March, 10))

	cc, err := svc.CreateCostCenter(ctx, CostCenterInput{Name: "Nutrição"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeactivateCostCenter(ctx, cc.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	// repetir é inofensivo, inclusive para id inexistente
	if err := svc.DeactivateCostCenter(ctx, cc.ID); err != nil {
		t.Fatalf("deactivate twice: %v", err)
	}
	if err := svc.DeactivateCostCenter(ctx, "missing"); err != nil {
		t.Fatalf("deactivate missing: %v", err)
	}

	active, err := svc.ListCostCenters(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active cost centers, got %d", len(active))
	}
}

func TestTotalRevenue(t *testing.T) {
	ctx := context.Background()
	svc, records, _ := newTestService(date(2026, time.March, 10))

	records.items = []Record{
		{ID: "1", Type: TypeReceita, Amount: 100},
		{ID: "2", Type: TypeReceita, Amount: 50},
		{ID: "3", Type: TypeDespesa, Amount: 999},
	}

	total, err := svc.TotalRevenue(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 150 {
		t.Fatalf("expected 150, got %v", total)
	}
}
