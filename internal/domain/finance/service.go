package finance

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	records     RecordRepository
	accounts    AccountRepository
	costCenters CostCenterRepository
	budgets     BudgetRepository
	now         func() time.Time
}

func NewService(records RecordRepository, accounts AccountRepository, costCenters CostCenterRepository, budgets BudgetRepository) *Service {
	return &Service{
		records:     records,
		accounts:    accounts,
		costCenters: costCenters,
		budgets:     budgets,
		now:         time.Now,
	}
}

// -------------------------
// Livro-caixa (Record)
// -------------------------

type RecordInput struct {
	Type        string
	Category    string
	Description string
	Amount      float64
	Date        time.Time
	AnimalID    string
}

func (s *Service) CreateRecord(ctx context.Context, in RecordInput) (Record, error) {
	t := EntryType(strings.TrimSpace(in.Type))
	if t != TypeReceita && t != TypeDespesa {
		return Record{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Category) == "" || in.Amount <= 0 || in.Date.IsZero() {
		return Record{}, ErrInvalidInput
	}

	now := s.now()
	rec := Record{
		ID:          uuid.NewString(),
		Type:        t,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        in.Date,
		AnimalID:    strings.TrimSpace(in.AnimalID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

type RecordUpdate struct {
	Type        *string
	Category    *string
	Description *string
	Amount      *float64
	Date        *time.Time
	AnimalID    *string
}

func (s *Service) UpdateRecord(ctx context.Context, id string, in RecordUpdate) (Record, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}

	if in.Type != nil {
		t := EntryType(strings.TrimSpace(*in.Type))
		if t != TypeReceita && t != TypeDespesa {
			return Record{}, ErrInvalidInput
		}
		rec.Type = t
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return Record{}, ErrInvalidInput
		}
		rec.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		rec.Description = strings.TrimSpace(*in.Description)
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return Record{}, ErrInvalidInput
		}
		rec.Amount = *in.Amount
	}
	if in.Date != nil {
		rec.Date = *in.Date
	}
	if in.AnimalID != nil {
		rec.AnimalID = strings.TrimSpace(*in.AnimalID)
	}

	rec.UpdatedAt = s.now()
	if err := s.records.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) ListRecords(ctx context.Context) ([]Record, error) {
	return s.records.List(ctx)
}

func (s *Service) GetRecord(ctx context.Context, id string) (Record, error) {
	return s.records.GetByID(ctx, id)
}

func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// TotalRevenue soma as receitas do livro-caixa (animals.RevenueSource).
func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	all, err := s.records.List(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, r := range all {
		if r.Type == TypeReceita {
			total += r.Amount
		}
	}
	return total, nil
}

// -------------------------
// Contas agendadas (Account)
// -------------------------

type AccountInput struct {
	Type             string
	Category         string
	Description      string
	Amount           float64
	DueDate          time.Time
	Status           string
	PaymentDate      *time.Time
	PaymentMethod    string
	AnimalID         string
	SupplierCustomer string
	Notes            string
	CostCenter       string

	Installments int

	IsRecurring       bool
	RecurrenceFreq    string
	RecurrenceEndDate *time.Time
}

func (s *Service) validateAccountInput(in AccountInput) error {
	t := EntryType(strings.TrimSpace(in.Type))
	if t != TypeReceita && t != TypeDespesa {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Category) == "" || in.Amount <= 0 || in.DueDate.IsZero() {
		return ErrInvalidInput
	}
	if in.Status != "" {
		switch AccountStatus(in.Status) {
		case StatusPendente, StatusPago, StatusVencido, StatusCancelado:
		default:
			return ErrInvalidInput
		}
	}
	if in.IsRecurring {
		switch Frequency(in.RecurrenceFreq) {
		case FreqSemanal, FreqMensal, FreqAnual:
		default:
			return ErrInvalidInput
		}
	}
	return nil
}

func (s *Service) accountFromInput(in AccountInput, now time.Time) Account {
	status := AccountStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusPendente
	}
	return Account{
		ID:                uuid.NewString(),
		Type:              EntryType(strings.TrimSpace(in.Type)),
		Category:          strings.TrimSpace(in.Category),
		Description:       strings.TrimSpace(in.Description),
		Amount:            in.Amount,
		DueDate:           in.DueDate,
		Status:            status,
		PaymentDate:       in.PaymentDate,
		PaymentMethod:     strings.TrimSpace(in.PaymentMethod),
		AnimalID:          strings.TrimSpace(in.AnimalID),
		SupplierCustomer:  strings.TrimSpace(in.SupplierCustomer),
		Notes:             strings.TrimSpace(in.Notes),
		CostCenter:        strings.TrimSpace(in.CostCenter),
		Installments:      in.Installments,
		IsRecurring:       in.IsRecurring,
		RecurrenceFreq:    Frequency(in.RecurrenceFreq),
		RecurrenceEndDate: in.RecurrenceEndDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// CreateAccount cria a conta; com Installments = N > 1 gera a cadeia de
// N parcelas: valores somando exato ao original, vencimentos avançando
// (i-1) meses, descrição sufixada "(i/N)" e um parent_id sintético.
func (s *Service) CreateAccount(ctx context.Context, in AccountInput) ([]Account, error) {
	if err := s.validateAccountInput(in); err != nil {
		return nil, err
	}

	now := s.now()
	if in.Installments <= 1 {
		a := s.accountFromInput(in, now)
		if err := s.accounts.Create(ctx, a); err != nil {
			return nil, err
		}
		return []Account{a}, nil
	}

	n := in.Installments
	amounts := SplitAmounts(in.Amount, n)
	parentID := uuid.NewString()
	baseDesc := strings.TrimSpace(in.Description)

	out := make([]Account, 0, n)
	for i := 1; i <= n; i++ {
		a := s.accountFromInput(in, now)
		a.Amount = amounts[i-1]
		a.DueDate = in.DueDate.AddDate(0, i-1, 0)
		a.Description = installmentDesc(baseDesc, i, n)
		a.InstallmentNumber = i
		a.ParentID = parentID
		if err := s.accounts.Create(ctx, a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func installmentDesc(desc string, i, n int) string {
	suffix := "(" + strconv.Itoa(i) + "/" + strconv.Itoa(n) + ")"
	if desc == "" {
		return suffix
	}
	return desc + " " + suffix
}

type AccountUpdate struct {
	Category          *string
	Description       *string
	Amount            *float64
	DueDate           *time.Time
	Status            *string
	PaymentDate       *time.Time
	PaymentMethod     *string
	SupplierCustomer  *string
	Notes             *string
	CostCenter        *string
	IsRecurring       *bool
	RecurrenceFreq    *string
	RecurrenceEndDate *time.Time
}

func (s *Service) UpdateAccount(ctx context.Context, id string, in AccountUpdate) (Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return Account{}, err
	}

	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return Account{}, ErrInvalidInput
		}
		a.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		a.Description = strings.TrimSpace(*in.Description)
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return Account{}, ErrInvalidInput
		}
		a.Amount = *in.Amount
	}
	if in.DueDate != nil {
		a.DueDate = *in.DueDate
	}
	if in.Status != nil {
		st := AccountStatus(strings.TrimSpace(*in.Status))
		switch st {
		case StatusPendente, StatusPago, StatusVencido, StatusCancelado:
			a.Status = st
		default:
			return Account{}, ErrInvalidInput
		}
		if st != StatusPago && in.PaymentDate == nil {
			a.PaymentDate = nil
		}
	}
	if in.PaymentDate != nil {
		a.PaymentDate = in.PaymentDate
	}
	if in.PaymentMethod != nil {
		a.PaymentMethod = strings.TrimSpace(*in.PaymentMethod)
	}
	if in.SupplierCustomer != nil {
		a.SupplierCustomer = strings.TrimSpace(*in.SupplierCustomer)
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.CostCenter != nil {
		a.CostCenter = strings.TrimSpace(*in.CostCenter)
	}
	if in.IsRecurring != nil {
		a.IsRecurring = *in.IsRecurring
	}
	if in.RecurrenceFreq != nil {
		a.RecurrenceFreq = Frequency(strings.TrimSpace(*in.RecurrenceFreq))
	}
	if in.RecurrenceEndDate != nil {
		a.RecurrenceEndDate = in.RecurrenceEndDate
	}

	a.UpdatedAt = s.now()
	if err := s.accounts.Update(ctx, a); err != nil {
		return Account{}, err
	}
	return a, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]Account, error) {
	return s.accounts.List(ctx)
}

func (s *Service) GetAccount(ctx context.Context, id string) (Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	return s.accounts.Delete(ctx, id)
}

// MarkAsPaid quita a conta na data informada.
func (s *Service) MarkAsPaid(ctx context.Context, id string, paymentDate time.Time) (Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return Account{}, err
	}
	a.Status = StatusPago
	a.PaymentDate = &paymentDate
	a.UpdatedAt = s.now()
	if err := s.accounts.Update(ctx, a); err != nil {
		return Account{}, err
	}
	return a, nil
}

// RefreshOverdue aplica ProjectOverdue e regrava a coleção quando a
// projeção muda algo. É o passo explícito de escrita que as consultas
// chamam antes de ler.
func (s *Service) RefreshOverdue(ctx context.Context) error {
	all, err := s.accounts.List(ctx)
	if err != nil {
		return err
	}
	projected, changed := ProjectOverdue(all, s.now())
	if !changed {
		return nil
	}
	return s.accounts.SaveAll(ctx, projected)
}

func (s *Service) GetByStatus(ctx context.Context, status AccountStatus) ([]Account, error) {
	if err := s.RefreshOverdue(ctx); err != nil {
		return nil, err
	}
	all, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Account, 0)
	for _, a := range all {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetUpcoming devolve contas em aberto vencendo entre hoje e hoje+days,
// ordenadas por vencimento.
func (s *Service) GetUpcoming(ctx context.Context, days int) ([]Account, error) {
	if err := s.RefreshOverdue(ctx); err != nil {
		return nil, err
	}
	all, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	today := dayStart(s.now())
	limit := today.AddDate(0, 0, days)

	out := make([]Account, 0)
	for _, a := range all {
		if a.Status != StatusPendente && a.Status != StatusVencido {
			continue
		}
		due := dayStart(a.DueDate)
		if due.Before(today) || due.After(limit) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

// DashboardStats consolida o painel: pendências, próximos 7 dias,
// vencidas e o realizado (Pago) do mês corrente.
func (s *Service) DashboardStats(ctx context.Context) (DashboardStats, error) {
	if err := s.RefreshOverdue(ctx); err != nil {
		return DashboardStats{}, err
	}
	all, err := s.accounts.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	now := s.now()
	today := dayStart(now)
	upcomingLimit := today.AddDate(0, 0, 7)

	var st DashboardStats
	for _, a := range all {
		switch a.Status {
		case StatusPendente:
			st.TotalPending += a.Amount
			due := dayStart(a.DueDate)
			if !due.Before(today) && !due.After(upcomingLimit) {
				st.TotalUpcoming += a.Amount
				st.CountUpcoming++
			}
		case StatusVencido:
			st.TotalOverdue += a.Amount
			st.CountOverdue++
		case StatusPago:
			if a.PaymentDate == nil || !sameMonth(*a.PaymentDate, now) {
				continue
			}
			st.TotalPaidMonth += a.Amount
			st.CountPaidMonth++
			if a.Type == TypeReceita {
				st.TotalRevenue += a.Amount
			} else {
				st.TotalExpense += a.Amount
			}
		}
	}
	st.Balance = st.TotalRevenue - st.TotalExpense
	return st, nil
}

// CashFlowProjection devolve months baldes mensais consecutivos a
// partir do mês corrente, somando por vencimento.
func (s *Service) CashFlowProjection(ctx context.Context, months int) ([]CashFlowMonth, error) {
	if months <= 0 {
		return nil, ErrInvalidInput
	}
	all, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	first := startOfMonth(s.now())
	out := make([]CashFlowMonth, 0, months)
	for i := 0; i < months; i++ {
		monthStart := first.AddDate(0, i, 0)
		nextStart := monthStart.AddDate(0, 1, 0)

		bucket := CashFlowMonth{Month: monthStart}
		for _, a := range all {
			due := dayStart(a.DueDate)
			if due.Before(monthStart) || !due.Before(nextStart) {
				continue
			}
			switch a.Type {
			case TypeReceita:
				bucket.Revenue += a.Amount
			case TypeDespesa:
				bucket.Expense += a.Amount
			}
		}
		bucket.Balance = bucket.Revenue - bucket.Expense
		out = append(out, bucket)
	}
	return out, nil
}

// GenerateRecurring cria, para cada conta-modelo ativa, no máximo um
// filho Pendente com vencimento em hoje + 1 período. A guarda de
// duplicidade compara parent_id + dia do vencimento, então rodar de
// novo no mesmo dia não duplica nada.
func (s *Service) GenerateRecurring(ctx context.Context) ([]Account, error) {
	all, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := dayStart(now)
	created := make([]Account, 0)

	for _, recurring := range all {
		if !recurring.IsRecurring {
			continue
		}
		if recurring.RecurrenceEndDate != nil && today.After(dayStart(*recurring.RecurrenceEndDate)) {
			continue
		}

		next, ok := NextDueDate(recurring.RecurrenceFreq, now)
		if !ok {
			continue
		}

		exists := false
		for _, a := range all {
			if a.ParentID == recurring.ID && sameDay(a.DueDate, next) {
				exists = true
				break
			}
		}
		for _, a := range created {
			if a.ParentID == recurring.ID && sameDay(a.DueDate, next) {
				exists = true
				break
			}
		}
		if exists {
			continue
		}

		child := Account{
			ID:               uuid.NewString(),
			Type:             recurring.Type,
			Category:         recurring.Category,
			Description:      recurring.Description,
			Amount:           recurring.Amount,
			DueDate:          next,
			Status:           StatusPendente,
			PaymentMethod:    recurring.PaymentMethod,
			AnimalID:         recurring.AnimalID,
			SupplierCustomer: recurring.SupplierCustomer,
			Notes:            recurring.Notes,
			CostCenter:       recurring.CostCenter,
			ParentID:         recurring.ID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.accounts.Create(ctx, child); err != nil {
			return created, err
		}
		created = append(created, child)
	}
	return created, nil
}

// -------------------------
// Centros de custo
// -------------------------

type CostCenterInput struct {
	Name        string
	Description string
}

func (s *Service) CreateCostCenter(ctx context.Context, in CostCenterInput) (CostCenter, error) {
	if strings.TrimSpace(in.Name) == "" {
		return CostCenter{}, ErrInvalidInput
	}
	now := s.now()
	cc := CostCenter{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.costCenters.Create(ctx, cc); err != nil {
		return CostCenter{}, err
	}
	return cc, nil
}

// ListCostCenters devolve só os ativos (exclusão é lógica).
func (s *Service) ListCostCenters(ctx context.Context) ([]CostCenter, error) {
	all, err := s.costCenters.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CostCenter, 0, len(all))
	for _, cc := range all {
		if cc.Active {
			out = append(out, cc)
		}
	}
	return out, nil
}

// DeactivateCostCenter é o delete lógico; repetir é inofensivo.
func (s *Service) DeactivateCostCenter(ctx context.Context, id string) error {
	cc, err := s.costCenters.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !cc.Active {
		return nil
	}
	cc.Active = false
	cc.UpdatedAt = s.now()
	return s.costCenters.Update(ctx, cc)
}

// -------------------------
// Orçamentos
// -------------------------

type BudgetInput struct {
	Category   string
	CostCenter string
	Amount     float64
	Period     string
	Year       int
	Month      *int
}

func (s *Service) CreateBudget(ctx context.Context, in BudgetInput) (Budget, error) {
	if strings.TrimSpace(in.Category) == "" || in.Amount <= 0 || in.Year == 0 {
		return Budget{}, ErrInvalidInput
	}
	period := BudgetPeriod(strings.TrimSpace(in.Period))
	switch period {
	case PeriodMensal:
		if in.Month == nil || *in.Month < 1 || *in.Month > 12 {
			return Budget{}, ErrInvalidInput
		}
	case PeriodTrimestral, PeriodAnual:
	default:
		return Budget{}, ErrInvalidInput
	}

	now := s.now()
	b := Budget{
		ID:         uuid.NewString(),
		Category:   strings.TrimSpace(in.Category),
		CostCenter: strings.TrimSpace(in.CostCenter),
		Amount:     in.Amount,
		Period:     period,
		Year:       in.Year,
		Month:      in.Month,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.budgets.Create(ctx, b); err != nil {
		return Budget{}, err
	}
	return b, nil
}

type BudgetUpdate struct {
	Category   *string
	CostCenter *string
	Amount     *float64
	Month      *int
}

func (s *Service) UpdateBudget(ctx context.Context, id string, in BudgetUpdate) (Budget, error) {
	b, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return Budget{}, err
	}

	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return Budget{}, ErrInvalidInput
		}
		b.Category = strings.TrimSpace(*in.Category)
	}
	if in.CostCenter != nil {
		b.CostCenter = strings.TrimSpace(*in.CostCenter)
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return Budget{}, ErrInvalidInput
		}
		b.Amount = *in.Amount
	}
	if in.Month != nil {
		if b.Period != PeriodMensal || *in.Month < 1 || *in.Month > 12 {
			return Budget{}, ErrInvalidInput
		}
		b.Month = in.Month
	}

	b.UpdatedAt = s.now()
	if err := s.budgets.Update(ctx, b); err != nil {
		return Budget{}, err
	}
	return b, nil
}

func (s *Service) ListBudgets(ctx context.Context) ([]Budget, error) {
	return s.budgets.List(ctx)
}

func (s *Service) DeleteBudget(ctx context.Context, id string) error {
	return s.budgets.Delete(ctx, id)
}

// AnalyzeBudget soma o realizado (Pago, por payment_date) da categoria
// no período do orçamento: o ano todo quando Month é nulo, senão o mês.
func (s *Service) AnalyzeBudget(ctx context.Context, id string) (BudgetAnalysis, error) {
	b, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return BudgetAnalysis{}, err
	}
	spent, err := s.SpentInPeriod(ctx, b.Category, b.Year, b.Month)
	if err != nil {
		return BudgetAnalysis{}, err
	}
	return BudgetAnalysis{
		Category: b.Category,
		Year:     b.Year,
		Month:    b.Month,
		Planned:  b.Amount,
		Spent:    spent,
	}, nil
}

// SpentInPeriod soma contas Pago da categoria com payment_date dentro
// do ano (month nulo) ou do mês informado.
func (s *Service) SpentInPeriod(ctx context.Context, category string, year int, month *int) (float64, error) {
	all, err := s.accounts.List(ctx)
	if err != nil {
		return 0, err
	}

	var spent float64
	for _, a := range all {
		if a.Category != category || a.Status != StatusPago || a.PaymentDate == nil {
			continue
		}
		p := *a.PaymentDate
		if p.Year() != year {
			continue
		}
		if month != nil && int(p.Month()) != *month {
			continue
		}
		spent += a.Amount
	}
	return spent, nil
}
