package finance

import "time"

// EntryType separa entradas e saídas de caixa.
type EntryType string

const (
	TypeReceita EntryType = "receita"
	TypeDespesa EntryType = "despesa"
)

// Record é um lançamento realizado do livro-caixa, distinto de uma
// conta agendada (Account).
type Record struct {
	ID          string    `json:"id"`
	Type        EntryType `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	AnimalID    string    `json:"animal_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountStatus: Pendente -> Pago | Vencido | Cancelado.
// Vencido é projetado a partir do vencimento, mas persistido.
type AccountStatus string

const (
	StatusPendente  AccountStatus = "Pendente"
	StatusPago      AccountStatus = "Pago"
	StatusVencido   AccountStatus = "Vencido"
	StatusCancelado AccountStatus = "Cancelado"
)

// Frequency das contas recorrentes.
type Frequency string

const (
	FreqSemanal Frequency = "Semanal"
	FreqMensal  Frequency = "Mensal"
	FreqAnual   Frequency = "Anual"
)

// Account é uma obrigação agendada (a pagar ou a receber).
type Account struct {
	ID          string    `json:"id"`
	Type        EntryType `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`

	DueDate       time.Time     `json:"due_date"`
	Status        AccountStatus `json:"status"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`

	AnimalID         string `json:"animal_id,omitempty"`
	SupplierCustomer string `json:"supplier_customer,omitempty"`
	Notes            string `json:"notes,omitempty"`
	CostCenter       string `json:"cost_center,omitempty"`

	// Cadeia de parcelas: N filhos com um parent_id sintético em comum.
	Installments      int    `json:"installments,omitempty"`
	InstallmentNumber int    `json:"installment_number,omitempty"`
	ParentID          string `json:"parent_id,omitempty"`

	// Recorrência: a conta-modelo gera filhos Pendente por período.
	IsRecurring       bool       `json:"is_recurring,omitempty"`
	RecurrenceFreq    Frequency  `json:"recurrence_frequency,omitempty"`
	RecurrenceEndDate *time.Time `json:"recurrence_end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CostCenter agrupa contas; exclusão é lógica (Active=false).
type CostCenter struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BudgetPeriod define o recorte temporal de um orçamento.
type BudgetPeriod string

const (
	PeriodMensal     BudgetPeriod = "Mensal"
	PeriodTrimestral BudgetPeriod = "Trimestral"
	PeriodAnual      BudgetPeriod = "Anual"
)

// Budget é a meta de gasto de uma categoria. Month é obrigatório
// apenas quando Period = Mensal.
type Budget struct {
	ID         string       `json:"id"`
	Category   string       `json:"category"`
	CostCenter string       `json:"cost_center,omitempty"`
	Amount     float64      `json:"amount"`
	Period     BudgetPeriod `json:"period"`
	Year       int          `json:"year"`
	Month      *int         `json:"month,omitempty"` // 1..12

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DashboardStats resume as contas para o painel financeiro.
// Pendente e Vencido não se misturam: totalPending soma só Pendente.
type DashboardStats struct {
	TotalPending   float64 `json:"totalPending"`
	TotalUpcoming  float64 `json:"totalUpcoming"`
	CountUpcoming  int     `json:"countUpcoming"`
	TotalOverdue   float64 `json:"totalOverdue"`
	CountOverdue   int     `json:"countOverdue"`
	TotalPaidMonth float64 `json:"totalPaidMonth"`
	CountPaidMonth int     `json:"countPaidMonth"`
	Balance        float64 `json:"balance"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalExpense   float64 `json:"totalExpense"`
}

// CashFlowMonth é um balde mensal da projeção de fluxo de caixa.
// Soma por vencimento, pago ou não: é previsão, não realizado.
type CashFlowMonth struct {
	Month   time.Time `json:"month"`
	Revenue float64   `json:"revenue"`
	Expense float64   `json:"expense"`
	Balance float64   `json:"balance"`
}

// BudgetAnalysis devolve o gasto realizado junto do valor planejado;
// o percentual fica por conta de quem exibe.
type BudgetAnalysis struct {
	Category string  `json:"category"`
	Year     int     `json:"year"`
	Month    *int    `json:"month,omitempty"`
	Planned  float64 `json:"planned"`
	Spent    float64 `json:"spent"`
}
