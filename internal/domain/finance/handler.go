package finance

import (
	"errors"
	"net/http"
	"strconv"

	"rebanho-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/finance", func(fr chi.Router) {
		fr.Route("/records", func(rr chi.Router) {
			rr.Get("/", listRecordsHandler(svc))
			rr.Post("/", createRecordHandler(svc))
			rr.Get("/{recordID}", getRecordHandler(svc))
			rr.Patch("/{recordID}", updateRecordHandler(svc))
			rr.Delete("/{recordID}", deleteRecordHandler(svc))
		})

		fr.Route("/accounts", func(ar chi.Router) {
			ar.Get("/", listAccountsHandler(svc))
			ar.Post("/", createAccountHandler(svc))
			// Mesmo fluxo de criação; a rota existe para o cliente que
			// separa parcelamento de conta simples.
			ar.Post("/installments", createAccountHandler(svc))
			ar.Get("/upcoming", upcomingHandler(svc))
			ar.Post("/generate-recurring", generateRecurringHandler(svc))
			ar.Get("/{accountID}", getAccountHandler(svc))
			ar.Patch("/{accountID}", updateAccountHandler(svc))
			ar.Delete("/{accountID}", deleteAccountHandler(svc))
			ar.Post("/{accountID}/pay", payHandler(svc))
		})

		fr.Get("/dashboard", dashboardHandler(svc))
		fr.Get("/cashflow", cashflowHandler(svc))

		fr.Route("/cost-centers", func(cr chi.Router) {
			cr.Get("/", listCostCentersHandler(svc))
			cr.Post("/", createCostCenterHandler(svc))
			cr.Delete("/{costCenterID}", deactivateCostCenterHandler(svc))
		})

		fr.Route("/budgets", func(br chi.Router) {
			br.Get("/", listBudgetsHandler(svc))
			br.Post("/", createBudgetHandler(svc))
			br.Patch("/{budgetID}", updateBudgetHandler(svc))
			br.Delete("/{budgetID}", deleteBudgetHandler(svc))
			br.Get("/{budgetID}/analysis", budgetAnalysisHandler(svc))
		})
	})
}

// -------------------------
// Livro-caixa
// -------------------------

type recordRequest struct {
	Type        string  `json:"type" validate:"required,oneof=receita despesa"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	AnimalID    string  `json:"animal_id"`
}

type recordUpdateRequest struct {
	Type        *string  `json:"type" validate:"omitempty,oneof=receita despesa"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Date        *string  `json:"date"`
	AnimalID    *string  `json:"animal_id"`
}

func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		date, err := httpx.ParseDate(req.Date)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		rec, err := svc.CreateRecord(r.Context(), RecordInput{
			Type:        req.Type,
			Category:    req.Category,
			Description: req.Description,
			Amount:      req.Amount,
			Date:        date,
			AnimalID:    req.AnimalID,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, rec)
	}
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListRecords(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetRecord(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rec)
	}
}

func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordUpdateRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in := RecordUpdate{
			Type:        req.Type,
			Category:    req.Category,
			Description: req.Description,
			Amount:      req.Amount,
			AnimalID:    req.AnimalID,
		}
		if req.Date != nil {
			date, err := httpx.ParseDate(*req.Date)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			in.Date = &date
		}

		rec, err := svc.UpdateRecord(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rec)
	}
}

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteRecord(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// -------------------------
// Contas agendadas
// -------------------------

type accountRequest struct {
	Type             string  `json:"type" validate:"required,oneof=receita despesa"`
	Category         string  `json:"category" validate:"required"`
	Description      string  `json:"description"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	DueDate          string  `json:"due_date" validate:"required"`
	Status           string  `json:"status" validate:"omitempty,oneof=Pendente Pago Vencido Cancelado"`
	PaymentDate      string  `json:"payment_date"`
	PaymentMethod    string  `json:"payment_method"`
	AnimalID         string  `json:"animal_id"`
	SupplierCustomer string  `json:"supplier_customer"`
	Notes            string  `json:"notes"`
	CostCenter       string  `json:"cost_center"`

	Installments int `json:"installments" validate:"omitempty,gte=1,lte=120"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurrenceFreq    string `json:"recurrence_frequency" validate:"omitempty,oneof=Semanal Mensal Anual"`
	RecurrenceEndDate string `json:"recurrence_end_date"`
}

type accountUpdateRequest struct {
	Category          *string  `json:"category"`
	Description       *string  `json:"description"`
	Amount            *float64 `json:"amount" validate:"omitempty,gt=0"`
	DueDate           *string  `json:"due_date"`
	Status            *string  `json:"status" validate:"omitempty,oneof=Pendente Pago Vencido Cancelado"`
	PaymentDate       *string  `json:"payment_date"`
	PaymentMethod     *string  `json:"payment_method"`
	SupplierCustomer  *string  `json:"supplier_customer"`
	Notes             *string  `json:"notes"`
	CostCenter        *string  `json:"cost_center"`
	IsRecurring       *bool    `json:"is_recurring"`
	RecurrenceFreq    *string  `json:"recurrence_frequency" validate:"omitempty,oneof=Semanal Mensal Anual"`
	RecurrenceEndDate *string  `json:"recurrence_end_date"`
}

type payRequest struct {
	PaymentDate string `json:"payment_date"`
}

func createAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		due, err := httpx.ParseDate(req.DueDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		payment, err := httpx.ParseDatePtr(req.PaymentDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		recurrenceEnd, err := httpx.ParseDatePtr(req.RecurrenceEndDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := svc.CreateAccount(r.Context(), AccountInput{
			Type:              req.Type,
			Category:          req.Category,
			Description:       req.Description,
			Amount:            req.Amount,
			DueDate:           due,
			Status:            req.Status,
			PaymentDate:       payment,
			PaymentMethod:     req.PaymentMethod,
			AnimalID:          req.AnimalID,
			SupplierCustomer:  req.SupplierCustomer,
			Notes:             req.Notes,
			CostCenter:        req.CostCenter,
			Installments:      req.Installments,
			IsRecurring:       req.IsRecurring,
			RecurrenceFreq:    req.RecurrenceFreq,
			RecurrenceEndDate: recurrenceEnd,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, created)
	}
}

func listAccountsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if status := r.URL.Query().Get("status"); status != "" {
			items, err := svc.GetByStatus(r.Context(), AccountStatus(status))
			if err != nil {
				writeErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, items)
			return
		}

		items, err := svc.ListAccounts(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetAccount(r.Context(), chi.URLParam(r, "accountID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func updateAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountUpdateRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in := AccountUpdate{
			Category:         req.Category,
			Description:      req.Description,
			Amount:           req.Amount,
			Status:           req.Status,
			PaymentMethod:    req.PaymentMethod,
			SupplierCustomer: req.SupplierCustomer,
			Notes:            req.Notes,
			CostCenter:       req.CostCenter,
			IsRecurring:      req.IsRecurring,
			RecurrenceFreq:   req.RecurrenceFreq,
		}
		if req.DueDate != nil {
			due, err := httpx.ParseDate(*req.DueDate)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			in.DueDate = &due
		}
		if req.PaymentDate != nil {
			payment, err := httpx.ParseDatePtr(*req.PaymentDate)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			in.PaymentDate = payment
		}
		if req.RecurrenceEndDate != nil {
			end, err := httpx.ParseDatePtr(*req.RecurrenceEndDate)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			in.RecurrenceEndDate = end
		}

		a, err := svc.UpdateAccount(r.Context(), chi.URLParam(r, "accountID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func deleteAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteAccount(r.Context(), chi.URLParam(r, "accountID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func payHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req payRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		paymentDate := svc.now()
		if req.PaymentDate != "" {
			parsed, err := httpx.ParseDate(req.PaymentDate)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			paymentDate = parsed
		}

		a, err := svc.MarkAsPaid(r.Context(), chi.URLParam(r, "accountID"), paymentDate)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func upcomingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 30
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				httpx.WriteError(w, http.StatusBadRequest, "parâmetro days inválido")
				return
			}
			days = parsed
		}

		items, err := svc.GetUpcoming(r.Context(), days)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func generateRecurringHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := svc.GenerateRecurring(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, created)
	}
}

func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.DashboardStats(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, stats)
	}
}

func cashflowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		months := 6
		if raw := r.URL.Query().Get("months"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 || parsed > 36 {
				httpx.WriteError(w, http.StatusBadRequest, "parâmetro months inválido")
				return
			}
			months = parsed
		}

		projection, err := svc.CashFlowProjection(r.Context(), months)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, projection)
	}
}

// -------------------------
// Centros de custo
// -------------------------

type costCenterRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func createCostCenterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req costCenterRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		cc, err := svc.CreateCostCenter(r.Context(), CostCenterInput{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, cc)
	}
}

func listCostCentersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListCostCenters(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func deactivateCostCenterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeactivateCostCenter(r.Context(), chi.URLParam(r, "costCenterID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// -------------------------
// Orçamentos
// -------------------------

type budgetRequest struct {
	Category   string  `json:"category" validate:"required"`
	CostCenter string  `json:"cost_center"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Period     string  `json:"period" validate:"required,oneof=Mensal Trimestral Anual"`
	Year       int     `json:"year" validate:"required"`
	Month      *int    `json:"month" validate:"omitempty,gte=1,lte=12"`
}

type budgetUpdateRequest struct {
	Category   *string  `json:"category"`
	CostCenter *string  `json:"cost_center"`
	Amount     *float64 `json:"amount" validate:"omitempty,gt=0"`
	Month      *int     `json:"month" validate:"omitempty,gte=1,lte=12"`
}

func createBudgetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req budgetRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		b, err := svc.CreateBudget(r.Context(), BudgetInput{
			Category:   req.Category,
			CostCenter: req.CostCenter,
			Amount:     req.Amount,
			Period:     req.Period,
			Year:       req.Year,
			Month:      req.Month,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, b)
	}
}

func listBudgetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListBudgets(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func updateBudgetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req budgetUpdateRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		b, err := svc.UpdateBudget(r.Context(), chi.URLParam(r, "budgetID"), BudgetUpdate{
			Category:   req.Category,
			CostCenter: req.CostCenter,
			Amount:     req.Amount,
			Month:      req.Month,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, b)
	}
}

func deleteBudgetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteBudget(r.Context(), chi.URLParam(r, "budgetID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func budgetAnalysisHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, err := svc.AnalyzeBudget(r.Context(), chi.URLParam(r, "budgetID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, analysis)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "registro financeiro não encontrado")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
