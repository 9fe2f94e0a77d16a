package reports

import (
	"errors"
	"net/http"

	"rebanho-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/", listSavedHandler(svc))
		rr.Post("/", saveHandler(svc))
		rr.Get("/{reportID}", getSavedHandler(svc))
		rr.Delete("/{reportID}", deleteSavedHandler(svc))
		rr.Post("/generate/{kind}", generateHandler(svc))
	})
}

type generateRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`

	Animals      *AnimalsFilter      `json:"animals"`
	Vaccinations *VaccinationsFilter `json:"vaccinations"`
	Medications  *MedicationsFilter  `json:"medications"`
	Breeding     *BreedingFilter     `json:"breeding"`
	Financial    *FinancialFilter    `json:"financial"`
	Notes        *NotesFilter        `json:"notes"`

	SortBy   string `json:"sort_by"`
	SortDesc bool   `json:"sort_desc"`
	Page     int    `json:"page" validate:"omitempty,gte=1"`
}

type generateResponse struct {
	Summary    map[string]float64 `json:"summary"`
	Data       []Row              `json:"data"`
	Total      int                `json:"total"`
	Page       int                `json:"page,omitempty"`
	TotalPages int                `json:"total_pages,omitempty"`
}

type saveRequest struct {
	ReportType  string     `json:"report_type" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	GeneratedBy string     `json:"generated_by"`
	Parameters  Parameters `json:"parameters"`
}

func generateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := Type(chi.URLParam(r, "kind"))
		if !ValidType(kind) {
			httpx.WriteError(w, http.StatusBadRequest, "tipo de relatório inválido")
			return
		}

		var req generateRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		start, err := httpx.ParseDate(req.Start)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		end, err := httpx.ParseDate(req.End)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		params := Parameters{
			Period:       Period{Start: start, End: end},
			Animals:      req.Animals,
			Vaccinations: req.Vaccinations,
			Medications:  req.Medications,
			Breeding:     req.Breeding,
			Financial:    req.Financial,
			Notes:        req.Notes,
		}

		result, err := svc.Generate(r.Context(), kind, params)
		if err != nil {
			writeErr(w, err)
			return
		}

		rows := result.Data
		if req.SortBy != "" {
			rows = SortRows(rows, req.SortBy, req.SortDesc)
		}

		resp := generateResponse{
			Summary: result.Summary,
			Data:    rows,
			Total:   len(result.Data),
		}
		if req.Page > 0 {
			resp.Data = Paginate(rows, req.Page)
			resp.Page = req.Page
			resp.TotalPages = TotalPages(len(rows))
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

func saveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		rep, err := svc.Save(r.Context(), Type(req.ReportType), req.Title, req.GeneratedBy, req.Parameters)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, rep)
	}
}

func listSavedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListSaved(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getSavedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.GetSaved(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rep)
	}
}

func deleteSavedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteSaved(r.Context(), chi.URLParam(r, "reportID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "relatório não encontrado")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
