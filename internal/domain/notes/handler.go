package notes

import (
	"errors"
	"net/http"

	"rebanho-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notes", func(nr chi.Router) {
		nr.Get("/", listHandler(svc))
		nr.Post("/", createHandler(svc))
		nr.Get("/{noteID}", getHandler(svc))
		nr.Patch("/{noteID}", updateHandler(svc))
		nr.Post("/{noteID}/read", markReadHandler(svc))
		nr.Delete("/{noteID}", deleteHandler(svc))
	})
}

type createRequest struct {
	AnimalID string `json:"animal_id"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Priority string `json:"priority" validate:"omitempty,oneof=Baixa Média Alta"`
	Date     string `json:"date"`
}

type updateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Priority *string `json:"priority" validate:"omitempty,oneof=Baixa Média Alta"`
	Date     *string `json:"date"`
	IsRead   *bool   `json:"is_read"`
}

type markReadRequest struct {
	IsRead bool `json:"is_read"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in := CreateInput{
			AnimalID: req.AnimalID,
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
			Priority: req.Priority,
		}
		if req.Date != "" {
			date, err := httpx.ParseDate(req.Date)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			in.Date = date
		}

		n, err := svc.Create(r.Context(), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, n)
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAnimal(r.Context(), r.URL.Query().Get("animal_id"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.GetByID(r.Context(), chi.URLParam(r, "noteID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, n)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in := UpdateInput{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
			Priority: req.Priority,
			IsRead:   req.IsRead,
		}
		if req.Date != nil {
			date, err := httpx.ParseDatePtr(*req.Date)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			in.Date = date
		}

		n, err := svc.Update(r.Context(), chi.URLParam(r, "noteID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, n)
	}
}

func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req markReadRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		n, err := svc.MarkRead(r.Context(), chi.URLParam(r, "noteID"), req.IsRead)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, n)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "noteID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "anotação não encontrada")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
