package breeding

import (
	"errors"
	"net/http"
	"time"

	"rebanho-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeding", func(br chi.Router) {
		br.Get("/", listHandler(svc))
		br.Post("/", createHandler(svc))
		br.Get("/{recordID}", getHandler(svc))
		br.Patch("/{recordID}", updateHandler(svc))
		br.Delete("/{recordID}", deleteHandler(svc))
	})
}

type createRequest struct {
	FemaleAnimalID string `json:"female_animal_id" validate:"required"`
	MaleAnimalID   string `json:"male_animal_id"`
	BreedingDate   string `json:"breeding_date" validate:"required"`
	ExpectedBirth  string `json:"expected_birth"`
	Stage          string `json:"stage"`
	Status         string `json:"status" validate:"omitempty,oneof=Cobertura Confirmada Nasceu Perdida"`
	Notes          string `json:"notes"`
}

type updateRequest struct {
	MaleAnimalID     *string `json:"male_animal_id"`
	BreedingDate     *string `json:"breeding_date"`
	ExpectedBirth    *string `json:"expected_birth"`
	Stage            *string `json:"stage"`
	Status           *string `json:"status" validate:"omitempty,oneof=Cobertura Confirmada Nasceu Perdida"`
	MatingStartDate  *string `json:"mating_start_date"`
	MatingEndDate    *string `json:"mating_end_date"`
	SeparationDate   *string `json:"separation_date"`
	UltrasoundDate   *string `json:"ultrasound_date"`
	UltrasoundResult *string `json:"ultrasound_result"`
	BirthDate        *string `json:"birth_date"`
	Notes            *string `json:"notes"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		breedingDate, err := httpx.ParseDate(req.BreedingDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		expected, err := httpx.ParseDatePtr(req.ExpectedBirth)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			FemaleAnimalID: req.FemaleAnimalID,
			MaleAnimalID:   req.MaleAnimalID,
			BreedingDate:   breedingDate,
			ExpectedBirth:  expected,
			Stage:          req.Stage,
			Status:         req.Status,
			Notes:          req.Notes,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, rec)
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rec)
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
			MaleAnimalID:     req.MaleAnimalID,
			Stage:            req.Stage,
			Status:           req.Status,
			UltrasoundResult: req.UltrasoundResult,
			Notes:            req.Notes,
		}

		fields := []struct {
			src *string
			dst **time.Time
		}{
			{req.BreedingDate, &in.BreedingDate},
			{req.ExpectedBirth, &in.ExpectedBirth},
			{req.MatingStartDate, &in.MatingStartDate},
			{req.MatingEndDate, &in.MatingEndDate},
			{req.SeparationDate, &in.SeparationDate},
			{req.UltrasoundDate, &in.UltrasoundDate},
			{req.BirthDate, &in.BirthDate},
		}
		for _, f := range fields {
			if f.src == nil {
				continue
			}
			t, err := httpx.ParseDatePtr(*f.src)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			*f.dst = t
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rec)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "registro reprodutivo não encontrado")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
