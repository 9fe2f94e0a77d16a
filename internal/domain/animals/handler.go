package animals

import (
	"errors"
	"net/http"
	"time"

	"rebanho-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listHandler(svc))
		ar.Post("/", createHandler(svc))
		ar.Get("/stats", statsHandler(svc))
		ar.Get("/{animalID}", getHandler(svc))
		ar.Patch("/{animalID}", updateHandler(svc))
		ar.Delete("/{animalID}", deleteHandler(svc))

		ar.Get("/{animalID}/weights", listWeightsHandler(svc))
		ar.Post("/{animalID}/weights", addWeightHandler(svc))
	})
	r.Delete("/weights/{weightID}", deleteWeightHandler(svc))
}

type createRequest struct {
	Code             string   `json:"code" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Species          string   `json:"species" validate:"required,oneof=Ovino Caprino"`
	Breed            string   `json:"breed"`
	Gender           string   `json:"gender" validate:"required,oneof=Macho Fêmea"`
	BirthDate        string   `json:"birth_date" validate:"required"`
	Weight           float64  `json:"weight" validate:"gte=0"`
	Status           string   `json:"status"`
	Category         string   `json:"category"`
	Location         string   `json:"location"`
	LastVaccination  string   `json:"last_vaccination"`
	Pregnant         bool     `json:"pregnant"`
	ExpectedDelivery string   `json:"expected_delivery"`
	HealthIssue      string   `json:"health_issue"`
	Weight30         *float64 `json:"weight_30"`
	Weight60         *float64 `json:"weight_60"`
	Weight90         *float64 `json:"weight_90"`
}

type updateRequest struct {
	Code             *string  `json:"code"`
	Name             *string  `json:"name"`
	Species          *string  `json:"species"`
	Breed            *string  `json:"breed"`
	Gender           *string  `json:"gender"`
	BirthDate        *string  `json:"birth_date"`
	Weight           *float64 `json:"weight"`
	Status           *string  `json:"status"`
	Category         *string  `json:"category"`
	Location         *string  `json:"location"`
	LastVaccination  *string  `json:"last_vaccination"`
	Pregnant         *bool    `json:"pregnant"`
	ExpectedDelivery *string  `json:"expected_delivery"`
	HealthIssue      *string  `json:"health_issue"`
	Weight30         *float64 `json:"weight_30"`
	Weight60         *float64 `json:"weight_60"`
	Weight90         *float64 `json:"weight_90"`
}

type weightRequest struct {
	Date   string  `json:"date" validate:"required"`
	Weight float64 `json:"weight" validate:"gt=0"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		birth, err := httpx.ParseDate(req.BirthDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		lastVacc, err := httpx.ParseDatePtr(req.LastVaccination)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		delivery, err := httpx.ParseDatePtr(req.ExpectedDelivery)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Code:             req.Code,
			Name:             req.Name,
			Species:          req.Species,
			Breed:            req.Breed,
			Gender:           req.Gender,
			BirthDate:        birth,
			Weight:           req.Weight,
			Status:           req.Status,
			Category:         req.Category,
			Location:         req.Location,
			LastVaccination:  lastVacc,
			Pregnant:         req.Pregnant,
			ExpectedDelivery: delivery,
			HealthIssue:      req.HealthIssue,
			Weight30:         req.Weight30,
			Weight60:         req.Weight60,
			Weight90:         req.Weight90,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, a)
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
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
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
			Code:        req.Code,
			Name:        req.Name,
			Species:     req.Species,
			Breed:       req.Breed,
			Gender:      req.Gender,
			Weight:      req.Weight,
			Status:      req.Status,
			Category:    req.Category,
			Location:    req.Location,
			Pregnant:    req.Pregnant,
			HealthIssue: req.HealthIssue,
			Weight30:    req.Weight30,
			Weight60:    req.Weight60,
			Weight90:    req.Weight90,
		}

		var err error
		if in.BirthDate, err = parseDateField(req.BirthDate); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if in.LastVaccination, err = parseDateField(req.LastVaccination); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if in.ExpectedDelivery, err = parseDateField(req.ExpectedDelivery); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listWeightsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListWeights(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func addWeightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req weightRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		date, err := httpx.ParseDate(req.Date)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		wr, err := svc.AddWeight(r.Context(), chi.URLParam(r, "animalID"), WeightInput{Date: date, Weight: req.Weight})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, wr)
	}
}

func deleteWeightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteWeight(r.Context(), chi.URLParam(r, "weightID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, st)
	}
}

func parseDateField(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return httpx.ParseDatePtr(*s)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "animal não encontrado")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
