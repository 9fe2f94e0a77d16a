package health

import (
	"errors"
	"net/http"
	"time"

	"rebanho-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Get("/", listVaccinationsHandler(svc))
		vr.Post("/", createVaccinationHandler(svc))
		vr.Get("/{vaccID}", getVaccinationHandler(svc))
		vr.Patch("/{vaccID}", updateVaccinationHandler(svc))
		vr.Delete("/{vaccID}", deleteVaccinationHandler(svc))
	})

	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc))
		mr.Post("/", createMedicationHandler(svc))
		mr.Get("/{medID}", getMedicationHandler(svc))
		mr.Patch("/{medID}", updateMedicationHandler(svc))
		mr.Delete("/{medID}", deleteMedicationHandler(svc))
	})
}

type vaccinationRequest struct {
	AnimalID      string `json:"animal_id" validate:"required"`
	VaccineName   string `json:"vaccine_name" validate:"required"`
	VaccineType   string `json:"vaccine_type"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	AppliedDate   string `json:"applied_date"`
	Veterinarian  string `json:"veterinarian"`
	Notes         string `json:"notes"`
	Status        string `json:"status" validate:"omitempty,oneof=Agendada Aplicada Cancelada"`
}

type vaccinationPatch struct {
	VaccineName   *string `json:"vaccine_name"`
	VaccineType   *string `json:"vaccine_type"`
	ScheduledDate *string `json:"scheduled_date"`
	AppliedDate   *string `json:"applied_date"`
	Veterinarian  *string `json:"veterinarian"`
	Notes         *string `json:"notes"`
	Status        *string `json:"status" validate:"omitempty,oneof=Agendada Aplicada Cancelada"`
}

func createVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vaccinationRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		scheduled, err := httpx.ParseDate(req.ScheduledDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		applied, err := httpx.ParseDatePtr(req.AppliedDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		v, err := svc.CreateVaccination(r.Context(), VaccinationInput{
			AnimalID:      req.AnimalID,
			VaccineName:   req.VaccineName,
			VaccineType:   req.VaccineType,
			ScheduledDate: scheduled,
			AppliedDate:   applied,
			Veterinarian:  req.Veterinarian,
			Notes:         req.Notes,
			Status:        req.Status,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, v)
	}
}

func listVaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListVaccinationsByAnimal(r.Context(), r.URL.Query().Get("animal_id"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetVaccination(r.Context(), chi.URLParam(r, "vaccID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, v)
	}
}

func updateVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vaccinationPatch
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in := VaccinationUpdate{
			VaccineName:  req.VaccineName,
			VaccineType:  req.VaccineType,
			Veterinarian: req.Veterinarian,
			Notes:        req.Notes,
			Status:       req.Status,
		}
		var err error
		if in.ScheduledDate, err = parseDateField(req.ScheduledDate); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if in.AppliedDate, err = parseDateField(req.AppliedDate); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		v, err := svc.UpdateVaccination(r.Context(), chi.URLParam(r, "vaccID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, v)
	}
}

func deleteVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteVaccination(r.Context(), chi.URLParam(r, "vaccID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type medicationRequest struct {
	AnimalID       string `json:"animal_id" validate:"required"`
	MedicationName string `json:"medication_name" validate:"required"`
	Dosage         string `json:"dosage"`
	Date           string `json:"date" validate:"required"`
	AppliedDate    string `json:"applied_date"`
	NextDate       string `json:"next_date"`
	Veterinarian   string `json:"veterinarian"`
	Notes          string `json:"notes"`
	Status         string `json:"status" validate:"omitempty,oneof=Agendado Aplicado Cancelado"`
}

type medicationPatch struct {
	MedicationName *string `json:"medication_name"`
	Dosage         *string `json:"dosage"`
	Date           *string `json:"date"`
	AppliedDate    *string `json:"applied_date"`
	NextDate       *string `json:"next_date"`
	Veterinarian   *string `json:"veterinarian"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status" validate:"omitempty,oneof=Agendado Aplicado Cancelado"`
}

func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req medicationRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		date, err := httpx.ParseDate(req.Date)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		applied, err := httpx.ParseDatePtr(req.AppliedDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		next, err := httpx.ParseDatePtr(req.NextDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		m, err := svc.CreateMedication(r.Context(), MedicationInput{
			AnimalID:       req.AnimalID,
			MedicationName: req.MedicationName,
			Dosage:         req.Dosage,
			Date:           date,
			AppliedDate:    applied,
			NextDate:       next,
			Veterinarian:   req.Veterinarian,
			Notes:          req.Notes,
			Status:         req.Status,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, m)
	}
}

func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMedicationsByAnimal(r.Context(), r.URL.Query().Get("animal_id"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetMedication(r.Context(), chi.URLParam(r, "medID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, m)
	}
}

func updateMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req medicationPatch
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in := MedicationUpdate{
			MedicationName: req.MedicationName,
			Dosage:         req.Dosage,
			Veterinarian:   req.Veterinarian,
			Notes:          req.Notes,
			Status:         req.Status,
		}
		var err error
		if in.Date, err = parseDateField(req.Date); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if in.AppliedDate, err = parseDateField(req.AppliedDate); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if in.NextDate, err = parseDateField(req.NextDate); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		m, err := svc.UpdateMedication(r.Context(), chi.URLParam(r, "medID"), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, m)
	}
}

func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteMedication(r.Context(), chi.URLParam(r, "medID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
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
		httpx.WriteError(w, http.StatusNotFound, "registro não encontrado")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
