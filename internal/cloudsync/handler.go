package cloudsync

import (
	"errors"
	"net/http"

	"rebanho-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/sync", func(sr chi.Router) {
		sr.Post("/", pushHandler(svc))
		sr.Get("/", lastSyncHandler(svc))
	})
}

func pushHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Push(r.Context())
		if errors.Is(err, ErrDisabled) {
			httpx.WriteError(w, http.StatusServiceUnavailable, "sincronização em nuvem desligada")
			return
		}
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, sum)
	}
}

type lastSyncResponse struct {
	SyncedAt any `json:"synced_at"`
}

func lastSyncHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		at, err := svc.LastSync(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if at == nil {
			httpx.WriteJSON(w, http.StatusOK, lastSyncResponse{SyncedAt: nil})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, lastSyncResponse{SyncedAt: at})
	}
}
