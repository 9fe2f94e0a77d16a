package router

import (
	"net/http"

	"rebanho-backend/internal/adapters/storage/local"
	"rebanho-backend/internal/cloudsync"
	"rebanho-backend/internal/domain/animals"
	"rebanho-backend/internal/domain/breeding"
	"rebanho-backend/internal/domain/finance"
	"rebanho-backend/internal/domain/health"
	"rebanho-backend/internal/domain/notes"
	"rebanho-backend/internal/domain/reports"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Store storage.Store
	Log   logger.Logger

	// Opcional: nil deixa a rota /sync respondendo 503.
	Pusher cloudsync.Pusher
}

func New(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Repositórios sobre a porta Store
	animalRepo := local.NewAnimalRepository(opts.Store, opts.Log)
	weightRepo := local.NewWeightRepository(opts.Store, opts.Log)
	vaccRepo := local.NewVaccinationRepository(opts.Store, opts.Log)
	medRepo := local.NewMedicationRepository(opts.Store, opts.Log)
	noteRepo := local.NewNoteRepository(opts.Store, opts.Log)
	breedingRepo := local.NewBreedingRepository(opts.Store, opts.Log)
	recordRepo := local.NewFinancialRecordRepository(opts.Store, opts.Log)
	accountRepo := local.NewFinancialAccountRepository(opts.Store, opts.Log)
	costCenterRepo := local.NewCostCenterRepository(opts.Store, opts.Log)
	budgetRepo := local.NewBudgetRepository(opts.Store, opts.Log)
	reportRepo := local.NewReportRepository(opts.Store, opts.Log)

	// Serviços por módulo; o painel do rebanho lê vacinações e receita
	// através das interfaces estreitas de animals.
	healthSvc := health.NewService(vaccRepo, medRepo)
	financeSvc := finance.NewService(recordRepo, accountRepo, costCenterRepo, budgetRepo)
	animalsSvc := animals.NewService(animalRepo, weightRepo, healthSvc, financeSvc)
	breedingSvc := breeding.NewService(breedingRepo)
	notesSvc := notes.NewService(noteRepo)
	reportsSvc := reports.NewService(reports.Sources{
		Animals:      animalRepo,
		Weights:      weightRepo,
		Vaccinations: vaccRepo,
		Medications:  medRepo,
		Breeding:     breedingRepo,
		Financial:    recordRepo,
		Notes:        noteRepo,
	}, reportRepo)
	syncSvc := cloudsync.NewService(opts.Store, opts.Pusher, opts.Log)

	// Rotas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	health.RegisterRoutes(r, healthSvc)
	breeding.RegisterRoutes(r, breedingSvc)
	notes.RegisterRoutes(r, notesSvc)
	finance.RegisterRoutes(r, financeSvc)
	reports.RegisterRoutes(r, reportsSvc)
	cloudsync.RegisterRoutes(r, syncSvc)

	return r
}
