package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/dossier-desk/pkg/handlers/dossier"
	dossierdeskmiddleware "github.com/de-tools/dossier-desk/pkg/server/middleware"
	dossiersvc "github.com/de-tools/dossier-desk/pkg/services/dossier"
	"github.com/de-tools/dossier-desk/pkg/services/export"
	"github.com/de-tools/dossier-desk/pkg/services/geolocate"
	"github.com/de-tools/dossier-desk/pkg/services/htmlrender"
	"github.com/de-tools/dossier-desk/pkg/services/translate"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Registry   *dossiersvc.Registry
	Translator *translate.Service
	Locator    geolocate.Locator
	Exporter   *export.Exporter
	Renderer   *htmlrender.Renderer
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	handler := handlers.NewHandler(deps.Registry, deps.Translator, deps.Locator, deps.Exporter, deps.Renderer)

	router := chi.NewRouter()

	router.Use(dossierdeskmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/schema", handler.GetSchema)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", handler.CreateSession)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetSession)
				r.Delete("/", handler.DeleteSession)

				r.Put("/fields", handler.ReplaceFields)
				r.Put("/fields/{key}", handler.SetField)
				r.Put("/report-type", handler.SetReportType)
				r.Post("/history", handler.AppendHistory)

				r.Put("/photos/{slot}", handler.SetPhoto)
				r.Delete("/photos/{slot}", handler.RemovePhoto)
				r.Post("/media/{kind}", handler.AddMedia)
				r.Delete("/media/{kind}/{index}", handler.RemoveMedia)

				r.Get("/document", handler.GetDocument)
				r.Get("/preview", handler.GetPreview)

				r.Get("/save", handler.SaveSnapshot)
				r.Post("/load", handler.LoadSnapshot)

				r.Post("/translate", handler.Translate)
				r.Post("/gps", handler.CaptureGPS)

				r.Post("/export/pdf", handler.ExportPDF)
				r.Post("/export/doc", handler.ExportWord)
			})
		})
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
