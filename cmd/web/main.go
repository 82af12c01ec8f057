package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/de-tools/dossier-desk/pkg/server"
	"github.com/de-tools/dossier-desk/pkg/services/config"
	"github.com/de-tools/dossier-desk/pkg/services/dossier"
	"github.com/de-tools/dossier-desk/pkg/services/export"
	"github.com/de-tools/dossier-desk/pkg/services/geolocate"
	"github.com/de-tools/dossier-desk/pkg/services/htmlrender"
	"github.com/de-tools/dossier-desk/pkg/services/translate"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the dossier web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (optional, environment overrides apply)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	translator, err := buildTranslator(ctx, cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("translation disabled")
		translator = translate.NewService(translate.Disabled{})
	}

	renderer := htmlrender.NewRenderer()
	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Registry:   dossier.NewRegistry(),
			Translator: translator,
			Locator:    geolocate.NewHTTPLocator(cfg.GeoLookupURL),
			Exporter:   export.NewExporter(renderer, export.NewRodEngine()),
			Renderer:   renderer,
			Logger:     logger,
		},
	})

	return api.Start()
}

func buildTranslator(ctx context.Context, cfg *config.Config) (*translate.Service, error) {
	client, err := translate.NewGenAIClient(ctx, cfg.GenAIKey, cfg.GenAIModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}
	return translate.NewService(client), nil
}
