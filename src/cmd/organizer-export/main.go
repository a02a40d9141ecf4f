package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"organizer/src/domain/catalog"
	"organizer/src/domain/registry"
	"organizer/src/helper/env"
	"organizer/src/services/conversion"
	"organizer/src/services/datagen"
	"organizer/src/services/export"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),

		// Providers
		fx.Provide(
			newLogger,
			newRegistry,
			newConversionService,
			newExportService,
			newGenerator,
		),

		// Invocations
		fx.Invoke(registerExportHooks),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		log.Fatalf("Failed to stop application: %v", err)
	}
}

func newLogger() *slog.Logger {
	level, levelErr := env.GetLogLevel("LOG_LEVEL", slog.LevelInfo)

	// stdout fica reservado para o JSON exportado
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)

	if levelErr != nil {
		logger.Warn("invalid LOG_LEVEL, using info", "error", levelErr)
	}
	return logger
}

// newRegistry monta o registro uma única vez; ele é imutável daqui em diante.
func newRegistry(logger *slog.Logger) (*registry.Registry, error) {
	namespaces := env.GetList("REGISTRY_NAMESPACES", registry.DefaultNamespaces...)

	reg, err := catalog.NewRegistry(namespaces)
	if err != nil {
		return nil, err
	}

	logger.Info("type registry ready", "namespaces", namespaces, "types", len(reg.Names()))
	return reg, nil
}

func newConversionService(logger *slog.Logger, reg *registry.Registry) *conversion.ConversionService {
	return conversion.NewConversionService(logger, reg)
}

func newExportService(logger *slog.Logger, conversionService *conversion.ConversionService) *export.ExportService {
	return export.NewExportService(logger, conversionService)
}

func newGenerator() *datagen.Generator {
	defaults := datagen.DefaultConfig()

	return datagen.NewGenerator(datagen.Config{
		Seed:          env.GetInt64("EXPORT_SEED", defaults.Seed),
		People:        env.GetInt("EXPORT_PEOPLE", defaults.People),
		Organizations: env.GetInt("EXPORT_ORGANIZATIONS", defaults.Organizations),
		Users:         env.GetInt("EXPORT_USERS", defaults.Users),
		Accounts:      env.GetInt("EXPORT_ACCOUNTS", defaults.Accounts),
		Groups:        env.GetInt("EXPORT_GROUPS", defaults.Groups),
		Projects:      env.GetInt("EXPORT_PROJECTS", defaults.Projects),
	})
}

// registerExportHooks gera o grafo, exporta e encerra a aplicação.
func registerExportHooks(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	logger *slog.Logger,
	generator *datagen.Generator,
	exportService *export.ExportService,
) {
	pretty := env.GetBool("EXPORT_PRETTY", true)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			dataset, err := generator.Generate()
			if err != nil {
				return err
			}

			if err := exportService.Export(os.Stdout, dataset, pretty); err != nil {
				return err
			}

			return shutdowner.Shutdown()
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("export finished")
			return nil
		},
	})
}
