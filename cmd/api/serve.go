package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/one-on-one-manager/internal/adapter/handler"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/repository"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/one-on-one-manager/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/metrics"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/storage"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analytics"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/attribution"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/auth"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/calendar"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/meetings"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/notes"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/people"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/tasks"
	pkgai "github.com/johnquangdev/one-on-one-manager/pkg/ai"
	"github.com/johnquangdev/one-on-one-manager/pkg/config"
	"github.com/johnquangdev/one-on-one-manager/pkg/jwt"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("connecting to database")
	db, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer database.CloseDB(db) //nolint:errcheck

	if cfg.Database.AutoMigrate {
		dialect, _ := cfg.Database.Dialect()
		if err := database.Migrate(db, dialect, logger); err != nil {
			return err
		}
	} else {
		logger.Info("skipping migrations; run `oneonone migrate` to update the schema")
	}

	m := metrics.NewMetrics()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewPersonRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// AI
	providers, err := pkgai.NewProviders(cfg.AI)
	if err != nil {
		return err
	}
	if len(providers.Text()) == 0 {
		logger.Warn("no AI provider configured, using keyword analysis")
	}
	noteAnalyzer := analyzer.NewAnalyzer(providers, cfg.AI, m, logger)

	var archiver calendar.ScreenshotArchiver
	if cfg.StorageEnabled() {
		client, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			logger.Warn("screenshot archive disabled", zap.Error(err))
		} else {
			archiver = client
			logger.Info("screenshot archive enabled", zap.String("bucket", cfg.Storage.BucketName))
		}
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Use cases
	authService := auth.NewAuthService(userRepo, jwtManager)
	assigned := attribution.NewService(userRepo, personRepo, taskRepo, logger)

	handlers := handler.Handlers{
		Auth:      handler.NewAuth(authService, logger),
		Person:    handler.NewPersonHandler(people.NewPeopleService(personRepo), logger),
		Meeting:   handler.NewMeetingHandler(meetings.NewMeetingService(meetingRepo, personRepo, noteAnalyzer), logger),
		Task:      handler.NewTaskHandler(tasks.NewTaskService(taskRepo, personRepo, meetingRepo, assigned), logger),
		Calendar:  handler.NewCalendarHandler(calendar.NewCalendarService(calendarRepo, noteAnalyzer, archiver, logger), logger),
		Note:      handler.NewNoteHandler(notes.NewNoteService(noteRepo, personRepo), logger),
		Analytics: handler.NewAnalyticsHandler(analytics.NewAnalyticsService(analyticsRepo, personRepo, meetingRepo, noteAnalyzer), logger),
	}

	e := echo.New()
	router := handler.NewRouter(
		cfg,
		handlers,
		httpmw.EchoAuth(jwtManager),
		httpmw.UnitOfWork(db, logger),
		[]echo.MiddlewareFunc{httpmw.RequestLogger(logger), httpmw.Metrics(m)},
		logger,
	)
	router.Setup(e)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
