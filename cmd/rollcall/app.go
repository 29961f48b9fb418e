package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/phrazzld/rollcall/internal/config"
	"github.com/phrazzld/rollcall/internal/events"
	"github.com/phrazzld/rollcall/internal/platform/csvfile"
	"github.com/phrazzld/rollcall/internal/platform/logger"
	"github.com/phrazzld/rollcall/internal/service"
)

// application holds the wired dependencies of one rollcall run.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	ctx     context.Context
	service service.EnrollmentService

	closeLog func() error
}

// newApplication loads configuration, sets up logging and opens the data files.
// The returned context carries the session logger.
func newApplication(ctx context.Context, configFile string, flags *pflag.FlagSet) (*application, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		DotEnvFile: ".env",
		Flags:      flags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, closeLog, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	log = log.With("session_id", uuid.NewString())
	ctx = logger.WithLogger(ctx, log)

	log.Info("configuration loaded",
		"data_dir", cfg.Storage.DataDir,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format)

	tables, err := csvfile.Open(cfg.Storage.DataDir, csvfile.Files{
		Students:    cfg.Storage.StudentsFile,
		Courses:     cfg.Storage.CoursesFile,
		Enrollments: cfg.Storage.EnrollmentsFile,
	}, log)
	if err != nil {
		log.Error("failed to open data files", "error", err, "data_dir", cfg.Storage.DataDir)
		_ = closeLog()
		return nil, fmt.Errorf("failed to open data files: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(events.NewLogHandler(log, cfg.Log.RedactEmails))

	svc, err := service.NewEnrollmentService(ctx, tables.Students, tables.Courses, tables.Enrollments, emitter, log)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to create enrollment service: %w", err)
	}

	return &application{
		config:   cfg,
		logger:   log,
		ctx:      ctx,
		service:  svc,
		closeLog: closeLog,
	}, nil
}

func (app *application) close() {
	app.logger.Debug("shutting down")
	if err := app.closeLog(); err != nil {
		slog.Warn("failed to close log file", "error", err)
	}
}
