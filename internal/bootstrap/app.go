package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-feedback/internal/analyzer"
	"resume-feedback/internal/services/health"
	"resume-feedback/internal/shared/config"
	"resume-feedback/internal/shared/server"
	"resume-feedback/internal/shared/storage/db"
	"resume-feedback/internal/slots"
	"resume-feedback/internal/submission"
	"resume-feedback/internal/web"
)

// App holds shared dependencies.
type App struct {
	Config      config.Config
	Router      *gin.Engine
	DB          *sql.DB
	Analyzer    *analyzer.Client
	Slots       slots.Store
	Sessions    *web.Registry
	PageHandler *web.Handler
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := analyzer.NewClient(cfg.AnalyzerURL, cfg.AnalyzerTimeout)
	if err != nil {
		return nil, err
	}

	var store slots.Store
	if sqlDB != nil {
		store = &slots.PGStore{DB: sqlDB}
	} else {
		store = slots.NewMemoryStore()
	}

	sessions := web.NewRegistry(func(sessionID string) *submission.Workflow {
		return submission.NewWorkflow(client, slots.Bind(store, sessionID))
	})
	pages, err := web.NewHandler(sessions, cfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		DB:          sqlDB,
		Analyzer:    client,
		Slots:       store,
		Sessions:    sessions,
		PageHandler: pages,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:      cfg,
		Health:      health.NewService(sqlDB),
		PageHandler: pages,
	})

	log.Printf("bootstrap: analyzer endpoint %s (timeout %s)", client.Endpoint(), cfg.AnalyzerTimeout)
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory result slots")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory result slots: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory result slots: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
