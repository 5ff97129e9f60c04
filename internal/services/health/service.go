package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a health service. db may be nil when slots live in memory.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status reports overall health and which result store is in use.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	if s == nil || s.DB == nil {
		return map[string]any{"ok": true, "store": "memory"}, true
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		return map[string]any{"ok": false, "store": "postgres", "error": "database unreachable"}, false
	}
	return map[string]any{"ok": true, "store": "postgres"}, true
}
