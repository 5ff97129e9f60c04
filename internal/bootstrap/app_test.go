package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resume-feedback/internal/shared/config"
	"resume-feedback/internal/slots"
)

func TestBuildDevUsesMemorySlots(t *testing.T) {
	app, err := Build(config.Config{
		Env:             "dev",
		AnalyzerURL:     "http://localhost:5000/api/analyze",
		AnalyzerTimeout: time.Second,
		SessionCookie:   "rf_session",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	if app.DB != nil {
		t.Fatalf("expected no database in dev without DATABASE_URL")
	}
	if _, ok := app.Slots.(*slots.MemoryStore); !ok {
		t.Fatalf("expected memory slots, got %T", app.Slots)
	}

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "Resume Analyzer") {
		t.Fatalf("expected page, got %d", resp.Code)
	}
	if app.Sessions.Len() != 1 {
		t.Fatalf("expected one session, got %d", app.Sessions.Len())
	}
}

func TestBuildProductionRequiresDatabase(t *testing.T) {
	_, err := Build(config.Config{Env: "production", AnalyzerURL: "http://analyzer"})
	if err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}

func TestBuildRequiresAnalyzerURL(t *testing.T) {
	if _, err := Build(config.Config{Env: "dev"}); err == nil {
		t.Fatalf("expected error without analyzer url")
	}
}
