package health

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStatusMemory(t *testing.T) {
	status, ok := NewService(nil).Status(context.Background())
	if !ok || status["store"] != "memory" {
		t.Fatalf("unexpected status %v ok=%v", status, ok)
	}
}

func TestStatusPostgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()
	status, ok := NewService(db).Status(context.Background())
	if !ok || status["store"] != "postgres" {
		t.Fatalf("unexpected status %v ok=%v", status, ok)
	}

	mock.ExpectPing().WillReturnError(errors.New("down"))
	status, ok = NewService(db).Status(context.Background())
	if ok || status["ok"] != false {
		t.Fatalf("expected unhealthy status, got %v", status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
