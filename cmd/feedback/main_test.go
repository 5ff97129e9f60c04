package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixturePath = "../../internal/analysis/testdata/full_result.json"

func TestRunRendersSavedPayload(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-payload", fixturePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"ANALYSIS RESULTS", "INDUSTRY ANALYSIS: DATA SCIENTIST", "Word Count: 412"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunJSONOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-payload", fixturePath, "-json"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	var report map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if _, ok := report["industry"]; !ok {
		t.Fatalf("expected industry card in report")
	}
}

func TestRunSubmitsFile(t *testing.T) {
	fixture, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var gotRole, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse: %v", err)
		}
		gotRole = r.FormValue("job_role")
		if _, header, err := r.FormFile("file"); err == nil {
			gotType = header.Header.Get("Content-Type")
		}
		_, _ = w.Write(fixture)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "cv.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n1 0 obj\n"), 0o600); err != nil {
		t.Fatalf("write resume: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", path, "-role", "finance", "-endpoint", srv.URL}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if gotRole != "finance" || gotType != "application/pdf" {
		t.Fatalf("unexpected request role=%q type=%q", gotRole, gotType)
	}
}

func TestRunReportsValidationMessage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-role", "finance", "-endpoint", "http://127.0.0.1:1"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Please select a file first") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}
