package analyzer

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"resume-feedback/internal/analysis"
)

func newTestClient(t *testing.T, url string, timeout time.Duration) *Client {
	t.Helper()
	client, err := NewClient(url, timeout)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	if _, err := NewClient("  ", time.Second); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
	client, err := NewClient("http://localhost:5000/api/analyze", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.httpClient.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout, got %s", client.httpClient.Timeout)
	}
}

func TestAnalyzeSendsMultipart(t *testing.T) {
	fixture, err := os.ReadFile("../analysis/testdata/full_result.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	var (
		gotRole        string
		gotFileName    string
		gotContentType string
		gotData        string
		requests       int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		gotRole = r.FormValue("job_role")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotData = string(data)
		gotFileName = header.Filename
		gotContentType = header.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, time.Second)
	payload, err := client.Analyze(context.Background(), Request{
		FileName:    "my/cv.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 test"),
		JobRole:     "data_scientist",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected one request, got %d", requests)
	}
	if gotRole != "data_scientist" {
		t.Fatalf("unexpected job_role %q", gotRole)
	}
	if gotFileName != "my_cv.pdf" {
		t.Fatalf("unexpected filename %q", gotFileName)
	}
	if gotContentType != "application/pdf" {
		t.Fatalf("unexpected part content type %q", gotContentType)
	}
	if gotData != "%PDF-1.4 test" {
		t.Fatalf("unexpected file data %q", gotData)
	}
	if string(payload.Raw) != string(fixture) {
		t.Fatalf("expected raw payload to be kept verbatim")
	}
	if payload.Result.OverallScore.Value != 78 {
		t.Fatalf("unexpected overall score %v", payload.Result.OverallScore)
	}
}

func TestAnalyzeServiceErrors(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "structured", status: http.StatusBadRequest, body: `{"error":"Industry 'chef' not supported"}`, wantMessage: "Industry 'chef' not supported"},
		{name: "no error field", status: http.StatusInternalServerError, body: `{"detail":"boom"}`, wantMessage: FallbackMessage},
		{name: "non-string error", status: http.StatusBadRequest, body: `{"error":{"code":1}}`, wantMessage: FallbackMessage},
		{name: "html", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantMessage: FallbackMessage},
		{name: "empty", status: http.StatusServiceUnavailable, body: ``, wantMessage: FallbackMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL, time.Second)
			_, err := client.Analyze(context.Background(), Request{FileName: "cv.pdf", ContentType: "application/pdf", Data: []byte("x"), JobRole: "finance"})
			var svcErr *ServiceError
			if !errors.As(err, &svcErr) {
				t.Fatalf("expected ServiceError, got %v", err)
			}
			if svcErr.Status != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, svcErr.Status)
			}
			if got := UserMessage(err); got != tc.wantMessage {
				t.Fatalf("expected message %q, got %q", tc.wantMessage, got)
			}
		})
	}
}

func TestAnalyzeInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, time.Second)
	_, err := client.Analyze(context.Background(), Request{FileName: "cv.pdf", ContentType: "application/pdf", Data: []byte("x"), JobRole: "finance"})
	if !errors.Is(err, analysis.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
	if got := UserMessage(err); got != FallbackMessage {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestAnalyzeTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := newTestClient(t, srv.URL, 50*time.Millisecond)
	_, err := client.Analyze(context.Background(), Request{FileName: "cv.pdf", ContentType: "application/pdf", Data: []byte("x"), JobRole: "finance"})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestAnalyzeRejectsIncompleteRequest(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", time.Second)
	if _, err := client.Analyze(context.Background(), Request{JobRole: "finance"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestEncodeMultipartFallbackName(t *testing.T) {
	body, contentType, err := encodeMultipart(Request{FileName: "../x.pdf", Data: []byte("x"), JobRole: "finance"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data; boundary=") {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if !strings.Contains(body.String(), `filename="resume"`) {
		t.Fatalf("expected fallback file name in body")
	}
	if !strings.Contains(body.String(), "Content-Type: application/octet-stream") {
		t.Fatalf("expected default part content type in body")
	}
}
