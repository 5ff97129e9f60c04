package main

// Analyze a resume from the terminal:
//   go run ./cmd/feedback -file ./cv.pdf -role data_scientist
// Render a saved payload without calling the service:
//   go run ./cmd/feedback -payload ./result.json

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"resume-feedback/internal/analysis"
	"resume-feedback/internal/analyzer"
	"resume-feedback/internal/feedback"
	"resume-feedback/internal/shared/config"
	"resume-feedback/internal/shared/telemetry"
	"resume-feedback/internal/slots"
	"resume-feedback/internal/submission"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("feedback", flag.ContinueOnError)
	fs.SetOutput(stderr)
	filePath := fs.String("file", "", "resume to analyze (PDF or DOCX)")
	role := fs.String("role", "", "job role: "+roleList())
	endpoint := fs.String("endpoint", cfg.AnalyzerURL, "analysis service URL")
	timeout := fs.Duration("timeout", cfg.AnalyzerTimeout, "analysis request timeout")
	payloadPath := fs.String("payload", "", "render a saved analysis payload instead of calling the service")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Keep stdout for the report.
	restore := telemetry.SetOutput(stderr)
	defer restore()

	var (
		result analysis.Result
		err    error
	)
	if *payloadPath != "" {
		result, err = loadPayload(*payloadPath)
	} else {
		result, err = analyze(*filePath, *role, *endpoint, *timeout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	report := feedback.BuildReport(result)
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(report)
	} else {
		err = feedback.WriteText(stdout, report)
	}
	if err != nil {
		fmt.Fprintf(stderr, "write report: %v\n", err)
		return 1
	}
	return 0
}

func loadPayload(path string) (analysis.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("read payload: %w", err)
	}
	payload, err := analysis.Decode(data)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return payload.Result, nil
}

func analyze(path, role, endpoint string, timeout time.Duration) (analysis.Result, error) {
	client, err := analyzer.NewClient(endpoint, timeout)
	if err != nil {
		return analysis.Result{}, err
	}
	slot := slots.Bind(slots.NewMemoryStore(), "terminal")
	w := submission.NewWorkflow(client, slot)

	if strings.TrimSpace(path) != "" {
		file, err := submission.ReadFile(path)
		if err != nil {
			return analysis.Result{}, err
		}
		if err := w.ChooseFile(file); err != nil {
			return analysis.Result{}, fmt.Errorf("%s (detected %s)", submission.MessageFileType, file.DeclaredType)
		}
	}
	_ = w.SelectRole(role)

	ctx := context.Background()
	submitErr := w.Submit(ctx)
	snap, err := w.Snapshot(ctx)
	if err != nil {
		return analysis.Result{}, err
	}
	if submitErr != nil {
		return analysis.Result{}, errors.New(firstMessage(snap.Errors, submitErr))
	}
	if snap.Result == nil {
		return analysis.Result{}, errors.New(analyzer.FallbackMessage)
	}
	return snap.Result.Result, nil
}

func firstMessage(errs submission.Errors, fallback error) string {
	for _, msg := range []string{errs.File, errs.Role, errs.Generic} {
		if msg != "" {
			return msg
		}
	}
	return fallback.Error()
}

func roleList() string {
	names := make([]string, 0, len(submission.Roles))
	for _, r := range submission.Roles {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
