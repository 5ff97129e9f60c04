package submission

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-feedback/internal/analysis"
	"resume-feedback/internal/analyzer"
	"resume-feedback/internal/shared/metrics"
	"resume-feedback/internal/shared/telemetry"
)

// State is the workflow's position in one submission attempt.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Analyzer sends a resume to the analysis service.
type Analyzer interface {
	Analyze(ctx context.Context, req analyzer.Request) (analysis.Payload, error)
}

// Slot holds the latest payload. Replace overwrites it wholesale.
type Slot interface {
	Load(ctx context.Context) (analysis.Payload, bool, error)
	Replace(ctx context.Context, submissionID string, payload analysis.Payload) error
}

// Errors are the three independent messages shown on the form.
type Errors struct {
	File    string `json:"file,omitempty"`
	Role    string `json:"role,omitempty"`
	Generic string `json:"generic,omitempty"`
}

// Snapshot is a consistent view of the workflow for rendering.
type Snapshot struct {
	State        State             `json:"state"`
	FileName     string            `json:"fileName,omitempty"`
	Role         Role              `json:"role,omitempty"`
	Errors       Errors            `json:"errors"`
	CanSubmit    bool              `json:"canSubmit"`
	SubmissionID string            `json:"submissionId,omitempty"`
	Result       *analysis.Payload `json:"-"`
}

// Workflow is the form state of one user: the chosen file and role, the
// field errors and whether a submission is in flight. At most one request to
// the analysis service is outstanding per Workflow.
type Workflow struct {
	analyzer Analyzer
	slot     Slot

	mu           sync.Mutex
	state        State
	file         File
	role         Role
	errs         Errors
	submissionID string
}

// NewWorkflow constructs an idle workflow.
func NewWorkflow(a Analyzer, slot Slot) *Workflow {
	return &Workflow{analyzer: a, slot: slot, state: StateIdle}
}

// ChooseFile records the user's file choice. A zero File is a cancelled
// picker and changes nothing.
func (w *Workflow) ChooseFile(f File) error {
	if f.IsZero() {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !AllowedType(f.DeclaredType) {
		w.file = File{}
		w.errs.File = MessageFileType
		return ErrUnsupportedFile
	}
	w.file = f
	w.errs.File = ""
	return nil
}

// SelectRole records the chosen job role. An empty value clears the choice.
func (w *Workflow) SelectRole(raw string) error {
	role, err := ParseRole(raw)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.role = ""
		w.errs.Role = MessageRoleNeeded
		return err
	}
	w.role = role
	if role != "" {
		w.errs.Role = ""
	}
	return nil
}

// Submit validates the form and, when complete, sends it to the analysis
// service. The request runs to completion even if ctx is cancelled; the
// analyzer's own timeout bounds it.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.state == StateSubmitting {
		id := w.submissionID
		w.mu.Unlock()
		metrics.IncSubmissionSkipped()
		telemetry.Warn("submission.skipped", map[string]any{"submission_id": id})
		return ErrSubmissionInFlight
	}

	w.state = StateValidating
	switch {
	case w.file.IsZero():
		w.errs.File = MessageFileNeeded
		w.errs.Role = ""
		w.state = StateIdle
		w.mu.Unlock()
		metrics.IncSubmissionRejected()
		return ErrValidation
	case !w.role.Valid():
		w.errs.Role = MessageRoleNeeded
		w.state = StateIdle
		w.mu.Unlock()
		metrics.IncSubmissionRejected()
		return ErrValidation
	}

	w.errs.Role = ""
	w.errs.Generic = ""
	w.state = StateSubmitting
	id := uuid.NewString()
	w.submissionID = id
	req := analyzer.Request{
		FileName:    w.file.Name,
		ContentType: w.file.DeclaredType,
		Data:        w.file.Data,
		JobRole:     string(w.role),
	}
	w.mu.Unlock()

	fields := map[string]any{
		"submission_id": id,
		"job_role":      req.JobRole,
		"file_name":     req.FileName,
		"content_type":  req.ContentType,
		"size_bytes":    len(req.Data),
	}
	telemetry.Info("submission.started", fields)
	metrics.IncSubmissionStarted()

	detached := context.WithoutCancel(ctx)
	start := time.Now()
	payload, err := w.analyzer.Analyze(detached, req)
	elapsed := time.Since(start)
	metrics.ObserveSubmissionDurationMs(float64(elapsed.Milliseconds()))
	if err == nil {
		err = w.slot.Replace(detached, id, payload)
	}
	fields["duration_ms"] = elapsed.Milliseconds()

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.errs.Generic = analyzer.UserMessage(err)
		w.state = StateFailed
		metrics.IncSubmissionFailed()
		fields["error"] = err.Error()
		var svcErr *analyzer.ServiceError
		if errors.As(err, &svcErr) {
			fields["service_status"] = svcErr.Status
		}
		telemetry.Error("submission.failed", fields)
		return err
	}
	w.state = StateSucceeded
	metrics.IncSubmissionSucceeded()
	telemetry.Info("submission.succeeded", fields)
	return nil
}

// Snapshot returns the form state together with the slot's current result.
func (w *Workflow) Snapshot(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	snap := Snapshot{
		State:        w.state,
		FileName:     w.file.Name,
		Role:         w.role,
		Errors:       w.errs,
		CanSubmit:    w.state != StateSubmitting && !w.file.IsZero(),
		SubmissionID: w.submissionID,
	}
	w.mu.Unlock()

	payload, ok, err := w.slot.Load(ctx)
	if err != nil {
		return snap, err
	}
	if ok {
		snap.Result = &payload
	}
	return snap, nil
}
