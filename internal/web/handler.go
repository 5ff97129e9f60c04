package web

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-feedback/internal/feedback"
	"resume-feedback/internal/shared/server/middleware"
	"resume-feedback/internal/shared/server/respond"
	"resume-feedback/internal/shared/telemetry"
	"resume-feedback/internal/submission"
)

const defaultMaxUploadBytes = 16 << 20

// Handler serves the resume form and its results.
type Handler struct {
	Sessions       *Registry
	MaxUploadBytes int64
	tmpl           *template.Template
}

// NewHandler constructs a Handler with the embedded page template.
func NewHandler(sessions *Registry, maxUploadBytes int64) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Sessions: sessions, MaxUploadBytes: maxUploadBytes, tmpl: tmpl}, nil
}

// RegisterRoutes attaches the page routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
	r.POST("/file", h.chooseFile)
	r.POST("/role", h.selectRole)
	r.POST("/analyze", h.analyze)
}

// RegisterAPI attaches the JSON routes to the api group.
func (h *Handler) RegisterAPI(rg *gin.RouterGroup) {
	rg.GET("/feedback", h.feedback)
}

type feedbackResponse struct {
	Workflow submission.Snapshot `json:"workflow"`
	Report   *feedback.Report    `json:"report"`
}

func (h *Handler) workflow(c *gin.Context) *submission.Workflow {
	return h.Sessions.Get(middleware.SessionIDFromContext(c))
}

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, h.workflow(c))
}

func (h *Handler) chooseFile(c *gin.Context) {
	w := h.workflow(c)
	file, ok := h.readFile(c)
	if !ok {
		return
	}
	status := http.StatusOK
	if err := w.ChooseFile(file); err != nil {
		status = http.StatusBadRequest
	}
	h.render(c, status, w)
}

func (h *Handler) selectRole(c *gin.Context) {
	w := h.workflow(c)
	status := http.StatusOK
	if err := w.SelectRole(c.PostForm("job_role")); err != nil {
		status = http.StatusBadRequest
	}
	h.render(c, status, w)
}

func (h *Handler) analyze(c *gin.Context) {
	w := h.workflow(c)
	file, ok := h.readFile(c)
	if !ok {
		return
	}
	if err := w.ChooseFile(file); err != nil {
		h.render(c, http.StatusBadRequest, w)
		return
	}
	if role, present := c.GetPostForm("job_role"); present {
		// An unknown role leaves the role error set; Submit then rejects the form.
		_ = w.SelectRole(role)
	}

	before, _ := w.Snapshot(c.Request.Context())
	err := w.Submit(c.Request.Context())
	after, _ := w.Snapshot(c.Request.Context())
	c.Set(middleware.SubmissionIDKey, after.SubmissionID)
	c.Set(middleware.StatusTransitionKey, string(before.State)+"->"+string(after.State))

	status := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, submission.ErrSubmissionInFlight):
		status = http.StatusConflict
	case errors.Is(err, submission.ErrValidation):
		status = http.StatusBadRequest
	default:
		status = http.StatusBadGateway
	}
	h.render(c, status, w)
}

func (h *Handler) feedback(c *gin.Context) {
	snap, err := h.workflow(c).Snapshot(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load result", nil)
		return
	}
	resp := feedbackResponse{Workflow: snap}
	if snap.Result != nil {
		report := feedback.BuildReport(snap.Result.Result)
		resp.Report = &report
	}
	respond.OK(c, resp)
}

// readFile extracts the optional "file" part. A missing part yields a zero
// File. On a malformed or oversized body the error response is already sent.
func (h *Handler) readFile(c *gin.Context) (submission.File, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return submission.File{}, true
		case errors.As(err, &tooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds upload limit", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid upload", nil)
		}
		return submission.File{}, false
	}

	f, err := header.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return submission.File{}, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return submission.File{}, false
	}
	return submission.File{
		Name:         header.Filename,
		DeclaredType: header.Header.Get("Content-Type"),
		Data:         data,
	}, true
}

func (h *Handler) render(c *gin.Context, status int, w *submission.Workflow) {
	snap, err := w.Snapshot(c.Request.Context())
	if err != nil {
		telemetry.Error("page.snapshot_failed", map[string]any{
			"session_id": middleware.SessionIDFromContext(c),
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load result", nil)
		return
	}
	body, err := renderPage(h.tmpl, newPageData(snap))
	if err != nil {
		telemetry.Error("page.render_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render page", nil)
		return
	}
	c.Data(status, "text/html; charset=utf-8", body)
}
