package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"resume-feedback/internal/analysis"
	"resume-feedback/internal/shared/util"
)

const (
	defaultTimeout = 120 * time.Second
	fallbackName   = "resume"
	// maxResponseBytes bounds how much of a service answer is read.
	maxResponseBytes = 8 << 20
)

// Request is one resume submission.
type Request struct {
	FileName    string
	ContentType string
	Data        []byte
	JobRole     string
}

// Client posts resumes to the analysis service.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient constructs a client for the analysis endpoint.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("ANALYZER_URL is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Analyze sends one multipart request and decodes the analysis payload.
func (c *Client) Analyze(ctx context.Context, in Request) (analysis.Payload, error) {
	if len(in.Data) == 0 || strings.TrimSpace(in.JobRole) == "" {
		return analysis.Payload{}, ErrInvalidRequest
	}
	body, contentType, err := encodeMultipart(in)
	if err != nil {
		return analysis.Payload{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return analysis.Payload{}, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return analysis.Payload{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return analysis.Payload{}, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return analysis.Payload{}, fmt.Errorf("analysis response read: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return analysis.Payload{}, &ServiceError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	payload, err := analysis.Decode(raw)
	if err != nil {
		return analysis.Payload{}, fmt.Errorf("analysis response parse: %w", err)
	}
	return payload, nil
}

func encodeMultipart(in Request) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	name, err := util.SanitizeFileName(in.FileName)
	if err != nil {
		name = fallbackName
	}
	contentType := strings.TrimSpace(in.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(name)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(in.Data); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("job_role", in.JobRole); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// errorMessage extracts the "error" string of a failure body, if any.
func errorMessage(raw []byte) string {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	var msg string
	if err := json.Unmarshal(body.Error, &msg); err != nil {
		return ""
	}
	return strings.TrimSpace(msg)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
