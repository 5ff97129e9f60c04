package web

import (
	"bytes"
	"embed"
	"html/template"

	"resume-feedback/internal/feedback"
	"resume-feedback/internal/submission"
)

//go:embed templates/*.html
var templateFiles embed.FS

type roleOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Snapshot submission.Snapshot
	Roles    []roleOption
	Report   *feedback.Report
}

func (d pageData) Analyzing() bool {
	return d.Snapshot.State == submission.StateSubmitting
}

func newPageData(snap submission.Snapshot) pageData {
	data := pageData{Snapshot: snap, Roles: make([]roleOption, 0, len(submission.Roles))}
	for _, role := range submission.Roles {
		data.Roles = append(data.Roles, roleOption{
			Value:    string(role),
			Label:    role.Label(),
			Selected: role == snap.Role,
		})
	}
	if snap.Result != nil {
		report := feedback.BuildReport(snap.Result.Result)
		data.Report = &report
	}
	return data
}

var templateFuncs = template.FuncMap{
	"bandClass":     bandClass,
	"headlineClass": headlineClass,
	"noticeClass":   noticeClass,
}

func parseTemplates() (*template.Template, error) {
	return template.New("index.html").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html")
}

func renderPage(tmpl *template.Template, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// bandClass is the progress bar class for a section or sub-report band.
func bandClass(b feedback.Band) string {
	switch b {
	case feedback.BandHigh:
		return "bg-success"
	case feedback.BandMid:
		return "bg-warning"
	case feedback.BandLow:
		return "bg-danger"
	default:
		return ""
	}
}

// headlineClass is the text class for a headline score band.
func headlineClass(b feedback.Band) string {
	switch b {
	case feedback.BandHigh:
		return "text-success"
	case feedback.BandMid:
		return "text-warning"
	case feedback.BandLow:
		return "text-danger"
	default:
		return ""
	}
}

func noticeClass(k feedback.NoticeKind) string {
	if k == feedback.NoticeSuccess {
		return "alert-success"
	}
	return "alert-warning"
}

