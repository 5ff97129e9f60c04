package submission

import "errors"

// Messages shown next to the form fields.
const (
	MessageFileType   = "Please upload a PDF or DOCX file"
	MessageFileNeeded = "Please select a file first"
	MessageRoleNeeded = "Please select a job role"
)

var (
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrValidation         = errors.New("submission form incomplete")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrUnknownRole        = errors.New("unknown job role")
)
