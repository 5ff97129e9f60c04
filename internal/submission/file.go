package submission

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	TypePDF  = "application/pdf"
	TypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var allowedTypes = map[string]struct{}{
	TypePDF:  {},
	TypeDOCX: {},
}

// File is a resume chosen by the user. DeclaredType is what the picker or
// browser reported; the content itself is never inspected by the workflow.
type File struct {
	Name         string
	DeclaredType string
	Data         []byte
}

// IsZero reports whether no file was chosen.
func (f File) IsZero() bool {
	return f.Name == "" && f.DeclaredType == "" && len(f.Data) == 0
}

// AllowedType reports whether a declared media type is PDF or DOCX.
// Parameters such as charset are ignored.
func AllowedType(declared string) bool {
	_, ok := allowedTypes[normalizeType(declared)]
	return ok
}

func normalizeType(declared string) string {
	declared = strings.TrimSpace(declared)
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		return mediaType
	}
	return strings.ToLower(declared)
}

// DetectType sniffs the media type of data, for sources that declare none.
func DetectType(data []byte) string {
	return normalizeType(mimetype.Detect(data).String())
}

// ReadFile loads a resume from disk and declares its sniffed type.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read resume: %w", err)
	}
	return File{
		Name:         filepath.Base(path),
		DeclaredType: DetectType(data),
		Data:         data,
	}, nil
}
