package analyzer

import (
	"errors"
	"fmt"
	"strings"
)

// FallbackMessage is shown when a failure carries no service message.
const FallbackMessage = "Error analyzing resume"

var (
	// ErrTimeout reports that the analysis service did not answer in time.
	ErrTimeout = errors.New("analysis service timeout")
	// ErrInvalidRequest reports a request missing its file or role.
	ErrInvalidRequest = errors.New("invalid analysis request")
)

// ServiceError is a non-2xx answer from the analysis service.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("analysis service status %d", e.Status)
	}
	return fmt.Sprintf("analysis service status %d: %s", e.Status, e.Message)
}

// UserMessage returns the text to show for a failed submission: the service's
// own error string when it sent one, the fallback otherwise.
func UserMessage(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		if msg := strings.TrimSpace(svcErr.Message); msg != "" {
			return svcErr.Message
		}
	}
	return FallbackMessage
}
