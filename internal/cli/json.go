package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/rileyhilliard/remotes/internal/config"
	"github.com/rileyhilliard/remotes/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound     = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid      = "CONFIG_INVALID"
	ErrCodeConflictingFormats = "CONFLICTING_FORMATS"
	ErrCodeHostNotFound       = "HOST_NOT_FOUND"
	ErrCodeUnknown            = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: true, Data: data})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: false, Error: ErrorToJSON(err)})
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	e, ok := errors.As(err)
	if !ok {
		return &JSONError{Code: ErrCodeUnknown, Message: err.Error()}
	}

	return &JSONError{
		Code:       mapErrorCode(err),
		Message:    e.Message,
		Suggestion: e.Suggestion,
	}
}

func mapErrorCode(err error) string {
	switch {
	case stderrors.Is(err, config.ErrConflictingFormats):
		return ErrCodeConflictingFormats
	case errors.IsCode(err, errors.ErrConfigNotFound):
		return ErrCodeConfigNotFound
	case errors.IsCode(err, errors.ErrConfig):
		return ErrCodeConfigInvalid
	case errors.IsCode(err, errors.ErrExec):
		return ErrCodeHostNotFound
	}
	return ErrCodeUnknown
}
