package errors

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// ErrorHandler provides interface-specific error handling
type ErrorHandler interface {
	HandleError(err error) error
	FormatError(err error) string
}

// CLIErrorHandler handles errors for the CLI interface
type CLIErrorHandler struct {
	Verbose bool
}

// NewCLIErrorHandler creates a new CLI error handler
func NewCLIErrorHandler(verbose bool) *CLIErrorHandler {
	return &CLIErrorHandler{Verbose: verbose}
}

// HandleError logs (when verbose) and reformats an error for display
func (h *CLIErrorHandler) HandleError(err error) error {
	appErr := GetAppError(err)
	if h.Verbose {
		log.Printf("[%s] %s: %s", appErr.Severity, appErr.Code, appErr.Error())
		if appErr.Cause != nil {
			log.Printf("caused by: %v", appErr.Cause)
		}
	}
	return fmt.Errorf("%s", h.FormatError(appErr))
}

// FormatError formats an error for terminal display
func (h *CLIErrorHandler) FormatError(err error) string {
	appErr := GetAppError(err)
	switch appErr.Severity {
	case SeverityCritical, SeverityError:
		return fmt.Sprintf("error: %s", appErr.Message)
	case SeverityWarning:
		return fmt.Sprintf("warning: %s", appErr.Message)
	default:
		return appErr.Message
	}
}

// HTTPErrorHandler handles errors for the HTTP interface
type HTTPErrorHandler struct {
	IncludeDetails bool
}

// NewHTTPErrorHandler creates a new HTTP error handler
func NewHTTPErrorHandler(includeDetails bool) *HTTPErrorHandler {
	return &HTTPErrorHandler{IncludeDetails: includeDetails}
}

// HandleError logs the error and passes it through
func (h *HTTPErrorHandler) HandleError(err error) error {
	appErr := GetAppError(err)
	log.Printf("[HTTP] [%s] %s: %s", appErr.Severity, appErr.Code, appErr.Error())
	return appErr
}

// FormatError formats an error message for a JSON response body
func (h *HTTPErrorHandler) FormatError(err error) string {
	appErr := GetAppError(err)
	if h.IncludeDetails && appErr.Details != "" {
		return fmt.Sprintf("%s: %s", appErr.Message, appErr.Details)
	}
	return appErr.Message
}

// WriteHTTPError writes a standardized JSON error response
func (h *HTTPErrorHandler) WriteHTTPError(w http.ResponseWriter, err error) {
	appErr := GetAppError(err)
	h.HandleError(appErr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(h.statusCode(appErr))

	body := map[string]interface{}{
		"error": map[string]interface{}{
			"code":    appErr.Code,
			"message": h.FormatError(appErr),
		},
	}
	json.NewEncoder(w).Encode(body)
}

// statusCode maps error codes to HTTP status codes
func (h *HTTPErrorHandler) statusCode(appErr *AppError) int {
	switch appErr.Code {
	case ErrCodeUnknownTemplate, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput, ErrCodeFrontmatterMissing, ErrCodeTypeMismatch:
		return http.StatusBadRequest
	case ErrCodeGeneratorUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
