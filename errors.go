package herald

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Unique identifier for categorizing errors on both library and caller sides
type ErrorCode string

const (
	ErrUnknown         ErrorCode = "err_unknown_error"
	ErrInternal        ErrorCode = "err_internal_error"
	ErrInvalidCORS     ErrorCode = "err_invalid_cors_config"
	ErrUnknownStrategy ErrorCode = "err_unknown_cache_strategy"
	ErrInvalidJSON     ErrorCode = "err_invalid_json"
)

// Standardized error type with rich context for debugging
type HeraldError struct {
	Original   error     // The underlying error being wrapped
	Code       ErrorCode // Caller-facing error code
	StatusCode int       // HTTP status code the condition maps to
	Message    string    // Human-readable error message

	// Debug information automatically captured
	file     string
	line     int
	function string
}

// Maps error codes to HTTP status codes and default messages
type ErrorDef struct {
	Message    string
	StatusCode int
}

var PredefinedErrors = map[ErrorCode]ErrorDef{
	ErrUnknown:         {"Unknown error", http.StatusInternalServerError},
	ErrInternal:        {"Internal error", http.StatusInternalServerError},
	ErrInvalidCORS:     {"Invalid CORS configuration", http.StatusInternalServerError},
	ErrUnknownStrategy: {"Unknown cache strategy", http.StatusInternalServerError},
	ErrInvalidJSON:     {"Invalid JSON", http.StatusInternalServerError},
}

func (e *HeraldError) Error() string {
	base := fmt.Sprintf("[herald:%s] %s", e.Code, e.Message)
	if e.Original != nil {
		return fmt.Sprintf("%s: %v", base, e.Original)
	}
	return base
}

func (e *HeraldError) Unwrap() error {
	return e.Original
}

func New(code ErrorCode, msg string) *HeraldError {
	def, ok := PredefinedErrors[code]
	if !ok {
		def = PredefinedErrors[ErrUnknown]
	}

	if msg == "" {
		msg = def.Message
	}

	err := &HeraldError{
		Code:       code,
		StatusCode: def.StatusCode,
		Message:    msg,
	}

	// Automatically capture caller information for debugging
	if pc, file, line, ok := runtime.Caller(1); ok {
		err.file = file
		err.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			err.function = fn.Name()
		}
	}

	return err
}

func Newf(code ErrorCode, format string, args ...interface{}) *HeraldError {
	return New(code, fmt.Sprintf(format, args...))
}

func Wrap(err error, code ErrorCode, msg string) *HeraldError {
	if err == nil {
		return nil
	}

	heraldErr := New(code, msg)
	heraldErr.Original = err

	if pc, file, line, ok := runtime.Caller(1); ok {
		heraldErr.file = file
		heraldErr.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			heraldErr.function = fn.Name()
		}
	}

	return heraldErr
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HeraldError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	var heraldErr *HeraldError
	if errors.As(err, &heraldErr) {
		return heraldErr.Code == code
	}

	return false
}

// Logs errors with appropriate context
func LogError(logger *zerolog.Logger, err error) {
	if err == nil || logger == nil {
		return
	}

	event := logger.Error().Err(err)

	var heraldErr *HeraldError
	if errors.As(err, &heraldErr) {
		event = event.
			Str("error_code", string(heraldErr.Code)).
			Str("file", heraldErr.file).
			Int("line", heraldErr.line).
			Str("function", heraldErr.function)
	}

	event.Msg("[herald-error] Error occurred")
}
