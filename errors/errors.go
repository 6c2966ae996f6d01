package errors

import (
	stderrors "errors"
	"fmt"
)

// DetailPayload is the details key holding an upstream error payload verbatim.
const DetailPayload = "payload"

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if p := e.Payload(); p != "" {
		msg += ": " + p
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// ExitCode returns the process exit code for this error.
func (e *AppError) ExitCode() int { return ExitCodeFor(e.Code) }

// Payload returns the upstream payload attached to the error, if any.
func (e *AppError) Payload() string {
	if e.Details == nil {
		return ""
	}
	switch v := e.Details[DetailPayload].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithPayload attaches an upstream payload and returns the receiver.
// Empty payloads are ignored.
func (e *AppError) WithPayload(payload []byte) *AppError {
	if len(payload) == 0 {
		return e
	}
	return e.WithDetail(DetailPayload, string(payload))
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Input ---

// InvalidInput creates an error for an invalid option or selection.
func InvalidInput(field, reason string) *AppError {
	e := New(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason))
	if field != "" {
		e.WithDetail("field", field)
	}
	return e
}

// Validation creates an input error with a preformatted message.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// MissingField creates an error for a required value that was not supplied.
func MissingField(field string) *AppError {
	return New(ErrCodeMissingField, fmt.Sprintf("missing required field: %s", field)).
		WithDetail("field", field)
}

// --- Acquisition ---

// NoFileProvided creates an error for an upload that produced no files.
func NoFileProvided() *AppError {
	return New(ErrCodeNoFileProvided, "no file uploaded")
}

// AudioNotFound creates an error for a download that left no audio file of
// the expected extension in dir.
func AudioNotFound(dir, ext string) *AppError {
	return New(ErrCodeAudioNotFound, fmt.Sprintf("no %s audio file found in %s", ext, dir)).
		WithDetail("dir", dir).
		WithDetail("ext", ext)
}

// AcquisitionFailed creates an error for a failed fetch or filesystem step.
func AcquisitionFailed(step string, cause error) *AppError {
	return New(ErrCodeAcquisitionFailed, fmt.Sprintf("%s failed", step)).
		WithDetail("step", step).
		WithCause(cause)
}

// --- Remote ---

// UploadFailed creates an error for a rejected audio upload.
func UploadFailed(status int, payload []byte, cause error) *AppError {
	return remote(ErrCodeUploadFailed, "error uploading audio file", status, payload, cause)
}

// SubmissionFailed creates an error for a transcription job that could not be created.
func SubmissionFailed(status int, payload []byte, cause error) *AppError {
	return remote(ErrCodeSubmissionFailed, "error requesting transcription", status, payload, cause)
}

// PollFailed creates an error for a failed job status query.
func PollFailed(jobID string, status int, payload []byte, cause error) *AppError {
	return remote(ErrCodePollFailed, "error retrieving transcription", status, payload, cause).
		WithDetail("job_id", jobID)
}

// PollTimeout creates an error for a job that never reached a terminal state.
func PollTimeout(jobID string, attempts int, cause error) *AppError {
	return New(ErrCodePollTimeout, fmt.Sprintf("transcription %s still pending after %d polls", jobID, attempts)).
		WithDetail("job_id", jobID).
		WithDetail("attempts", attempts).
		WithCause(cause)
}

func remote(code ErrorCode, message string, status int, payload []byte, cause error) *AppError {
	e := New(code, message).WithPayload(payload).WithCause(cause)
	if status > 0 {
		e.WithDetail("status", status)
	}
	return e
}

// --- Local and persistence ---

// BackendFailed creates an error for a local model failure.
func BackendFailed(backend string, cause error) *AppError {
	return New(ErrCodeBackendFailed, fmt.Sprintf("%s backend failed", backend)).
		WithDetail("backend", backend).
		WithCause(cause)
}

// StorageFailed creates an error for a failed result read or write.
func StorageFailed(path string, cause error) *AppError {
	return New(ErrCodeStorageFailed, fmt.Sprintf("storage operation on %s failed", path)).
		WithDetail("path", path).
		WithCause(cause)
}

// Internal creates an error for an unexpected failure.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, "an unexpected error occurred").WithCause(cause)
}

// --- Inspection ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err is an AppError carrying code.
func Is(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// ExitCode returns the exit code for any error:
// ExitOK for nil, the mapped code for AppErrors, ExitInternal otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.ExitCode()
	}
	return ExitInternal
}
