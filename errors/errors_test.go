package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeAudioNotFound, "missing")
	if err.Code != ErrCodeAudioNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeAudioNotFound, err.Code)
	}
	if err.Message != "missing" {
		t.Errorf("expected message 'missing', got %q", err.Message)
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	cause := fmt.Errorf("boom")
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
		exit int
	}{
		{"InvalidInput", InvalidInput("engine", "unknown"), ErrCodeInvalidInput, ExitInput},
		{"Validation", Validation("bad"), ErrCodeInvalidInput, ExitInput},
		{"MissingField", MissingField("api_key"), ErrCodeMissingField, ExitInput},
		{"NoFileProvided", NoFileProvided(), ErrCodeNoFileProvided, ExitAcquisition},
		{"AudioNotFound", AudioNotFound("My_Talk", ".wav"), ErrCodeAudioNotFound, ExitAcquisition},
		{"AcquisitionFailed", AcquisitionFailed("download", cause), ErrCodeAcquisitionFailed, ExitAcquisition},
		{"UploadFailed", UploadFailed(401, []byte(`{"error":"auth"}`), nil), ErrCodeUploadFailed, ExitRemote},
		{"SubmissionFailed", SubmissionFailed(400, nil, nil), ErrCodeSubmissionFailed, ExitRemote},
		{"PollFailed", PollFailed("job-1", 500, nil, nil), ErrCodePollFailed, ExitRemote},
		{"PollTimeout", PollTimeout("job-1", 10, nil), ErrCodePollTimeout, ExitRemote},
		{"BackendFailed", BackendFailed("whisper", cause), ErrCodeBackendFailed, ExitBackend},
		{"StorageFailed", StorageFailed("x/transcription.txt", cause), ErrCodeStorageFailed, ExitStorage},
		{"Internal", Internal(cause), ErrCodeInternal, ExitInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.ExitCode() != tc.exit {
				t.Errorf("expected exit %d, got %d", tc.exit, tc.err.ExitCode())
			}
		})
	}
}

func TestAppError_Payload_Verbatim(t *testing.T) {
	payload := []byte(`{"error": "Authentication error, API token missing/invalid"}`)
	err := UploadFailed(401, payload, nil)
	if err.Payload() != string(payload) {
		t.Errorf("expected payload %q, got %q", payload, err.Payload())
	}
	if !strings.Contains(err.Error(), "API token missing/invalid") {
		t.Errorf("Error() should surface payload, got %q", err.Error())
	}
	if err.Details["status"] != 401 {
		t.Errorf("expected status=401, got %v", err.Details["status"])
	}
}

func TestAppError_WithPayload_Empty(t *testing.T) {
	err := SubmissionFailed(0, nil, nil)
	if _, ok := err.Details[DetailPayload]; ok {
		t.Error("expected no payload key for empty payload")
	}
	if _, ok := err.Details["status"]; ok {
		t.Error("expected no status key for zero status")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := AcquisitionFailed("metadata", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestIs_WrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("run: %w", AudioNotFound("dir", ".wav"))
	if !Is(wrapped, ErrCodeAudioNotFound) {
		t.Error("expected Is to match through wrapping")
	}
	if Is(wrapped, ErrCodeNoFileProvided) {
		t.Error("expected Is to reject a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("expected Is to reject plain errors")
	}
}

func TestExitCode_Table(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", fmt.Errorf("x"), ExitInternal},
		{"wrapped remote", fmt.Errorf("w: %w", PollFailed("j", 500, nil, nil)), ExitRemote},
		{"unknown code", New("SOMETHING_ELSE", "x"), ExitInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestAsAppError_Success(t *testing.T) {
	original := NoFileProvided()
	wrapped := fmt.Errorf("wrapped: %w", original)
	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed")
	}
	if got != original {
		t.Error("expected same AppError instance")
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to fail for plain error")
	}
}
