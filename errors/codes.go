package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates an invalid option or selection.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required value was not supplied.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Acquisition errors
const (
	// ErrCodeNoFileProvided indicates the upload transfer yielded zero files.
	ErrCodeNoFileProvided ErrorCode = "NO_FILE_PROVIDED"
	// ErrCodeAudioNotFound indicates no audio file with the expected extension
	// exists after a download.
	ErrCodeAudioNotFound ErrorCode = "AUDIO_NOT_FOUND"
	// ErrCodeAcquisitionFailed indicates the media fetch tool or a filesystem
	// step failed while preparing the audio.
	ErrCodeAcquisitionFailed ErrorCode = "ACQUISITION_FAILED"
)

// Remote transcription errors
const (
	// ErrCodeUploadFailed indicates the audio upload was rejected.
	ErrCodeUploadFailed ErrorCode = "UPLOAD_FAILED"
	// ErrCodeSubmissionFailed indicates the job could not be created.
	ErrCodeSubmissionFailed ErrorCode = "SUBMISSION_FAILED"
	// ErrCodePollFailed indicates a job status query failed.
	ErrCodePollFailed ErrorCode = "POLL_FAILED"
	// ErrCodePollTimeout indicates the job did not reach a terminal state
	// within the configured ceiling.
	ErrCodePollTimeout ErrorCode = "POLL_TIMEOUT"
)

// Local and persistence errors
const (
	// ErrCodeBackendFailed indicates the local model failed to load or run.
	ErrCodeBackendFailed ErrorCode = "BACKEND_FAILED"
	// ErrCodeStorageFailed indicates results could not be written or read.
	ErrCodeStorageFailed ErrorCode = "STORAGE_FAILED"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Exit codes returned by the command line front end.
const (
	ExitOK          = 0
	ExitInternal    = 1
	ExitInput       = 2
	ExitAcquisition = 3
	ExitRemote      = 4
	ExitBackend     = 5
	ExitStorage     = 6
)

var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidInput:      ExitInput,
	ErrCodeMissingField:      ExitInput,
	ErrCodeNoFileProvided:    ExitAcquisition,
	ErrCodeAudioNotFound:     ExitAcquisition,
	ErrCodeAcquisitionFailed: ExitAcquisition,
	ErrCodeUploadFailed:      ExitRemote,
	ErrCodeSubmissionFailed:  ExitRemote,
	ErrCodePollFailed:        ExitRemote,
	ErrCodePollTimeout:       ExitRemote,
	ErrCodeBackendFailed:     ExitBackend,
	ErrCodeStorageFailed:     ExitStorage,
	ErrCodeInternal:          ExitInternal,
}

// ExitCodeFor returns the process exit code for an error code.
// Unknown codes map to ExitInternal.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitInternal
}
