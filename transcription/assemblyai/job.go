package assemblyai

import "github.com/kbukum/scribekit/transcription"

// Job statuses reported by the API.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusError      = "error"
)

// Summarization settings requested alongside auto-detect and en_us jobs.
const (
	SummaryTypeBullets        = "bullets"
	SummaryModelInformative   = "informative"
	LanguageModelMultilingual = "multilingual"
)

// JobRequest is the body of POST /transcript.
type JobRequest struct {
	AudioURL      string `json:"audio_url"`
	LanguageCode  string `json:"language_code,omitempty"`
	LanguageModel string `json:"language_model,omitempty"`
	Summarization bool   `json:"summarization,omitempty"`
	SummaryType   string `json:"summary_type,omitempty"`
	SummaryModel  string `json:"summary_model,omitempty"`
}

// BuildJobRequest selects job options for a language hint. Explicit codes
// other than en_us select the multilingual model and no summary; en_us and
// auto-detect request a bullet summary.
func BuildJobRequest(audioURL string, lang transcription.Language) JobRequest {
	req := JobRequest{AudioURL: audioURL}
	if !lang.IsAuto() {
		req.LanguageCode = string(lang)
	}
	if !lang.IsAuto() && lang != transcription.LanguageEnglishUS {
		req.LanguageModel = LanguageModelMultilingual
		return req
	}
	req.Summarization = true
	req.SummaryType = SummaryTypeBullets
	req.SummaryModel = SummaryModelInformative
	return req
}

// Job is the subset of the transcript resource the backend reads.
type Job struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Text    string `json:"text"`
	Summary string `json:"summary"`
	Error   string `json:"error"`
}

// IsCompleted reports a finished job.
func (j *Job) IsCompleted() bool { return j.Status == StatusCompleted }

// IsFailed reports a job the service gave up on.
func (j *Job) IsFailed() bool { return j.Status == StatusFailed || j.Status == StatusError }

// IsTerminal reports whether polling can stop.
func (j *Job) IsTerminal() bool { return j.IsCompleted() || j.IsFailed() }

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}
