package transcription

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Language is the expected language of the audio. Empty means auto-detect.
	Language Language `json:"language,omitempty"`
}

// Result holds the outcome of a transcription call.
type Result struct {
	// Transcript is the full transcription text.
	Transcript string `json:"transcript"`
	// Summary is a bullet summary, set only when the backend produced one.
	Summary string `json:"summary,omitempty"`
}

// HasSummary reports whether a summary was produced.
func (r *Result) HasSummary() bool {
	return r != nil && r.Summary != ""
}
