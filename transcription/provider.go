package transcription

import (
	"context"

	"github.com/kbukum/scribekit/provider"
)

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe converts the audio file in req into text. A job the
	// backend reports as failed yields an empty Result and no error.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
