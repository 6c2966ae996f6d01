// Package transcription defines the backend interface and shared types for
// speech-to-text engines.
//
// Backends follow the provider pattern and are selected by engine name from
// a registry:
//
//   - transcription/whisper: local model inference
//   - transcription/assemblyai: remote upload, job submission and polling
//
// # Usage
//
//	reg := transcription.NewRegistry()
//	reg.RegisterFactory(transcription.EngineWhisper, whisper.Factory(cfg))
//	backend, err := reg.Get(ctx, transcription.EngineWhisper)
//	result, err := backend.Transcribe(ctx, transcription.Request{AudioPath: p})
package transcription
