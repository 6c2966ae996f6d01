// Package whisper is the local transcription backend.
//
// The model is loaded lazily on the first Transcribe call and kept for the
// life of the Backend. Two loaders are provided:
//
//   - SidecarLoader posts audio to a faster-whisper HTTP sidecar
//     (GET /health, POST /transcribe)
//   - CLILoader runs the whisper command line tool and reads the .txt file
//     it writes
//
// Inference runs on cuda when an NVIDIA driver is visible and on cpu
// otherwise. The local model never produces a summary.
package whisper
