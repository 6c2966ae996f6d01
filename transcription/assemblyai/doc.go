// Package assemblyai is the remote transcription backend.
//
// A run has three phases against the v2 API:
//
//  1. POST /upload streams the audio file and returns an upload URL
//  2. POST /transcript submits a job built by BuildJobRequest
//  3. GET /transcript/{id} is polled every PollInterval until the job is
//     completed or failed
//
// Polling stops with a POLL_TIMEOUT error once MaxPollAttempts or
// PollTimeout is reached. A failed job is not an error: the result is
// empty.
package assemblyai
