// Package logger provides structured logging for scribekit using zerolog.
//
// Loggers are component scoped: each package asks for its own tagged logger
// and attaches fields as flat maps.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.Get("assemblyai")
//	log.Info("transcription status", logger.Fields("job_id", id, "status", status))
package logger
