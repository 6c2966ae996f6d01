package logger

import "time"

// Standard field keys.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldProject   = "project"
	FieldEngine    = "engine"
	FieldLanguage  = "language"
	FieldJobID     = "job_id"
	FieldStatus    = "status"
	FieldAttempt   = "attempt"
	FieldPath      = "path"
	FieldDevice    = "device"
	FieldPhase     = "phase"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a field map from alternating key-value pairs.
//
//	log.Info("saved", logger.Fields("project", name, "path", p))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a phase that failed.
func ErrorFields(phase string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldPhase: phase,
		FieldError: err.Error(),
	}
}

// DurationFields creates fields for a timed phase.
func DurationFields(phase string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldPhase:    phase,
		FieldDuration: d.Milliseconds(),
	}
}
