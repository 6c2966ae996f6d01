package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names for the transcription pipeline.
const (
	SpanRun        = "scribe.run"
	SpanAcquire    = "scribe.acquire"
	SpanTranscribe = "scribe.transcribe"
	SpanStore      = "scribe.store"
	SpanUpload     = "assemblyai.upload"
	SpanSubmit     = "assemblyai.submit"
	SpanPoll       = "assemblyai.poll"
	SpanModelLoad  = "whisper.load"
	SpanInference  = "whisper.transcribe"
)

// Attribute keys.
const (
	AttrServiceName    = "service.name"
	AttrServiceVersion = "service.version"
	AttrRunID          = "scribe.run_id"
	AttrProject        = "scribe.project"
	AttrEngine         = "scribe.engine"
	AttrLanguage       = "scribe.language"
	AttrSource         = "scribe.source"
	AttrJobID          = "assemblyai.job_id"
	AttrPolls          = "assemblyai.polls"
	AttrDevice         = "whisper.device"
)

// StartPhase starts a span for one pipeline phase with string attributes
// given as alternating key-value pairs.
func StartPhase(ctx context.Context, name string, kvs ...string) (context.Context, trace.Span) {
	attrs := make([]attribute.KeyValue, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		attrs = append(attrs, attribute.String(kvs[i], kvs[i+1]))
	}
	return StartSpan(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan finishes span, marking it failed when err is non-nil.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// String returns a string span attribute.
func String(key, value string) attribute.KeyValue { return attribute.String(key, value) }

// Int returns an int span attribute.
func Int(key string, value int) attribute.KeyValue { return attribute.Int(key, value) }
