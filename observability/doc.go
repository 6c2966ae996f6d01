// Package observability wires OpenTelemetry tracing into the pipeline.
//
//	shutdown, err := observability.Setup(ctx, cfg.Tracing)
//	defer shutdown(ctx)
//
//	ctx, span := observability.StartPhase(ctx, observability.SpanAcquire,
//	    observability.AttrProject, project)
//	defer func() { observability.EndSpan(span, err) }()
//
// With tracing disabled every span goes to the global no-op provider, so
// instrumented code never needs to check.
package observability
