// Package tracing wraps OpenTelemetry so that simulation runs and the actions
// they apply can be exported as spans. Until Init or InitWithExporter is
// called the global no-op provider is used and spans cost nothing.
package tracing
