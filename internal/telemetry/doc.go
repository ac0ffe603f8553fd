// Package telemetry provides types.MetricsCollector implementations: a
// Prometheus collector whose instruments are registered lazily on first
// use, and a no-op collector used when metrics are disabled.
package telemetry
