// Package types holds the ambient interfaces shared by the chain driver and
// the ensemble runner: structured logging and operational metrics.
//
// Concrete implementations live in internal/logging and internal/telemetry so
// that library users can plug in their own without importing zap or
// Prometheus.
package types
