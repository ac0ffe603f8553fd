// Package logging provides types.Logger implementations: a zap-backed logger
// for the CLI, a no-op logger for library defaults and benchmarks, and a
// testing.T logger for tests.
package logging
