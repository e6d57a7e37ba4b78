// Package logger configures the process-wide slog JSON logger and carries
// request-scoped loggers through context. Stores and handlers call
// FromContextOrDefault so log lines pick up request attributes (such as the
// trace ID) when present.
package logger
