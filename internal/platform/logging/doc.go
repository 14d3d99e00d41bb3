// Package logging is the service's structured logger: a thin key/value facade over a
// zap JSON core.
//
// Every layer logs through *Logger. Context variants attach the active trace and span
// ids, so a request's "http request" line, a "load dataset failed" warning and a
// "dataset schema mismatch" warning can be joined in the trace backend.
//
// SetMirror installs a process-wide hook that sees each emitted entry. The observability
// package uses it to forward entries to Uptrace and drops liveness-probe request lines there.
package logging
