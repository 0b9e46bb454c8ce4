// Package observability builds the zap logger, the Prometheus collector and
// the HTTP middleware that feed them.
package observability
