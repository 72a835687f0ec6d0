// Package observability provides the process logger and formatted output
// utilities for verbose CLI mode.
package observability

import "go.uber.org/zap"

// NewLogger builds the process-wide zap logger. Development mode switches
// to the human-readable console encoder.
func NewLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
