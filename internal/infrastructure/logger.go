package infrastructure

import "go.uber.org/zap"

// NewLogger builds the process-wide structured logger. Development mode
// gets the human-readable console encoder.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
