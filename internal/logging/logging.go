package logging

import "go.uber.org/zap"

// New builds the application logger. Development gets the console encoder,
// anything else structured JSON.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
