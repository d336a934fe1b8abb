package httpserver

import "time"

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Travel Assistant API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "travel-assistant"
)

const (
	EnvironmentProduction  = "production"
	DefaultShutdownTimeout = 10 * time.Second
)
