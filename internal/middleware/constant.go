package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"

	limiterCapacity = 1000
	limiterTTL      = 5 * time.Minute
)
