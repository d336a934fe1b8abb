package session

import "time"

const (
	LogPrefixMemory = "session.memory"
	LogPrefixRedis  = "session.redis"

	BackendMemory = "memory"
	BackendRedis  = "redis"

	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 10000

	redisKeyPrefix = "travel:session:"
)
