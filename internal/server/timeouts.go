package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
	// writeHeadroom leaves room to write the 502 after the upstream deadline fires.
	writeHeadroom = 2 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor keeps the response deadline past the upstream deadline.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	if floor := upstream + writeHeadroom; floor > writeTimeout {
		return floor
	}
	return writeTimeout
}
