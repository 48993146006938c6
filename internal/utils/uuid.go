package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 string. A random UUIDv4 is
// returned instead if a v7 value cannot be produced.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
