package services

import (
	"time"

	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
)

// utcClock reads the system clock in UTC. All persisted timestamps go through
// a Clock so tests can pin the instant.
type utcClock struct{}

// NewUTCClock returns the production Clock.
func NewUTCClock() portssvc.Clock {
	return utcClock{}
}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}
