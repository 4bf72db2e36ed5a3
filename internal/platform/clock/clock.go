package clock

import (
	"time"

	"github.com/navabank/account_service/internal/core/ports"
)

// SystemClock implements ports.Clock with the wall clock in UTC.
type SystemClock struct{}

func New() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.Clock = SystemClock{}
