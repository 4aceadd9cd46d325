package domain

import "time"

// Clock supplies the current time to the lifecycle managers. Injecting it
// keeps deletion timestamps deterministic under test instead of relying on
// a process-wide override.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock { return systemClock{} }
