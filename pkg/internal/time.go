package internal

import "time"

// Clock abstracts time.Now so config writes can be stamped deterministically
// in tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct{ t time.Time }

func NewFixedClock(t time.Time) *FixedClock { return &FixedClock{t: t} }

func (f *FixedClock) Now() time.Time { return f.t }

// ISO8601 renders the clock's current time as UTC RFC 3339, the format
// config timestamps are stored in.
func ISO8601(clock Clock) string {
	return clock.Now().UTC().Format(time.RFC3339)
}
