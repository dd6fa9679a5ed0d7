package clock

import "time"

//go:generate go tool mockgen -source=./clock.go -destination=./test/mock_clock.go -package test

// Clock supplies the current time. Everything that depends on "today"
// takes a Clock so it can be pinned in tests and in the CLI.
type Clock interface {
	Now() time.Time
}

func New() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// NewFixed returns a Clock that always reports t.
func NewFixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time {
	return f.t
}
