// Package timeutil abstracts the system clock so token expiry logic can be
// tested against a controllable time source.
package timeutil

import (
	"time"
)

// Clock supplies the current time. Production code uses RealClock; tests
// substitute a MockClock.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock holds a fixed time that tests move forward explicitly.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a mock clock pinned to t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 string.
// Panics on a bad string; test-only convenience.
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{fixedTime: t}
}

func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Advance moves the clock forward by d. Negative durations move it back.
func (m *MockClock) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

// AdvanceMinutes moves the clock forward by whole minutes.
func (m *MockClock) AdvanceMinutes(minutes int) {
	m.Advance(time.Duration(minutes) * time.Minute)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
