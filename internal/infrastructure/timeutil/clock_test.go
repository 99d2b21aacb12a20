package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock_FixedTime(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixed)

	assert.Equal(t, fixed, clock.Now())
	assert.Equal(t, fixed, clock.Now(), "repeated reads stay pinned")
}

func TestMockClock_Advance(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	clock.Advance(30 * time.Minute)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), clock.Now())

	clock.AdvanceMinutes(45)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 15, 0, 0, time.UTC), clock.Now())

	clock.Advance(-time.Hour)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC), clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2026-03-01T10:30:00Z")
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() {
		NewMockClockFromString("not-a-time")
	})
}
