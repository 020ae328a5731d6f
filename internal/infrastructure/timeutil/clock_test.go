package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockTracksSystemTime(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	got := clock.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestMockClock(t *testing.T) {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(base)

	assert.Equal(t, base, clock.Now())

	clock.Advance(90 * time.Minute)
	assert.Equal(t, base.Add(90*time.Minute), clock.Now())

	other := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(other)
	assert.Equal(t, other, clock.Now())
}
