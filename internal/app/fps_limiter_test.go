package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSLimiterPacesFrames(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 100 }}

	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestFPSLimiterUnlimited(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 0 }}

	start := time.Now()
	for i := 0; i < 1000; i++ {
		f.Wait()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, f.next.IsZero())
}

func TestFPSLimiterResyncsAfterHitch(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 100 }}
	f.Wait()
	time.Sleep(60 * time.Millisecond)
	f.Wait()
	// the deadline is reset relative to now rather than left in the past
	assert.True(t, f.next.After(time.Now()))
}
