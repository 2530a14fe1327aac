package utils

import (
	"testing"
	"time"
)

// TestTimerMeasuresElapsedTime verifies Stop captures a duration at least as
// long as the time slept.
func TestTimerMeasuresElapsedTime(t *testing.T) {
	timer := NewTimer()
	time.Sleep(10 * time.Millisecond)
	timer.Stop()

	if got := timer.GetDuration(); got < 10*time.Millisecond {
		t.Errorf("GetDuration() = %v, want at least 10ms", got)
	}
}

// TestTimerBeforeStop verifies the duration is zero until Stop is called.
func TestTimerBeforeStop(t *testing.T) {
	timer := NewTimer()
	if got := timer.GetDuration(); got != 0 {
		t.Errorf("GetDuration() before Stop = %v, want 0", got)
	}
}

// TestTimerRestart verifies Start resets the measurement window.
func TestTimerRestart(t *testing.T) {
	timer := NewTimer()
	time.Sleep(50 * time.Millisecond)
	timer.Start()
	timer.Stop()

	if got := timer.GetDuration(); got >= 50*time.Millisecond {
		t.Errorf("GetDuration() after restart = %v, want less than the pre-restart sleep", got)
	}
}
