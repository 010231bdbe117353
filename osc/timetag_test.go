package osc

import (
	"testing"
	"time"
)

func TestTimetag_Time(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
	}{
		{"unix_epoch", time.Unix(0, 0)},
		{"half_second", time.Unix(1700000000, 500000000)},
		{"odd_nanos", time.Unix(1700000000, 123456789)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTimetagFromTime(tt.time).Time()
			if !got.Equal(tt.time) {
				t.Errorf("Time() = %v, want %v", got, tt.time)
			}
		})
	}
}

func TestTimetag_Parts(t *testing.T) {
	tt := NewTimetagFromTime(time.Unix(0, 500000000))
	if got := tt.Seconds(); got != secondsFrom1900To1970 {
		t.Errorf("Seconds() = %d, want %d", got, uint32(secondsFrom1900To1970))
	}
	if got := tt.Fraction(); got != 1<<31 {
		t.Errorf("Fraction() = %d, want %d", got, uint32(1<<31))
	}
}

func TestTimetag_String(t *testing.T) {
	if got := Immediately.String(); got != "immediately" {
		t.Errorf("String() = %q, want immediately", got)
	}
	tt := NewTimetagFromTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	if got, want := tt.String(), "2024-01-02T03:04:05Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
