package osc

import (
	"time"
)

// Immediately is the reserved time tag asking the receiver to act on a bundle as soon as
// it arrives. Bundles built by NewBundle carry it.
const Immediately Timetag = 1

// Timetag is an OSC time tag: a 64 bit NTP fixed point number counting seconds since
// midnight on January 1, 1900 in the upper 32 bits and fractions of a second in the
// lower 32.
type Timetag uint64

// NewTimetagFromTime converts t to a time tag. Precision below 1/2^32 s is lost.
func NewTimetagFromTime(t time.Time) Timetag {
	secs := uint64(secondsFrom1900To1970+t.Unix()) << 32
	return Timetag(secs + (uint64(t.Nanosecond())<<32)/uint64(time.Second))
}

// Seconds returns the whole seconds since 1900.
func (t Timetag) Seconds() uint32 {
	return uint32(t >> 32)
}

// Fraction returns the fractional second in units of 1/2^32 s.
func (t Timetag) Fraction() uint32 {
	return uint32(t)
}

// Time converts the tag back to wall clock time, rounding to the nearest nanosecond.
func (t Timetag) Time() time.Time {
	nanos := (uint64(t.Fraction())*uint64(time.Second) + (1 << 31)) >> 32
	return time.Unix(int64(t.Seconds())-secondsFrom1900To1970, int64(nanos))
}

// String formats the tag as its wall clock time, or "immediately".
func (t Timetag) String() string {
	if t == Immediately {
		return "immediately"
	}
	return t.Time().UTC().Format(time.RFC3339Nano)
}
