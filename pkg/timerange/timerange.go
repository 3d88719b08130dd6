// Package timerange parses wall-clock time ranges for the sandglass timer.
//
// A range is defined by some combination of a begin time, an end time, and a
// length. Clock times use "HH:MM" or "HH:MM:SS" on today's date; an end
// before the begin is taken to mean tomorrow. Lengths concatenate
// number+unit fields, e.g. "90s", "1m30s", or "1y2d3h4m5s".
//
//	r, err := timerange.Resolve(nil, nil, &length, time.Now())
//	progress := r.Progress(time.Now()) // 0 at start, 1 at end
package timerange

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Sentinel errors for range resolution.
var (
	// ErrNoRange is returned when neither begin, end, nor length is given.
	ErrNoRange = errors.New("must define time range with some combination of begin, end, and length")

	// ErrBeginOnly is returned when only a begin time is given; a duration
	// needs an end or a length.
	ErrBeginOnly = errors.New("must provide duration with end or length")

	// ErrLengthMismatch is returned when begin, end, and length are all
	// given but disagree.
	ErrLengthMismatch = errors.New("length and begin..end must define the same duration")
)

// spanUnits maps a length field's unit suffix to its duration.
var spanUnits = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
	'y': 365 * 24 * time.Hour,
}

// ParseClock parses a time of day ("HH:MM:SS" or "HH:MM") on now's date.
func ParseClock(s string, now time.Time) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock time %q: want HH:MM or HH:MM:SS", s)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
}

// ParseSpan parses a concatenated sequence of number+unit fields into a
// duration. Units are s, m, h, d, and y; "1m30s" is ninety seconds.
func ParseSpan(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("parse span: empty string")
	}

	var total time.Duration
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			continue
		}

		unit, ok := spanUnits[s[i]]
		if !ok {
			return 0, fmt.Errorf("parse span %q: invalid unit %q (valid units are s, m, h, d, and y)", s, s[i])
		}
		if i == start {
			return 0, fmt.Errorf("parse span %q: missing number before unit %q", s, s[i])
		}
		n, err := strconv.ParseUint(s[start:i], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("parse span %q: bad number %q", s, s[start:i])
		}
		total += time.Duration(n) * unit
		start = i + 1
	}
	if start != len(s) {
		return 0, fmt.Errorf("parse span %q: trailing number %q without unit", s, s[start:])
	}
	return total, nil
}

// Range is a resolved wall-clock time range.
type Range struct {
	Start    time.Time
	Duration time.Duration
}

// End returns the instant the range elapses.
func (r Range) End() time.Time { return r.Start.Add(r.Duration) }

// Progress returns elapsed time at now as a fraction of the duration: 0 at
// Start, 1 at End. The value is not clamped; it is negative before the
// range begins and exceeds 1 once it has elapsed.
func (r Range) Progress(now time.Time) float64 {
	if r.Duration <= 0 {
		return 1
	}
	return float64(now.Sub(r.Start)) / float64(r.Duration)
}

// Resolve builds a Range from any combination of begin, end, and length
// (nil means not given), relative to now. An end alone or with a length
// counts back from the end; an end before its begin is interpreted as
// tomorrow; begin, end, and length together must agree.
func Resolve(begin, end *time.Time, length *time.Duration, now time.Time) (Range, error) {
	switch {
	case begin == nil && end == nil && length == nil:
		return Range{}, ErrNoRange

	case begin == nil && end == nil:
		return Range{Start: now, Duration: *length}, nil

	case begin == nil && length == nil:
		return Range{Start: now, Duration: end.Sub(now)}, nil

	case begin == nil:
		return Range{Start: end.Add(-*length), Duration: *length}, nil

	case end == nil && length == nil:
		return Range{}, ErrBeginOnly

	case end == nil:
		return Range{Start: *begin, Duration: *length}, nil

	case length == nil:
		d := end.Sub(*begin)
		if d <= 0 {
			d = end.AddDate(0, 0, 1).Sub(*begin)
		}
		return Range{Start: *begin, Duration: d}, nil

	default:
		if end.Sub(*begin) != *length {
			return Range{}, ErrLengthMismatch
		}
		return Range{Start: *begin, Duration: *length}, nil
	}
}
