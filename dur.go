// Package dur parses and formats durations written in the Go time
// convention: a signed count of nanoseconds rendered as numeric+unit
// segments, like 1h2m3.5s, -300ms or 0s. Unlike time.ParseDuration,
// parse errors are classified, fractions are converted with exact
// integer arithmetic, and the grammar can consume a prefix of a larger
// input (see ParsePrefix).
package dur

import (
	"log/slog"
	"time"
)

// Duration is a count of nanoseconds. It compares and orders as an
// ordinary integer.
type Duration int64

const (
	Nanosecond  Duration = 1
	Microsecond          = 1000 * Nanosecond
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute

	Min Duration = -1 << 63
	Max Duration = 1<<63 - 1
)

func FromNanos(n int64) Duration {
	return Duration(n)
}

func (d Duration) Nanos() int64 {
	return int64(d)
}

func (d Duration) IsZero() bool {
	return d == 0
}

// Abs saturates: the absolute value of Min is not representable and
// comes back as Max.
func (d Duration) Abs() Duration {
	switch {
	case d >= 0:
		return d
	case d == Min:
		return Max
	default:
		return -d
	}
}

func FromStd(d time.Duration) Duration {
	return Duration(d)
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) LogValue() slog.Value {
	return slog.StringValue(d.String())
}
