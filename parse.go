package dur

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

var (
	ErrEmpty         = errors.New("empty duration string")
	ErrNumber        = errors.New("malformed number in duration")
	ErrMissingUnit   = errors.New("missing unit in duration")
	ErrUnknownUnit   = errors.New("unknown unit in duration")
	ErrOverflow      = errors.New("duration out of range")
	ErrTrailingInput = errors.New("trailing characters after duration")
)

// UnknownUnitError carries the unit symbol that did not match the unit
// table. It matches ErrUnknownUnit under errors.Is.
type UnknownUnitError string

func (e UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q in duration", string(e))
}

func (e UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}

// units is ordered longest symbol first so a greedy match never stops
// at "m" when the input says "ms". Both the micro sign (U+00B5) and
// the Greek mu (U+03BC) are accepted; only the former is emitted.
var units = [...]struct {
	sym   string
	nanos uint64
}{
	{"µs", uint64(Microsecond)}, // U+00B5
	{"μs", uint64(Microsecond)}, // U+03BC
	{"ns", uint64(Nanosecond)},
	{"us", uint64(Microsecond)},
	{"ms", uint64(Millisecond)},
	{"s", uint64(Second)},
	{"m", uint64(Minute)},
	{"h", uint64(Hour)},
}

// Parse converts s to a Duration, requiring the entire string to be
// consumed. Failures match one of the Err values in this package under
// errors.Is.
func Parse(s string) (Duration, error) {
	d, rest, err := parse(s)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, fmt.Errorf("%w: %q", ErrTrailingInput, rest)
	}
	return d, nil
}

func ParseBytes(s []byte) (Duration, error) {
	return Parse(string(s))
}

// ParsePrefix consumes the longest prefix of s that forms a valid
// duration and returns the leftover input, letting the grammar embed
// into a surrounding parser. Consumption stops before the first
// character that cannot start another segment; a partially formed
// segment is an error, not a shorter parse.
func ParsePrefix(s string) (Duration, string, error) {
	return parse(s)
}

func parse(s string) (Duration, string, error) {
	if s == "" {
		return 0, "", ErrEmpty
	}
	rest := s
	neg := false
	if c := rest[0]; c == '-' || c == '+' {
		neg = c == '-'
		rest = rest[1:]
	}
	// The sole legal unitless number.
	if rest == "0" {
		return 0, "", nil
	}

	// Magnitudes accumulate in uint64 capped at 1<<63 so that Min
	// parses while its positive twin overflows.
	var total uint64
	first := true
	for {
		if rest == "" || !(rest[0] == '.' || '0' <= rest[0] && rest[0] <= '9') {
			if first {
				return 0, "", ErrNumber
			}
			break
		}

		// Integer digits.
		var v uint64
		pre := false
		for rest != "" && '0' <= rest[0] && rest[0] <= '9' {
			if v > 1<<63/10 {
				return 0, "", ErrOverflow
			}
			v = v*10 + uint64(rest[0]-'0')
			if v > 1<<63 {
				return 0, "", ErrOverflow
			}
			pre = true
			rest = rest[1:]
		}

		// Fractional digits, kept as num/den with den a power of ten.
		// Digits past the point where den would overflow cannot shift
		// the truncated result and are consumed without effect.
		num, den := uint64(0), uint64(1)
		if rest != "" && rest[0] == '.' {
			rest = rest[1:]
			post := false
			for rest != "" && '0' <= rest[0] && rest[0] <= '9' {
				if den <= math.MaxUint64/10 {
					den = den * 10
					num = num*10 + uint64(rest[0]-'0')
				}
				post = true
				rest = rest[1:]
			}
			if !pre && !post {
				return 0, "", ErrNumber
			}
		}

		var unit uint64
		match := ""
		for _, u := range units {
			if strings.HasPrefix(rest, u.sym) {
				unit = u.nanos
				match = u.sym
				break
			}
		}
		if match == "" {
			if sym := unitRun(rest); sym != "" {
				return 0, "", UnknownUnitError(sym)
			}
			return 0, "", ErrMissingUnit
		}
		rest = rest[len(match):]

		if v > 1<<63/unit {
			return 0, "", ErrOverflow
		}
		v *= unit
		if num != 0 {
			// Exact truncating num*unit/den via a 128-bit product;
			// num < den keeps the quotient below den.
			hi, lo := bits.Mul64(num, unit)
			frac, _ := bits.Div64(hi, lo, den)
			v += frac
			if v > 1<<63 {
				return 0, "", ErrOverflow
			}
		}
		t := total + v
		if t < total || t > 1<<63 {
			return 0, "", ErrOverflow
		}
		total = t
		first = false
	}

	if neg {
		// total == 1<<63 converts to Min, which negation leaves alone.
		return -Duration(total), rest, nil
	}
	if total >= 1<<63 {
		return 0, "", ErrOverflow
	}
	return Duration(total), rest, nil
}

// unitRun extends from the start of s to the next character that could
// begin a number, mirroring how far a unit symbol could plausibly reach
// when reporting it in an error.
func unitRun(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '.' || '0' <= c && c <= '9' {
			return s[:i]
		}
	}
	return s
}
