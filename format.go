package dur

// String returns the canonical form of d: the shortest segment sequence
// that Parse recovers exactly, "0s" for zero, a leading '-' for
// negative values. Formatting never fails, including for Min, whose
// magnitude only exists unsigned.
func (d Duration) String() string {
	var buf [32]byte
	w := d.format(&buf)
	return string(buf[w:])
}

// Append appends the canonical form of d to b.
func (d Duration) Append(b []byte) []byte {
	var buf [32]byte
	w := d.format(&buf)
	return append(b, buf[w:]...)
}

// format writes d backwards into the tail of buf and returns the index
// of the first byte written.
func (d Duration) format(buf *[32]byte) int {
	w := len(buf)
	u := uint64(d)
	neg := d < 0
	if neg {
		u = -u
	}

	if u < uint64(Second) {
		// Below one second: one value with the largest unit whose
		// integer part is non-empty, falling back to ns.
		var prec int
		w--
		buf[w] = 's'
		w--
		switch {
		case u == 0:
			buf[w] = '0'
			return w
		case u < uint64(Microsecond):
			prec = 0
			buf[w] = 'n'
		case u < uint64(Millisecond):
			prec = 3
			w-- // U+00B5 takes two bytes
			copy(buf[w:], "µ")
		default:
			prec = 6
			buf[w] = 'm'
		}
		w, u = fmtFrac(buf[:w], u, prec)
		w = fmtInt(buf[:w], u)
	} else {
		// The seconds field is always present, zero included.
		w--
		buf[w] = 's'
		w, u = fmtFrac(buf[:w], u, 9)
		w = fmtInt(buf[:w], u%60)
		u /= 60
		if u > 0 {
			w--
			buf[w] = 'm'
			w = fmtInt(buf[:w], u%60)
			u /= 60
			if u > 0 {
				w--
				buf[w] = 'h'
				w = fmtInt(buf[:w], u)
			}
		}
	}

	if neg {
		w--
		buf[w] = '-'
	}
	return w
}

// fmtFrac writes the fraction v/10**prec backwards into the tail of
// buf, omitting trailing zeros and the decimal point when the fraction
// is all zeros, and returns v with those prec digits divided away.
func fmtFrac(buf []byte, v uint64, prec int) (int, uint64) {
	w := len(buf)
	printing := false
	for i := 0; i < prec; i++ {
		digit := v % 10
		printing = printing || digit != 0
		if printing {
			w--
			buf[w] = byte(digit) + '0'
		}
		v /= 10
	}
	if printing {
		w--
		buf[w] = '.'
	}
	return w, v
}

// fmtInt writes the decimal form of v backwards into the tail of buf.
func fmtInt(buf []byte, v uint64) int {
	w := len(buf)
	if v == 0 {
		w--
		buf[w] = '0'
		return w
	}
	for v > 0 {
		w--
		buf[w] = byte(v%10) + '0'
		v /= 10
	}
	return w
}
