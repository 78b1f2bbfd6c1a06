package dur

import (
	"testing"
	"time"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		input    Duration
		expected Duration
	}{
		{Min, Max},
		{Max, Max},
		{0, 0},
		{-42, 42},
		{42, 42},
	}
	for _, test := range tests {
		if actual := test.input.Abs(); actual != test.expected {
			t.Errorf("** Abs(%d) = %d, wanted %d", test.input, actual, test.expected)
		}
	}
}

func TestNanos(t *testing.T) {
	if d := FromNanos(-23); d != -23 || d.Nanos() != -23 {
		t.Errorf("** FromNanos(-23) = %d", d)
	}
	if !FromNanos(0).IsZero() || FromNanos(1).IsZero() {
		t.Errorf("** IsZero misreports")
	}
}

func TestStd(t *testing.T) {
	if FromStd(90 * time.Minute) != 90*Minute {
		t.Errorf("** FromStd(90m) = %d", FromStd(90*time.Minute))
	}
	if (90 * Minute).Std() != 90*time.Minute {
		t.Errorf("** Std(90m) = %v", (90 * Minute).Std())
	}
}

func TestLogValue(t *testing.T) {
	if s := (90 * Minute).LogValue().String(); s != "1h30m0s" {
		t.Errorf("** LogValue = %q, wanted %q", s, "1h30m0s")
	}
}
