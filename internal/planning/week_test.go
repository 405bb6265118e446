package planning

import (
	"testing"
	"time"
)

func TestWeekOfTruncatesToMonday(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-01-06", "2025-01-06"}, // already a Monday
		{"2025-01-07", "2025-01-06"},
		{"2025-01-11", "2025-01-06"}, // Saturday
		{"2025-01-12", "2025-01-06"}, // Sunday
		{"2025-01-13", "2025-01-13"},
	}
	for _, tc := range cases {
		d, err := time.ParseInLocation("2006-01-02", tc.in, time.UTC)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		got := WeekOf(d).String()
		if got != tc.want {
			t.Fatalf("WeekOf(%s): want=%s got=%s", tc.in, tc.want, got)
		}
	}
}

func TestParseWeekRejectsNonMonday(t *testing.T) {
	if _, err := ParseWeek("2025-01-07"); err == nil {
		t.Fatalf("ParseWeek accepted a Tuesday")
	}
	w, err := ParseWeek("2025-01-06")
	if err != nil {
		t.Fatalf("ParseWeek: %v", err)
	}
	if w.String() != "2025-01-06" {
		t.Fatalf("ParseWeek: want=2025-01-06 got=%s", w)
	}
}

func TestWeekArithmetic(t *testing.T) {
	w, err := ParseWeek("2025-01-06")
	if err != nil {
		t.Fatalf("ParseWeek: %v", err)
	}
	if got := w.Next().String(); got != "2025-01-13" {
		t.Fatalf("Next: want=2025-01-13 got=%s", got)
	}
	if got := w.Add(4).String(); got != "2025-02-03" {
		t.Fatalf("Add(4): want=2025-02-03 got=%s", got)
	}
	if got := w.WeeksBetween(w.Add(4)); got != 4 {
		t.Fatalf("WeeksBetween: want=4 got=%d", got)
	}
	if !w.Before(w.Next()) || !w.Next().After(w) || !w.Equal(w.Add(0)) {
		t.Fatalf("week comparisons inconsistent")
	}
}
