package planning

import (
	"fmt"
	"time"
)

// Week is one discrete simulation bucket, keyed by its Monday at UTC
// midnight. All engine math runs on whole weeks.
type Week struct {
	t time.Time
}

const weekLayout = "2006-01-02"

// WeekOf truncates t to the Monday of its ISO week.
func WeekOf(t time.Time) Week {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return Week{t: t.AddDate(0, 0, -(wd - 1))}
}

// ParseWeek parses a YYYY-MM-DD date that must already be a Monday.
func ParseWeek(s string) (Week, error) {
	t, err := time.ParseInLocation(weekLayout, s, time.UTC)
	if err != nil {
		return Week{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	if t.Weekday() != time.Monday {
		return Week{}, fmt.Errorf("week_start %q must be a Monday", s)
	}
	return Week{t: t}, nil
}

func (w Week) Time() time.Time { return w.t }
func (w Week) IsZero() bool    { return w.t.IsZero() }

func (w Week) Next() Week     { return Week{t: w.t.AddDate(0, 0, 7)} }
func (w Week) Add(n int) Week { return Week{t: w.t.AddDate(0, 0, 7*n)} }

func (w Week) Before(o Week) bool { return w.t.Before(o.t) }
func (w Week) After(o Week) bool  { return w.t.After(o.t) }
func (w Week) Equal(o Week) bool  { return w.t.Equal(o.t) }

// WeeksBetween returns how many whole weeks o is ahead of w.
func (w Week) WeeksBetween(o Week) int {
	return int(o.t.Sub(w.t).Hours() / (24 * 7))
}

func (w Week) String() string { return w.t.Format(weekLayout) }
