package generator

import (
	"fmt"
	"time"

	"staygen/internal/model"
)

const dayFormat = "2006-01-02"

// Calendar is the date dimension plus the exact-match date to id lookup
// every fact stage resolves through.
type Calendar struct {
	records []model.DateRecord
	index   map[string]int
	start   time.Time
	end     time.Time
}

// BuildCalendar enumerates every day in [start, end] inclusive and assigns
// dense, contiguous ids starting at 0.
func BuildCalendar(start, end time.Time) (*Calendar, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("calendar end %s is before start %s", end.Format(dayFormat), start.Format(dayFormat))
	}
	start = midnight(start)
	end = midnight(end)

	cal := &Calendar{
		index: make(map[string]int),
		start: start,
		end:   end,
	}
	id := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cal.records = append(cal.records, model.DateRecord{
			DateID:  id,
			Date:    d,
			Year:    d.Year(),
			Quarter: (int(d.Month())-1)/3 + 1,
			Month:   int(d.Month()),
			Day:     d.Day(),
			Weekday: mondayWeekday(d),
		})
		cal.index[d.Format(dayFormat)] = id
		id++
	}
	return cal, nil
}

// Lookup resolves a calendar date to its dense id. Dates outside the corpus
// window miss.
func (c *Calendar) Lookup(d time.Time) (int, bool) {
	id, ok := c.index[d.Format(dayFormat)]
	return id, ok
}

func (c *Calendar) Records() []model.DateRecord { return c.records }

// Days is the inclusive length of the window.
func (c *Calendar) Days() int { return len(c.records) }

func (c *Calendar) Start() time.Time { return c.start }
func (c *Calendar) End() time.Time   { return c.end }

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mondayWeekday converts Go's Sunday-based weekday to Monday=0..Sunday=6.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// daysBetween is the whole-day difference b - a.
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Hours() / 24)
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
