package scheduler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Schedule defines when a job runs next
type Schedule interface {
	Next(after time.Time) time.Time
	String() string
}

// Every runs a job at a fixed interval
func Every(d time.Duration) Schedule {
	return every(d)
}

type every time.Duration

func (e every) Next(after time.Time) time.Time { return after.Add(time.Duration(e)) }
func (e every) String() string               { return "every " + time.Duration(e).String() }

// Slot is a wall-clock time of day
type Slot struct {
	Hour   int
	Minute int
}

func (s Slot) String() string { return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute) }

// ParseSlot parses "HH:MM"
func ParseSlot(s string) (Slot, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Slot{}, fmt.Errorf("invalid slot %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return Slot{}, fmt.Errorf("invalid hour in slot %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return Slot{}, fmt.Errorf("invalid minute in slot %q", s)
	}
	return Slot{Hour: h, Minute: m}, nil
}

// ParseSlots parses a list of "HH:MM" values
func ParseSlots(vals []string) ([]Slot, error) {
	res := make([]Slot, 0, len(vals))
	for _, v := range vals {
		s, err := ParseSlot(v)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

// DailyAt runs a job every day at the given wall-clock slots of the location
func DailyAt(loc *time.Location, slots ...Slot) Schedule {
	if loc == nil {
		loc = time.UTC
	}
	sorted := append([]Slot(nil), slots...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Hour != sorted[j].Hour {
			return sorted[i].Hour < sorted[j].Hour
		}
		return sorted[i].Minute < sorted[j].Minute
	})
	return daily{loc: loc, slots: sorted}
}

type daily struct {
	loc   *time.Location
	slots []Slot
}

// Next returns the first slot strictly after the given time. Slots falling into a DST gap
// are normalized by time.Date and may fire an hour later.
func (d daily) Next(after time.Time) time.Time {
	if len(d.slots) == 0 {
		return time.Time{}
	}
	local := after.In(d.loc)
	for day := 0; day < 3; day++ {
		y, m, dd := local.AddDate(0, 0, day).Date()
		for _, s := range d.slots {
			t := time.Date(y, m, dd, s.Hour, s.Minute, 0, 0, d.loc)
			if t.After(after) {
				return t
			}
		}
	}
	return time.Time{}
}

func (d daily) String() string {
	parts := make([]string, len(d.slots))
	for i, s := range d.slots {
		parts[i] = s.String()
	}
	return "daily at " + strings.Join(parts, ",") + " " + d.loc.String()
}
