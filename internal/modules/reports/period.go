package reports

import (
	"strings"
	"time"
)

type Preset string

const (
	PresetToday  Preset = "today"
	Preset7Days  Preset = "7days"
	PresetMonth  Preset = "month"
	PresetAll    Preset = "all"
	PresetCustom Preset = "custom"
)

// farPast is the sentinel start used when a custom range has no start date.
var farPast = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)

// Period is an inclusive day range. All is true when no filtering applies.
type Period struct {
	Start time.Time
	End   time.Time
	All   bool
}

// Resolve builds the day range for a preset relative to today. Custom
// bounds are ISO dates ("2006-01-02"), each independently optional; a
// custom filter with neither bound behaves like all-time, matching the old
// dashboard.
func Resolve(preset Preset, customStart, customEnd string, today time.Time) Period {
	day := truncateDay(today)

	switch preset {
	case PresetToday:
		return Period{Start: day, End: day}
	case Preset7Days:
		return Period{Start: day.AddDate(0, 0, -6), End: day}
	case PresetMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		last := first.AddDate(0, 1, -1)
		return Period{Start: first, End: last}
	case PresetCustom:
		if customStart == "" && customEnd == "" {
			return Period{All: true}
		}
		start := farPast
		if t, err := time.ParseInLocation("2006-01-02", customStart, day.Location()); err == nil && customStart != "" {
			start = truncateDay(t)
		}
		end := day
		if t, err := time.ParseInLocation("2006-01-02", customEnd, day.Location()); err == nil && customEnd != "" {
			end = truncateDay(t)
		}
		return Period{Start: start, End: end}
	default: // PresetAll and anything unknown
		return Period{All: true}
	}
}

// Contains reports whether the day falls inside the range. A period whose
// start is after its end contains nothing, which is how an inverted custom
// range yields an empty result instead of an error.
func (p Period) Contains(day time.Time) bool {
	if p.All {
		return true
	}
	day = truncateDay(day)
	return !day.Before(p.Start) && !day.After(p.End)
}

// ParseOrderDate extracts the day from a locale order date ("DD/MM/YYYY
// HH:mm:ss"), discarding the time part. ok is false for anything that does
// not look like a date; such orders are excluded from filtered views.
func ParseOrderDate(s string) (time.Time, bool) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	t, err := time.ParseInLocation("02/01/2006", datePart, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
