package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/sebitservices/SaborHub-sub000/models"
)

// IsOpen reports whether a menu section is available at the given moment.
// Always_available takes unconditional precedence over the day table.
// Otherwise the entry matching now's local weekday decides: a missing or
// inactive entry means closed, an active one is open while
// start <= minutes-since-midnight <= end. Windows whose end precedes
// their start (past midnight) are not supported and evaluate as closed.
func IsOpen(s models.SectionSchedule, now time.Time) bool {
	if s.Always_available {
		return true
	}

	weekday := int(now.Weekday())
	var entry *models.DaySchedule
	for i := range s.Days {
		if s.Days[i].Day_of_week == weekday {
			entry = &s.Days[i]
			break
		}
	}
	if entry == nil || !entry.Active {
		return false
	}

	start, ok := parseMinutes(entry.Start_time)
	if !ok {
		return false
	}
	end, ok := parseMinutes(entry.End_time)
	if !ok {
		return false
	}

	minutes := now.Hour()*60 + now.Minute()
	return start <= minutes && minutes <= end
}

// parseMinutes converts "HH:MM" to minutes since midnight.
func parseMinutes(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
