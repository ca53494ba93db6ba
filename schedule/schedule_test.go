package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sebitservices/SaborHub-sub000/models"
	"github.com/sebitservices/SaborHub-sub000/schedule"
)

// 2024-01-01 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func weekSchedule(days ...models.DaySchedule) models.SectionSchedule {
	return models.SectionSchedule{Always_available: false, Days: days}
}

func TestAlwaysAvailableOverridesInactiveDays(t *testing.T) {
	s := models.SectionSchedule{Always_available: true}
	for day := 0; day < 7; day++ {
		s.Days = append(s.Days, models.DaySchedule{
			Day_of_week: day,
			Start_time:  "08:00",
			End_time:    "22:00",
			Active:      false,
		})
	}

	assert.True(t, schedule.IsOpen(s, monday(3, 0)))
	assert.True(t, schedule.IsOpen(s, monday(23, 59)))
}

func TestClosedDayReportsClosedRegardlessOfTime(t *testing.T) {
	s := weekSchedule(models.DaySchedule{
		Day_of_week: 1, // Monday
		Start_time:  "00:00",
		End_time:    "23:59",
		Active:      false,
	})

	assert.False(t, schedule.IsOpen(s, monday(12, 0)))
}

func TestMissingDayEntryIsClosed(t *testing.T) {
	s := weekSchedule(models.DaySchedule{
		Day_of_week: 2, // Tuesday only
		Start_time:  "08:00",
		End_time:    "22:00",
		Active:      true,
	})

	assert.False(t, schedule.IsOpen(s, monday(12, 0)))
}

func TestMondayWindow(t *testing.T) {
	s := weekSchedule(models.DaySchedule{
		Day_of_week: 1,
		Start_time:  "08:00",
		End_time:    "22:00",
		Active:      true,
	})

	assert.True(t, schedule.IsOpen(s, monday(12, 0)))
	assert.False(t, schedule.IsOpen(s, monday(23, 0)))
}

func TestWindowBoundsAreInclusive(t *testing.T) {
	s := weekSchedule(models.DaySchedule{
		Day_of_week: 1,
		Start_time:  "08:00",
		End_time:    "22:00",
		Active:      true,
	})

	assert.True(t, schedule.IsOpen(s, monday(8, 0)))
	assert.True(t, schedule.IsOpen(s, monday(22, 0)))
	assert.False(t, schedule.IsOpen(s, monday(7, 59)))
	assert.False(t, schedule.IsOpen(s, monday(22, 1)))
}

func TestOvernightWindowEvaluatesClosed(t *testing.T) {
	// End before start is unsupported: no minute satisfies the interval.
	s := weekSchedule(models.DaySchedule{
		Day_of_week: 1,
		Start_time:  "20:00",
		End_time:    "02:00",
		Active:      true,
	})

	assert.False(t, schedule.IsOpen(s, monday(21, 0)))
	assert.False(t, schedule.IsOpen(s, monday(1, 0)))
}

func TestMalformedTimesEvaluateClosed(t *testing.T) {
	s := weekSchedule(models.DaySchedule{
		Day_of_week: 1,
		Start_time:  "eight",
		End_time:    "22:00",
		Active:      true,
	})

	assert.False(t, schedule.IsOpen(s, monday(12, 0)))
}
