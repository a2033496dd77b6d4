package ManipulateData

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Gudang/Models"
)

func TestBuildCalendar_MarksReportDays(t *testing.T) {
	reports := []Models.DailyReportsSummary{
		{ReportID: 1, Date: "2024-01-10"},
		{ReportID: 2, Date: "2024-02-15"}, // other month, ignored
		{ReportID: 3, Date: "2023-01-10"}, // other year, ignored
	}

	cal := BuildCalendar(reports, 2024, 1)

	assert.Equal(t, 2024, cal.Year)
	assert.Equal(t, 1, cal.Month)
	assert.Equal(t, "January 2024", cal.Label)

	marked := 0
	for _, week := range cal.Weeks {
		require.Len(t, week, 7)
		for _, day := range week {
			if day.HasReport {
				marked++
				assert.Equal(t, 10, day.Day)
				assert.Equal(t, 1, day.ReportID)
			}
		}
	}
	assert.Equal(t, 1, marked)
}

func TestBuildCalendar_GridLayout(t *testing.T) {
	// January 2024 starts on a Monday: one leading blank, 31 days, 5 weeks
	cal := BuildCalendar(nil, 2024, 1)

	require.Len(t, cal.Weeks, 5)
	assert.Zero(t, cal.Weeks[0][0].Day)
	assert.Equal(t, 1, cal.Weeks[0][1].Day)
	assert.Equal(t, 31, cal.Weeks[4][3].Day)
	assert.Zero(t, cal.Weeks[4][6].Day)
}

func TestBuildCalendar_Navigation(t *testing.T) {
	cal := BuildCalendar(nil, 2024, 1)

	assert.Equal(t, 2023, cal.PrevYear)
	assert.Equal(t, 12, cal.PrevMonth)
	assert.Equal(t, 2024, cal.NextYear)
	assert.Equal(t, 2, cal.NextMonth)
}

func TestBuildCalendar_NormalizesOutOfRangeMonth(t *testing.T) {
	cal := BuildCalendar(nil, 2024, 0)

	assert.Equal(t, 2023, cal.Year)
	assert.Equal(t, 12, cal.Month)
	assert.Equal(t, "December 2023", cal.Label)
}

func TestCalendarYears(t *testing.T) {
	assert.Equal(t, []int{2022, 2023, 2024, 2025, 2026}, CalendarYears(2024))
}
