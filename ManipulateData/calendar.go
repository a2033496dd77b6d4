package ManipulateData

import (
	"time"

	"Gudang/Models"
)

// CalendarDay is one cell of the report calendar. Day 0 is a blank cell
// padding the first and last week.
type CalendarDay struct {
	Day       int
	HasReport bool
	ReportID  int
}

// CalendarMonth is one month of the report calendar: a Sunday-first grid of
// weeks with the days that have a report marked, plus the neighbouring
// months for navigation.
type CalendarMonth struct {
	Year      int
	Month     int
	Label     string
	Weeks     [][]CalendarDay
	PrevYear  int
	PrevMonth int
	NextYear  int
	NextMonth int
}

// BuildCalendar lays out the given month with the days that have a report
// marked. Out-of-range months normalize (month 0 becomes December of the
// previous year), so navigation can just pass month±1.
func BuildCalendar(reports []Models.DailyReportsSummary, year, month int) CalendarMonth {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	year = first.Year()

	reportDays := map[int]int{}
	for _, report := range reports {
		date, err := time.Parse("2006-01-02", report.Date)
		if err != nil || date.Year() != year || date.Month() != first.Month() {
			continue
		}
		reportDays[date.Day()] = report.ReportID
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Leading blanks up to the first day's weekday, Sunday-first
	week := make([]CalendarDay, int(first.Weekday()))
	weeks := [][]CalendarDay{}
	for day := 1; day <= daysInMonth; day++ {
		reportID, hasReport := reportDays[day]
		week = append(week, CalendarDay{Day: day, HasReport: hasReport, ReportID: reportID})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = []CalendarDay{}
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, CalendarDay{})
		}
		weeks = append(weeks, week)
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	return CalendarMonth{
		Year:      year,
		Month:     int(first.Month()),
		Label:     first.Format("January 2006"),
		Weeks:     weeks,
		PrevYear:  prev.Year(),
		PrevMonth: int(prev.Month()),
		NextYear:  next.Year(),
		NextMonth: int(next.Month()),
	}
}

// CalendarYears returns the year-selector range: two years either side of
// the given year.
func CalendarYears(year int) []int {
	years := make([]int, 0, 5)
	for y := year - 2; y <= year+2; y++ {
		years = append(years, y)
	}
	return years
}
