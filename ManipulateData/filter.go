package ManipulateData

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"Gudang/Models"
)

// FilterInventory returns the items whose stringified ID or lowercased name
// contains the lowercased query. An empty query passes everything through in
// the original order.
func FilterInventory(inventoryData []Models.InventoryItem, query string) []Models.InventoryItem {
	lowercasedQuery := strings.ToLower(query)

	filtered := make([]Models.InventoryItem, 0, len(inventoryData))
	for _, item := range inventoryData {
		if strings.Contains(strconv.Itoa(item.InventoryID), lowercasedQuery) ||
			strings.Contains(strings.ToLower(item.ItemName), lowercasedQuery) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ReportFilter holds the optional report view filters. Zero values mean the
// filter is off.
type ReportFilter struct {
	Query string // matched against report ID and sold item names
	Date  string // exact YYYY-MM-DD match
	Month string // "01".."12", compared against the second date segment
	Year  string // compared against the first date segment
}

// FilterReports applies the search query and the month/year/date filters.
func FilterReports(reports []Models.DailyReportsSummary, filter ReportFilter) []Models.DailyReportsSummary {
	lowercasedQuery := strings.ToLower(filter.Query)

	filtered := make([]Models.DailyReportsSummary, 0, len(reports))
	for _, report := range reports {
		if !matchesQuery(report, lowercasedQuery) {
			continue
		}
		if filter.Date != "" && report.Date != filter.Date {
			continue
		}
		parts := strings.Split(report.Date, "-")
		if filter.Month != "" && (len(parts) < 2 || parts[1] != filter.Month) {
			continue
		}
		if filter.Year != "" && (len(parts) < 1 || parts[0] != filter.Year) {
			continue
		}
		filtered = append(filtered, report)
	}
	return filtered
}

func matchesQuery(report Models.DailyReportsSummary, lowercasedQuery string) bool {
	if lowercasedQuery == "" {
		return true
	}
	if strings.Contains(strconv.Itoa(report.ReportID), lowercasedQuery) {
		return true
	}
	for _, item := range report.ItemsSold {
		if strings.Contains(strings.ToLower(item.ItemName), lowercasedQuery) {
			return true
		}
	}
	return false
}

// Sort orders for SortReports.
const (
	SortMostRecent = "most-recent"
	SortOldest     = "oldest"
)

// SortReports orders reports by date, descending for "most-recent" and
// ascending for "oldest". Unparseable dates sort last in either order; ties
// keep their insertion order.
func SortReports(reports []Models.DailyReportsSummary, order string) []Models.DailyReportsSummary {
	sorted := make([]Models.DailyReportsSummary, len(reports))
	copy(sorted, reports)

	sort.SliceStable(sorted, func(i, j int) bool {
		dateI, errI := time.Parse("2006-01-02", sorted[i].Date)
		dateJ, errJ := time.Parse("2006-01-02", sorted[j].Date)
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		if order == SortOldest {
			return dateI.Before(dateJ)
		}
		return dateJ.Before(dateI)
	})
	return sorted
}
