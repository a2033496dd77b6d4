package Controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"Gudang/Backend"
	"Gudang/ManipulateData"
	"Gudang/Models"
	"Gudang/Store"
)

const (
	reportCardsPerPage = 6
	reportRowsPerPage  = 5
)

var (
	errInvalidSalesRow = errors.New("every sales row needs a quantity of at least 1")
	errNoSalesRows     = errors.New("a report needs at least one sales row")
)

func splitDate(date string) []string {
	return strings.Split(date, "-")
}

// ReportController serves the daily report card and table views and their
// add, edit and delete forms.
type ReportController struct {
	Client    *Backend.Client
	Reports   *Store.ReportStore
	Inventory *Store.InventoryStore
}

func NewReportController(client *Backend.Client, reports *Store.ReportStore, inventory *Store.InventoryStore) *ReportController {
	return &ReportController{Client: client, Reports: reports, Inventory: inventory}
}

// CardsPage renders the card view with month/year/sort filters.
func (rc *ReportController) CardsPage(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	sortOrder := c.Query("sort", ManipulateData.SortMostRecent)
	filter := ManipulateData.ReportFilter{
		Month: c.Query("month"),
		Year:  c.Query("year"),
	}

	reports, err := rc.Reports.Get(c.Context())
	if err != nil {
		log.Println("Failed to fetch daily reports:", err)
		return c.Render("reports_cards", fiber.Map{
			"Error": err.Error(),
		})
	}

	filtered := ManipulateData.SortReports(ManipulateData.FilterReports(reports, filter), sortOrder)
	totalPages := ManipulateData.TotalPages(len(filtered), reportCardsPerPage)
	page = ManipulateData.ClampPage(page, totalPages)

	// Calendar navigates independently of the card filters
	now := time.Now()
	calYear, _ := strconv.Atoi(c.Query("cal_year", strconv.Itoa(now.Year())))
	calMonth, _ := strconv.Atoi(c.Query("cal_month", strconv.Itoa(int(now.Month()))))

	return c.Render("reports_cards", fiber.Map{
		"Reports":       ManipulateData.Paginate(filtered, page, reportCardsPerPage),
		"Inventory":     rc.Inventory.Get(c.Context()),
		"Months":        uniqueMonths(reports),
		"Years":         uniqueYears(reports),
		"Month":         filter.Month,
		"Year":          filter.Year,
		"Sort":          sortOrder,
		"Page":          page,
		"TotalPages":    totalPages,
		"Calendar":      ManipulateData.BuildCalendar(reports, calYear, calMonth),
		"CalendarYears": ManipulateData.CalendarYears(now.Year()),
		"Message":       c.Query("msg"),
		"Error":         c.Query("error"),
	})
}

// TablePage renders the table view with search and calendar date filters.
func (rc *ReportController) TablePage(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	filter := ManipulateData.ReportFilter{
		Query: c.Query("search"),
		Date:  c.Query("date"),
	}

	reports, err := rc.Reports.Get(c.Context())
	if err != nil {
		log.Println("Failed to fetch daily reports:", err)
		return c.Render("reports_table", fiber.Map{
			"Error": err.Error(),
		})
	}

	filtered := ManipulateData.SortReports(ManipulateData.FilterReports(reports, filter), ManipulateData.SortMostRecent)
	totalPages := ManipulateData.TotalPages(len(filtered), reportRowsPerPage)
	page = ManipulateData.ClampPage(page, totalPages)

	return c.Render("reports_table", fiber.Map{
		"Reports":      ManipulateData.Paginate(filtered, page, reportRowsPerPage),
		"Inventory":    rc.Inventory.Get(c.Context()),
		"Search":       filter.Query,
		"Date":         filter.Date,
		"Page":         page,
		"TotalPages":   totalPages,
		"TotalReports": len(filtered),
		"Message":      c.Query("msg"),
		"Error":        c.Query("error"),
	})
}

// Detail returns one report's line items for the detail dialog.
func (rc *ReportController) Detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid report ID"})
	}

	report, err := rc.Client.FetchDailyReport(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(report)
}

// LineTotal serves the read-only derived price the sales-row forms display:
// unit price of the selected item times the entered quantity.
func (rc *ReportController) LineTotal(c *fiber.Ctx) error {
	inventoryID, _ := strconv.Atoi(c.Query("inventory_id"))
	quantity, _ := strconv.Atoi(c.Query("quantity"))

	sale := Models.SalesData{InventoryID: inventoryID, QuantitySold: quantity}
	return c.JSON(fiber.Map{
		"price": ManipulateData.ComputeLineTotal(rc.Inventory.Get(c.Context()), sale),
	})
}

// AddReport handles the add form submit. Prices are stamped from the
// current inventory snapshot; the user never enters them.
func (rc *ReportController) AddReport(c *fiber.Ctx) error {
	date := c.FormValue("date")
	if date == "" {
		return redirectWithError(c, c.FormValue("return", "/reports"), "Please select a valid date for the report")
	}

	salesData, err := rc.parseSalesRows(c)
	if err != nil {
		return redirectWithError(c, c.FormValue("return", "/reports"), err.Error())
	}

	report := Models.DailyReportRequest{Date: date, SalesData: salesData}
	if err := rc.Client.RecordDailyReport(c.Context(), report); err != nil {
		log.Println("Failed to record daily report:", err)
		return redirectWithError(c, c.FormValue("return", "/reports"), err.Error())
	}

	// Sold quantities were deducted server-side
	rc.Reports.Invalidate()
	rc.Inventory.Invalidate()
	return redirectWithMessage(c, c.FormValue("return", "/reports"), "Daily report recorded")
}

// UpdateReport handles the edit sheet submit.
func (rc *ReportController) UpdateReport(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return redirectWithError(c, c.FormValue("return", "/reports"), "Invalid report ID")
	}

	date := c.FormValue("date")
	if date == "" {
		return redirectWithError(c, c.FormValue("return", "/reports"), "Please select a valid date for the report")
	}

	salesData, err := rc.parseSalesRows(c)
	if err != nil {
		return redirectWithError(c, c.FormValue("return", "/reports"), err.Error())
	}

	report := Models.DailyReportRequest{Date: date, SalesData: salesData}
	if err := rc.Client.UpdateDailyReport(c.Context(), id, report); err != nil {
		log.Println("Failed to update daily report:", err)
		return redirectWithError(c, c.FormValue("return", "/reports"), err.Error())
	}

	rc.Reports.Invalidate()
	rc.Inventory.Invalidate()
	return redirectWithMessage(c, c.FormValue("return", "/reports"), "Daily report updated successfully")
}

// DeleteReport handles the delete dialog submit.
func (rc *ReportController) DeleteReport(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return redirectWithError(c, c.FormValue("return", "/reports"), "Invalid report ID")
	}

	if err := rc.Client.DeleteDailyReport(c.Context(), id); err != nil {
		log.Println("Failed to delete daily report:", err)
		return redirectWithError(c, c.FormValue("return", "/reports"), err.Error())
	}

	rc.Reports.Invalidate()
	rc.Inventory.Invalidate()
	return redirectWithMessage(c, c.FormValue("return", "/reports"), "Daily report deleted")
}

// parseSalesRows collects the dynamic sales rows from the form and stamps
// each row's price with the unit price from the inventory snapshot.
func (rc *ReportController) parseSalesRows(c *fiber.Ctx) ([]Models.SalesData, error) {
	ids := c.Context().PostArgs().PeekMulti("inventory_id")
	quantities := c.Context().PostArgs().PeekMulti("quantity_sold")

	salesData := make([]Models.SalesData, 0, len(ids))
	for i := range ids {
		inventoryID, err := strconv.Atoi(string(ids[i]))
		if err != nil || inventoryID <= 0 {
			continue
		}
		quantity := 0
		if i < len(quantities) {
			quantity, _ = strconv.Atoi(string(quantities[i]))
		}
		if quantity <= 0 {
			return nil, errInvalidSalesRow
		}
		salesData = append(salesData, Models.SalesData{
			InventoryID:  inventoryID,
			QuantitySold: quantity,
		})
	}
	if len(salesData) == 0 {
		return nil, errNoSalesRows
	}

	return ManipulateData.StampUnitPrices(rc.Inventory.Get(c.Context()), salesData), nil
}

func uniqueMonths(reports []Models.DailyReportsSummary) []string {
	return uniqueDateSegment(reports, 1)
}

func uniqueYears(reports []Models.DailyReportsSummary) []string {
	return uniqueDateSegment(reports, 0)
}

func uniqueDateSegment(reports []Models.DailyReportsSummary, index int) []string {
	seen := map[string]bool{}
	values := []string{}
	for _, report := range reports {
		parts := splitDate(report.Date)
		if index >= len(parts) || seen[parts[index]] {
			continue
		}
		seen[parts[index]] = true
		values = append(values, parts[index])
	}
	return values
}
