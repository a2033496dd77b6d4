package Models

import (
	"gorm.io/datatypes"
)

// DailyReport is the persisted row behind one day's sales. The sold line
// items are kept as a JSON column; the summary fields are recomputed by the
// server on every write so TotalCost always equals the sum of the line totals.
type DailyReport struct {
	ReportID       int            `json:"reportId" gorm:"primaryKey;column:report_id"`
	Date           string         `json:"date" gorm:"size:10;not null;index"`
	TotalCost      float64        `json:"totalCost" gorm:"not null;default:0"`
	TotalItemsSold int            `json:"totalItemsSold" gorm:"not null;default:0"`
	ItemsSold      datatypes.JSON `json:"-" gorm:"column:items_sold"`
}

// ItemSold is a denormalized snapshot of one inventory item's sale inside a
// report. TotalPrice = unit price at sale time * QuantitySold.
type ItemSold struct {
	ItemID       int     `json:"itemId"`
	ItemName     string  `json:"itemName"`
	QuantitySold int     `json:"quantitySold"`
	TotalPrice   float64 `json:"totalPrice"`
}

// DailyReportsSummary is the wire shape served by GET /daily-reports and
// consumed by the report views.
type DailyReportsSummary struct {
	ReportID       int        `json:"reportId"`
	Date           string     `json:"date"`
	TotalCost      float64    `json:"totalCost"`
	TotalItemsSold int        `json:"totalItemsSold"`
	ItemsSold      []ItemSold `json:"itemsSold"`
}

// DailyReportRequest is the payload for POST /daily-report and
// PUT /daily-report/{id}. SalesData[].Price is the unit price at sale time,
// on both the create and update paths.
type DailyReportRequest struct {
	Date      string      `json:"date" validate:"required,datetime=2006-01-02"`
	SalesData []SalesData `json:"salesData" validate:"required,min=1,dive"`
}
