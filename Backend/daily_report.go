package Backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"Gudang/Models"
)

// FetchAllDailyReports retrieves every report summary. Unlike the inventory
// fetch this propagates failures to the caller.
func (c *Client) FetchAllDailyReports(ctx context.Context) ([]Models.DailyReportsSummary, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/daily-reports", nil, "Failed to fetch daily reports")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var reports []Models.DailyReportsSummary
	if err := json.NewDecoder(resp.Body).Decode(&reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// FetchDailyReport retrieves one report's detail.
func (c *Client) FetchDailyReport(ctx context.Context, reportID int) (*Models.DailyReportsSummary, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/daily-reports/%d", reportID), nil, "Failed to fetch the daily report")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var report Models.DailyReportsSummary
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

// RecordDailyReport persists one day's sales and deducts the sold quantities
// from inventory server-side.
func (c *Client) RecordDailyReport(ctx context.Context, report Models.DailyReportRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/daily-report", report, "Failed to record daily report and update inventory")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// UpdateDailyReport replaces the sales data and date of an existing report.
func (c *Client) UpdateDailyReport(ctx context.Context, reportID int, report Models.DailyReportRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/daily-report/%d", reportID), report, "Failed to update daily report")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// DeleteDailyReport removes the report keyed by ID.
func (c *Client) DeleteDailyReport(ctx context.Context, reportID int) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/daily-report/%d", reportID), nil, "Failed to delete daily report")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
