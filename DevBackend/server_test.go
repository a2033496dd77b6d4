package DevBackend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Gudang/Models"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.InventoryItem{}, &Models.DailyReport{}))
	return App(db)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func seedItem(t *testing.T, app *fiber.App, id, quantity int, name string, price float64) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/inventory", Models.InventoryRequest{
		InventoryID: id,
		ItemName:    name,
		Quantity:    quantity,
		UnitPrice:   price,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestAddInventoryItem_RejectsDuplicateID(t *testing.T) {
	app := newTestApp(t)
	seedItem(t, app, 7, 10, "Kopi Hitam", 1500)

	resp := doJSON(t, app, http.MethodPost, "/inventory", Models.InventoryRequest{
		InventoryID: 7,
		ItemName:    "Teh Manis",
		Quantity:    5,
		UnitPrice:   1000,
	})

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["message"], "already exists")
}

func TestAddInventoryItemIncrementID_AssignsMaxPlusOne(t *testing.T) {
	app := newTestApp(t)
	seedItem(t, app, 3, 1, "A", 1)
	seedItem(t, app, 7, 1, "B", 1)

	resp := doJSON(t, app, http.MethodPost, "/inventory/increment", Models.InventoryRequest{
		ItemName:  "C",
		Quantity:  1,
		UnitPrice: 1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created Models.InventoryItem
	decode(t, resp, &created)
	assert.Equal(t, 8, created.InventoryID)
}

func TestDeleteInventoryItem_RemovedFromSubsequentList(t *testing.T) {
	app := newTestApp(t)
	seedItem(t, app, 1, 10, "Kopi Hitam", 1500)
	seedItem(t, app, 2, 5, "Teh Manis", 1000)

	resp := doJSON(t, app, http.MethodDelete, "/inventory/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/inventory", nil)
	var items []Models.InventoryItem
	decode(t, resp, &items)

	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].InventoryID)
}

func TestDeleteInventoryItem_UnknownIDIsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodDelete, "/inventory/99", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateDailyReport_DeductsStockAndComputesTotals(t *testing.T) {
	app := newTestApp(t)
	seedItem(t, app, 1, 10, "Kopi Hitam", 1500)

	resp := doJSON(t, app, http.MethodPost, "/daily-report", Models.DailyReportRequest{
		Date: "2024-03-02",
		SalesData: []Models.SalesData{
			{InventoryID: 1, QuantitySold: 3, Price: 1500},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/inventory/1", nil)
	var item Models.InventoryItem
	decode(t, resp, &item)
	assert.Equal(t, 7, item.Quantity)

	resp = doJSON(t, app, http.MethodGet, "/daily-reports", nil)
	var reports []Models.DailyReportsSummary
	decode(t, resp, &reports)
	require.Len(t, reports, 1)
	assert.Equal(t, "2024-03-02", reports[0].Date)
	assert.Equal(t, 4500.0, reports[0].TotalCost)
	assert.Equal(t, 3, reports[0].TotalItemsSold)
	require.Len(t, reports[0].ItemsSold, 1)
	assert.Equal(t, "Kopi Hitam", reports[0].ItemsSold[0].ItemName)
	assert.Equal(t, 4500.0, reports[0].ItemsSold[0].TotalPrice)
}

func TestCreateDailyReport_RejectsInsufficientStock(t *testing.T) {
	app := newTestApp(t)
	seedItem(t, app, 1, 2, "Kopi Hitam", 1500)

	resp := doJSON(t, app, http.MethodPost, "/daily-report", Models.DailyReportRequest{
		Date: "2024-03-02",
		SalesData: []Models.SalesData{
			{InventoryID: 1, QuantitySold: 3, Price: 1500},
		},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["message"], "insufficient stock")

	// The rejected report must not deduct anything
	resp = doJSON(t, app, http.MethodGet, "/inventory/1", nil)
	var item Models.InventoryItem
	decode(t, resp, &item)
	assert.Equal(t, 2, item.Quantity)
}

func TestUpdateDailyReport_RestoresBeforeReapplying(t *testing.T) {
	app := newTestApp(t)
	seedItem(t, app, 1, 10, "Kopi Hitam", 1500)

	resp := doJSON(t, app, http.MethodPost, "/daily-report", Models.DailyReportRequest{
		Date:      "2024-03-02",
		SalesData: []Models.SalesData{{InventoryID: 1, QuantitySold: 4, Price: 1500}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var reports []Models.DailyReportsSummary
	resp = doJSON(t, app, http.MethodGet, "/daily-reports", nil)
	decode(t, resp, &reports)
	require.Len(t, reports, 1)

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/daily-report/%d", reports[0].ReportID), Models.DailyReportRequest{
		Date:      "2024-03-03",
		SalesData: []Models.SalesData{{InventoryID: 1, QuantitySold: 1, Price: 1500}},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 10 - 1, not 10 - 4 - 1
	resp = doJSON(t, app, http.MethodGet, "/inventory/1", nil)
	var item Models.InventoryItem
	decode(t, resp, &item)
	assert.Equal(t, 9, item.Quantity)
}

func TestDeleteDailyReport_RestoresStock(t *testing.T) {
	app := newTestApp(t)
	seedItem(t, app, 1, 10, "Kopi Hitam", 1500)

	resp := doJSON(t, app, http.MethodPost, "/daily-report", Models.DailyReportRequest{
		Date:      "2024-03-02",
		SalesData: []Models.SalesData{{InventoryID: 1, QuantitySold: 4, Price: 1500}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var reports []Models.DailyReportsSummary
	resp = doJSON(t, app, http.MethodGet, "/daily-reports", nil)
	decode(t, resp, &reports)
	require.Len(t, reports, 1)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/daily-report/%d", reports[0].ReportID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/inventory/1", nil)
	var item Models.InventoryItem
	decode(t, resp, &item)
	assert.Equal(t, 10, item.Quantity)

	resp = doJSON(t, app, http.MethodGet, "/daily-reports", nil)
	decode(t, resp, &reports)
	assert.Empty(t, reports)
}

func TestCreateDailyReport_RejectsEmptySales(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/daily-report", Models.DailyReportRequest{
		Date: "2024-03-02",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
