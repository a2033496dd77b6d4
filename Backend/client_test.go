package Backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Gudang/Models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &Client{
		BaseURL: server.URL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
	return client, server
}

func TestDoRequest_SetsBypassHeader(t *testing.T) {
	var gotHeader string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(BypassHeader)
		w.Write([]byte("[]"))
	})
	defer server.Close()

	client.FetchInventoryData(context.Background(), func([]Models.InventoryItem) {})

	assert.Equal(t, "69420", gotHeader)
}

func TestDoRequest_UsesServerMessageOnError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Inventory ID 7 already exists"})
	})
	defer server.Close()

	_, err := client.AddInventoryItem(context.Background(), Models.InventoryItem{InventoryID: 7})

	assert.Error(t, err)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "already exists")
}

func TestDoRequest_FallbackMessageWhenBodyNotJSON(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	})
	defer server.Close()

	err := client.DeleteInventoryItem(context.Background(), 1)

	assert.Error(t, err)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, "Failed to delete inventory item", apiErr.Message)
}

func TestFetchInventoryData_SwallowsErrors(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	called := false
	err := client.FetchInventoryData(context.Background(), func(items []Models.InventoryItem) {
		called = true
		assert.Empty(t, items)
	})

	assert.True(t, called)
	assert.Error(t, err)
}

func TestFetchInventoryData_SwallowsDecodeFailure(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})
	defer server.Close()

	var got []Models.InventoryItem
	err := client.FetchInventoryData(context.Background(), func(items []Models.InventoryItem) {
		got = items
	})

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Error(t, err)
}

func TestFetchInventoryData_DeliversItems(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Models.InventoryItem{
			{InventoryID: 1, ItemName: "Kopi Hitam", Quantity: 10, UnitPrice: 1500},
		})
	})
	defer server.Close()

	var got []Models.InventoryItem
	err := client.FetchInventoryData(context.Background(), func(items []Models.InventoryItem) {
		got = items
	})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Kopi Hitam", got[0].ItemName)
}

func TestFetchAllDailyReports_PropagatesErrors(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": "upstream down"})
	})
	defer server.Close()

	reports, err := client.FetchAllDailyReports(context.Background())

	assert.Error(t, err)
	assert.Nil(t, reports)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestRecordDailyReport_PostsPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody Models.DailyReportRequest
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	defer server.Close()

	report := Models.DailyReportRequest{
		Date: "2024-03-02",
		SalesData: []Models.SalesData{
			{InventoryID: 1, QuantitySold: 3, Price: 1500},
		},
	}
	err := client.RecordDailyReport(context.Background(), report)

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/daily-report", gotPath)
	assert.Equal(t, report, gotBody)
}

func TestUpdateAndDeleteDailyReport_Paths(t *testing.T) {
	var paths []string
	var methods []string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		paths = append(paths, r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	defer server.Close()

	assert.NoError(t, client.UpdateDailyReport(context.Background(), 5, Models.DailyReportRequest{Date: "2024-01-01", SalesData: []Models.SalesData{{InventoryID: 1, QuantitySold: 1}}}))
	assert.NoError(t, client.DeleteDailyReport(context.Background(), 5))

	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
	assert.Equal(t, []string{"/daily-report/5", "/daily-report/5"}, paths)
}
