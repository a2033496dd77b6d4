package Backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"Gudang/Models"
)

// FetchInventoryData retrieves the full inventory collection and hands it to
// the callback. The callback always runs, with an empty slice when the fetch
// or decode fails; the returned error lets callers tell the two apart.
func (c *Client) FetchInventoryData(ctx context.Context, onDataFetched func([]Models.InventoryItem)) error {
	items := []Models.InventoryItem{}

	resp, err := c.doRequest(ctx, http.MethodGet, "/inventory", nil, "Failed to fetch inventory")
	if err != nil {
		log.Println("Failed to retrieve inventory:", err)
		onDataFetched(items)
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		log.Println("Failed to decode inventory:", err)
		onDataFetched([]Models.InventoryItem{})
		return err
	}

	onDataFetched(items)
	return nil
}

// FetchInventoryItemByID retrieves a single item, or nil when the lookup
// fails for any reason.
func (c *Client) FetchInventoryItemByID(ctx context.Context, id int) *Models.InventoryItem {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/inventory/%d", id), nil, "Failed to fetch inventory item")
	if err != nil {
		log.Println("Failed to fetch item by ID:", err)
		return nil
	}
	defer resp.Body.Close()

	var item Models.InventoryItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		log.Println("Failed to decode inventory item:", err)
		return nil
	}
	return &item
}

// AddInventoryItem creates an item with a client-chosen ID.
func (c *Client) AddInventoryItem(ctx context.Context, item Models.InventoryItem) (*Models.InventoryItem, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/inventory", item, "Failed to add inventory item")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var created Models.InventoryItem
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddInventoryItemIncrementID creates an item whose ID is assigned by the
// server as max existing ID + 1.
func (c *Client) AddInventoryItemIncrementID(ctx context.Context, item Models.InventoryItem) (*Models.InventoryItem, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/inventory/increment", item, "Failed to add inventory item")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var created Models.InventoryItem
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateInventoryItem replaces the item keyed by its inventory ID.
func (c *Client) UpdateInventoryItem(ctx context.Context, item Models.InventoryItem) error {
	resp, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/inventory/%d", item.InventoryID), item, "Failed to update inventory item")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// DeleteInventoryItem removes the item keyed by ID.
func (c *Client) DeleteInventoryItem(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/inventory/%d", id), nil, "Failed to delete inventory item")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
