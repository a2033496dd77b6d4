package Controllers

import (
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"Gudang/Backend"
	"Gudang/ManipulateData"
	"Gudang/Models"
	"Gudang/Store"
)

const inventoryPageSize = 10

// InventoryController serves the inventory list page and its add, update
// and delete forms. Every mutation goes through the backend client and
// invalidates the shared snapshot; there is no optimistic update.
type InventoryController struct {
	Client *Backend.Client
	Store  *Store.InventoryStore
}

func NewInventoryController(client *Backend.Client, store *Store.InventoryStore) *InventoryController {
	return &InventoryController{Client: client, Store: store}
}

// ListPage renders the inventory table with search and pagination.
func (ic *InventoryController) ListPage(c *fiber.Ctx) error {
	searchQuery := c.Query("search")
	page, _ := strconv.Atoi(c.Query("page", "1"))

	items := ic.Store.Get(c.Context())
	filtered := ManipulateData.FilterInventory(items, searchQuery)

	totalPages := ManipulateData.TotalPages(len(filtered), inventoryPageSize)
	page = ManipulateData.ClampPage(page, totalPages)
	displayed := ManipulateData.Paginate(filtered, page, inventoryPageSize)

	return c.Render("inventory", fiber.Map{
		"Items":      displayed,
		"Search":     searchQuery,
		"Page":       page,
		"TotalPages": totalPages,
		"TotalItems": len(filtered),
		"NextID":     ManipulateData.NextIncrementID(items),
		"Message":    c.Query("msg"),
		"Error":      c.Query("error"),
	})
}

// Data returns the raw inventory snapshot for page scripts.
func (ic *InventoryController) Data(c *fiber.Ctx) error {
	return c.JSON(ic.Store.Get(c.Context()))
}

// AddItem handles the add dialog submit. The ID comes from one of three
// mutually exclusive modes; manual and random candidates are checked for
// collision against the loaded snapshot before any network call.
func (ic *InventoryController) AddItem(c *fiber.Ctx) error {
	itemName := c.FormValue("item_name")
	quantity, _ := strconv.Atoi(c.FormValue("quantity"))
	unitPrice, _ := strconv.ParseFloat(c.FormValue("unit_price"), 64)
	manualID, _ := strconv.Atoi(c.FormValue("inventory_id"))
	mode := ManipulateData.ParseIDMode(c.FormValue("id_mode"))

	if itemName == "" || quantity <= 0 || unitPrice <= 0 {
		return redirectWithError(c, "/inventory", "All fields are required")
	}

	item := Models.InventoryItem{
		ItemName:    itemName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}

	var err error
	if mode == ManipulateData.IDModeIncrement {
		// Server assigns max existing ID + 1
		_, err = ic.Client.AddInventoryItemIncrementID(c.Context(), item)
	} else {
		snapshot := ic.Store.Get(c.Context())
		item.InventoryID = ManipulateData.GenerateID(mode, snapshot, manualID)
		if item.InventoryID <= 0 {
			return redirectWithError(c, "/inventory", "Invalid inventory ID")
		}
		if ManipulateData.IsDuplicateID(snapshot, item.InventoryID) {
			return redirectWithError(c, "/inventory", "Inventory ID already in use")
		}
		_, err = ic.Client.AddInventoryItem(c.Context(), item)
	}
	if err != nil {
		log.Println("Failed to add inventory item:", err)
		return redirectWithError(c, "/inventory", err.Error())
	}

	ic.Store.Invalidate()
	return redirectWithMessage(c, "/inventory", "Item added successfully")
}

// UpdateItem handles the inline update dialog submit.
func (ic *InventoryController) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/inventory", "Invalid inventory ID")
	}

	quantity, _ := strconv.Atoi(c.FormValue("quantity"))
	unitPrice, _ := strconv.ParseFloat(c.FormValue("unit_price"), 64)

	item := Models.InventoryItem{
		InventoryID: id,
		ItemName:    c.FormValue("item_name"),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}

	if err := ic.Client.UpdateInventoryItem(c.Context(), item); err != nil {
		log.Println("Failed to update inventory item:", err)
		return redirectWithError(c, "/inventory", err.Error())
	}

	ic.Store.Invalidate()
	return redirectWithMessage(c, "/inventory", "Item updated successfully")
}

// DeleteItem handles the delete dialog submit. Unknown IDs are rejected
// against the snapshot before any network call.
func (ic *InventoryController) DeleteItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/inventory", "Invalid inventory ID")
	}

	snapshot := ic.Store.Get(c.Context())
	if !ManipulateData.IsDuplicateID(snapshot, id) {
		return redirectWithError(c, "/inventory", "Item does not exist")
	}

	if err := ic.Client.DeleteInventoryItem(c.Context(), id); err != nil {
		log.Println("Failed to delete inventory item:", err)
		return redirectWithError(c, "/inventory", err.Error())
	}

	ic.Store.Invalidate()
	return redirectWithMessage(c, "/inventory", "Item deleted successfully")
}

func redirectWithError(c *fiber.Ctx, path, message string) error {
	return c.Redirect(path + "?error=" + url.QueryEscape(message))
}

func redirectWithMessage(c *fiber.Ctx, path, message string) error {
	return c.Redirect(path + "?msg=" + url.QueryEscape(message))
}
