package DevBackend

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"Gudang/Models"
)

// Controller implements the inventory REST contract the dashboard consumes.
// It backs local development and end-to-end tests, and enforces the
// invariants the real backend owns: inventory ID uniqueness, non-negative
// stock, and report totals equal to the sum of their line totals.
type Controller struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{DB: db, Validate: validator.New()}
}

// App builds a standalone Fiber app serving the REST contract.
func App(db *gorm.DB) *fiber.App {
	app := fiber.New()
	NewController(db).SetupRoutes(app)
	return app
}

func (c *Controller) SetupRoutes(app *fiber.App) {
	app.Get("/inventory", c.GetInventory)
	app.Get("/inventory/:id", c.GetInventoryItem)
	app.Post("/inventory", c.AddInventoryItem)
	app.Post("/inventory/increment", c.AddInventoryItemIncrementID)
	app.Put("/inventory/:id", c.UpdateInventoryItem)
	app.Delete("/inventory/:id", c.DeleteInventoryItem)

	app.Get("/daily-reports", c.GetDailyReports)
	app.Get("/daily-reports/:id", c.GetDailyReport)
	app.Post("/daily-report", c.CreateDailyReport)
	app.Put("/daily-report/:id", c.UpdateDailyReport)
	app.Delete("/daily-report/:id", c.DeleteDailyReport)
}

func (c *Controller) GetInventory(ctx *fiber.Ctx) error {
	items := []Models.InventoryItem{}
	if err := c.DB.Order("inventory_id").Find(&items).Error; err != nil {
		log.Println(err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve inventory"})
	}
	return ctx.JSON(items)
}

func (c *Controller) GetInventoryItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid inventory ID"})
	}

	var item Models.InventoryItem
	if err := c.DB.First(&item, "inventory_id = ?", id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Inventory item not found"})
	}
	return ctx.JSON(item)
}

func (c *Controller) AddInventoryItem(ctx *fiber.Ctx) error {
	var input Models.InventoryRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := c.Validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if input.InventoryID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid inventory ID"})
	}

	item := itemFromRequest(input)
	var count int64
	c.DB.Model(&Models.InventoryItem{}).Where("inventory_id = ?", item.InventoryID).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": fmt.Sprintf("Inventory ID %d already exists", item.InventoryID),
		})
	}

	if err := c.DB.Create(&item).Error; err != nil {
		log.Println(err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add inventory item"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(item)
}

// AddInventoryItemIncrementID assigns the new ID server-side as max + 1.
func (c *Controller) AddInventoryItemIncrementID(ctx *fiber.Ctx) error {
	var input Models.InventoryRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := c.Validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	item := itemFromRequest(input)

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var maxID int
		tx.Model(&Models.InventoryItem{}).Select("COALESCE(MAX(inventory_id), 0)").Scan(&maxID)
		item.InventoryID = maxID + 1
		return tx.Create(&item).Error
	})
	if err != nil {
		log.Println(err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add inventory item"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(item)
}

func (c *Controller) UpdateInventoryItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid inventory ID"})
	}

	var item Models.InventoryItem
	if err := c.DB.First(&item, "inventory_id = ?", id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Inventory item not found"})
	}

	var input Models.InventoryRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := c.Validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	item.ItemName = input.ItemName
	item.Quantity = input.Quantity
	item.UnitPrice = input.UnitPrice
	item.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := c.DB.Save(&item).Error; err != nil {
		log.Println(err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update inventory item"})
	}
	return ctx.JSON(item)
}

func (c *Controller) DeleteInventoryItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid inventory ID"})
	}

	var item Models.InventoryItem
	if err := c.DB.First(&item, "inventory_id = ?", id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Inventory item not found"})
	}

	if err := c.DB.Delete(&item).Error; err != nil {
		log.Println(err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete inventory item"})
	}
	return ctx.JSON(fiber.Map{"message": "Inventory item deleted successfully"})
}

func (c *Controller) GetDailyReports(ctx *fiber.Ctx) error {
	var rows []Models.DailyReport
	if err := c.DB.Order("report_id").Find(&rows).Error; err != nil {
		log.Println(err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve daily reports"})
	}

	summaries := make([]Models.DailyReportsSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, summaryFromRow(row))
	}
	return ctx.JSON(summaries)
}

func (c *Controller) GetDailyReport(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid report ID"})
	}

	var row Models.DailyReport
	if err := c.DB.First(&row, "report_id = ?", id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Daily report not found"})
	}
	return ctx.JSON(summaryFromRow(row))
}

// CreateDailyReport persists the report and deducts each sold quantity from
// inventory. Insufficient stock rejects the whole report.
func (c *Controller) CreateDailyReport(ctx *fiber.Ctx) error {
	var input Models.DailyReportRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := c.Validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var row Models.DailyReport
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		itemsSold, err := applySales(tx, input.SalesData)
		if err != nil {
			return err
		}
		row, err = buildReportRow(input.Date, itemsSold)
		if err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return reportError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Daily report recorded and inventory updated",
		"report":  summaryFromRow(row),
	})
}

// UpdateDailyReport restores the previous report's quantities before
// applying the new sales data, so edits never double-deduct stock.
func (c *Controller) UpdateDailyReport(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid report ID"})
	}

	var input Models.DailyReportRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := c.Validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var row Models.DailyReport
	if err := c.DB.First(&row, "report_id = ?", id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Daily report not found"})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := restoreSales(tx, row); err != nil {
			return err
		}
		itemsSold, err := applySales(tx, input.SalesData)
		if err != nil {
			return err
		}
		updated, err := buildReportRow(input.Date, itemsSold)
		if err != nil {
			return err
		}
		updated.ReportID = row.ReportID
		row = updated
		return tx.Save(&row).Error
	})
	if err != nil {
		return reportError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Daily report updated successfully",
		"report":  summaryFromRow(row),
	})
}

// DeleteDailyReport removes the report and restores its quantities to stock.
func (c *Controller) DeleteDailyReport(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid report ID"})
	}

	var row Models.DailyReport
	if err := c.DB.First(&row, "report_id = ?", id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Daily report not found"})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := restoreSales(tx, row); err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return reportError(ctx, err)
	}

	return ctx.JSON(fiber.Map{"message": "Daily report deleted successfully"})
}

func itemFromRequest(input Models.InventoryRequest) Models.InventoryItem {
	lastUpdated := input.LastUpdated
	if lastUpdated == "" {
		lastUpdated = time.Now().UTC().Format(time.RFC3339)
	}
	return Models.InventoryItem{
		InventoryID: input.InventoryID,
		ItemName:    input.ItemName,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		LastUpdated: lastUpdated,
	}
}

// applySales deducts each sold quantity from inventory and returns the
// denormalized line items. Price in the payload is the unit price at sale
// time; the extended total is computed here.
func applySales(tx *gorm.DB, sales []Models.SalesData) ([]Models.ItemSold, error) {
	itemsSold := make([]Models.ItemSold, 0, len(sales))
	for _, sale := range sales {
		var item Models.InventoryItem
		if err := tx.First(&item, "inventory_id = ?", sale.InventoryID).Error; err != nil {
			return nil, fmt.Errorf("inventory item %d not found", sale.InventoryID)
		}
		if item.Quantity < sale.QuantitySold {
			return nil, fmt.Errorf("insufficient stock for %s: have %d, want %d",
				item.ItemName, item.Quantity, sale.QuantitySold)
		}

		unitPrice := sale.Price
		if unitPrice == 0 {
			unitPrice = item.UnitPrice
		}

		item.Quantity -= sale.QuantitySold
		item.LastUpdated = time.Now().UTC().Format(time.RFC3339)
		if err := tx.Save(&item).Error; err != nil {
			return nil, err
		}

		itemsSold = append(itemsSold, Models.ItemSold{
			ItemID:       item.InventoryID,
			ItemName:     item.ItemName,
			QuantitySold: sale.QuantitySold,
			TotalPrice:   unitPrice * float64(sale.QuantitySold),
		})
	}
	return itemsSold, nil
}

// restoreSales returns a report's sold quantities to inventory. Items that
// were deleted since the report was recorded are skipped.
func restoreSales(tx *gorm.DB, row Models.DailyReport) error {
	var itemsSold []Models.ItemSold
	if len(row.ItemsSold) > 0 {
		if err := json.Unmarshal(row.ItemsSold, &itemsSold); err != nil {
			return err
		}
	}
	for _, sold := range itemsSold {
		var item Models.InventoryItem
		if err := tx.First(&item, "inventory_id = ?", sold.ItemID).Error; err != nil {
			continue
		}
		item.Quantity += sold.QuantitySold
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

func buildReportRow(date string, itemsSold []Models.ItemSold) (Models.DailyReport, error) {
	totalCost := 0.0
	totalItems := 0
	for _, sold := range itemsSold {
		totalCost += sold.TotalPrice
		totalItems += sold.QuantitySold
	}

	payload, err := json.Marshal(itemsSold)
	if err != nil {
		return Models.DailyReport{}, err
	}

	return Models.DailyReport{
		Date:           date,
		TotalCost:      totalCost,
		TotalItemsSold: totalItems,
		ItemsSold:      datatypes.JSON(payload),
	}, nil
}

func summaryFromRow(row Models.DailyReport) Models.DailyReportsSummary {
	itemsSold := []Models.ItemSold{}
	if len(row.ItemsSold) > 0 {
		if err := json.Unmarshal(row.ItemsSold, &itemsSold); err != nil {
			log.Println(err)
		}
	}
	return Models.DailyReportsSummary{
		ReportID:       row.ReportID,
		Date:           row.Date,
		TotalCost:      row.TotalCost,
		TotalItemsSold: row.TotalItemsSold,
		ItemsSold:      itemsSold,
	}
}

func reportError(ctx *fiber.Ctx, err error) error {
	log.Println(err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
}
