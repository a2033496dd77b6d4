package Controllers

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Gudang/Export"
	"Gudang/Store"
)

// ExportController serializes the current inventory snapshot for download.
type ExportController struct {
	Store *Store.InventoryStore
}

func NewExportController(store *Store.InventoryStore) *ExportController {
	return &ExportController{Store: store}
}

// Download streams the inventory in the requested format: xlsx, csv or json.
func (ec *ExportController) Download(c *fiber.Ctx) error {
	format := c.Query("format", "xlsx")
	items := ec.Store.Get(c.Context())

	var buffer *bytes.Buffer
	var contentType string
	var err error

	switch format {
	case "xlsx":
		buffer, err = Export.BuildWorkbook(items)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "csv":
		buffer, err = Export.BuildCSV(items)
		contentType = "text/csv;charset=utf-8"
	case "json":
		buffer, err = Export.BuildJSON(items)
		contentType = "application/json"
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Unsupported export format"})
	}
	if err != nil {
		log.Println("Failed to build export:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to build export"})
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("inventory_export_%s.%s", timestamp, format)

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	return c.Send(buffer.Bytes())
}
