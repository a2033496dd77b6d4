package Export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"Gudang/Models"
)

// Column order is fixed across all three formats.
var headers = []string{"ID", "Item Name", "Quantity", "Unit Price", "Last Updated"}

// BuildWorkbook renders the inventory snapshot as an Excel workbook.
func BuildWorkbook(items []Models.InventoryItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Inventory"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, item := range items {
		row := rowIndex + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.InventoryID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.ItemName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Quantity)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.UnitPrice)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.LastUpdated)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %v", err)
	}
	return buffer, nil
}

// BuildCSV renders the inventory snapshot as CSV with a header row.
func BuildCSV(items []Models.InventoryItem) (*bytes.Buffer, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	if err := writer.Write(headers); err != nil {
		return nil, err
	}
	for _, item := range items {
		record := []string{
			strconv.Itoa(item.InventoryID),
			item.ItemName,
			strconv.Itoa(item.Quantity),
			strconv.FormatFloat(item.UnitPrice, 'f', -1, 64),
			item.LastUpdated,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buffer, nil
}

// BuildJSON renders the inventory snapshot as indented JSON.
func BuildJSON(items []Models.InventoryItem) (*bytes.Buffer, error) {
	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(payload), nil
}
