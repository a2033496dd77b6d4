package ManipulateData

import (
	"Gudang/Models"
)

// ComputeLineTotal resolves the extended price of one sales row from the
// current inventory snapshot: unit price of the selected item times the
// quantity sold. Unknown items price at zero. This is the single derived-
// price computation shared by the add and edit forms.
func ComputeLineTotal(inventoryData []Models.InventoryItem, sale Models.SalesData) float64 {
	for _, item := range inventoryData {
		if item.InventoryID == sale.InventoryID {
			return item.UnitPrice * float64(sale.QuantitySold)
		}
	}
	return 0
}

// ResolveUnitPrice looks up the current unit price of an inventory item,
// zero when the item is not in the snapshot.
func ResolveUnitPrice(inventoryData []Models.InventoryItem, inventoryID int) float64 {
	for _, item := range inventoryData {
		if item.InventoryID == inventoryID {
			return item.UnitPrice
		}
	}
	return 0
}

// StampUnitPrices rewrites every row's Price to the unit price resolved from
// the snapshot, which is the convention both the create and update report
// payloads use.
func StampUnitPrices(inventoryData []Models.InventoryItem, sales []Models.SalesData) []Models.SalesData {
	stamped := make([]Models.SalesData, len(sales))
	for i, sale := range sales {
		sale.Price = ResolveUnitPrice(inventoryData, sale.InventoryID)
		stamped[i] = sale
	}
	return stamped
}
