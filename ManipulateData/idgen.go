package ManipulateData

import (
	"golang.org/x/exp/rand"

	"Gudang/Models"
)

// IDMode selects how the add form picks an inventory ID. The three modes are
// mutually exclusive.
type IDMode int

const (
	IDModeManual IDMode = iota
	IDModeIncrement
	IDModeRandom
)

// ParseIDMode maps the form value to a mode, defaulting to increment.
func ParseIDMode(value string) IDMode {
	switch value {
	case "manual":
		return IDModeManual
	case "random":
		return IDModeRandom
	default:
		return IDModeIncrement
	}
}

// NextIncrementID returns max existing ID + 1, or 1 for an empty collection.
func NextIncrementID(inventoryData []Models.InventoryItem) int {
	maxID := 0
	for _, item := range inventoryData {
		if item.InventoryID > maxID {
			maxID = item.InventoryID
		}
	}
	return maxID + 1
}

// RandomID generates a 4-digit ID in [1000, 9999].
func RandomID() int {
	return 1000 + rand.Intn(9000)
}

// IsDuplicateID reports whether the candidate collides with an item in the
// loaded snapshot. Collisions must block submission before any network call.
func IsDuplicateID(inventoryData []Models.InventoryItem, candidate int) bool {
	for _, item := range inventoryData {
		if item.InventoryID == candidate {
			return true
		}
	}
	return false
}

// GenerateID produces the candidate ID for the active mode. Manual mode
// returns the entered value unchanged.
func GenerateID(mode IDMode, inventoryData []Models.InventoryItem, manualID int) int {
	switch mode {
	case IDModeIncrement:
		return NextIncrementID(inventoryData)
	case IDModeRandom:
		return RandomID()
	default:
		return manualID
	}
}
