package ManipulateData

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Gudang/Models"
)

func inventoryWithIDs(ids ...int) []Models.InventoryItem {
	items := make([]Models.InventoryItem, len(ids))
	for i, id := range ids {
		items[i] = Models.InventoryItem{InventoryID: id}
	}
	return items
}

func TestNextIncrementID(t *testing.T) {
	assert.Equal(t, 8, NextIncrementID(inventoryWithIDs(3, 7, 2)))
}

func TestNextIncrementID_EmptyCollection(t *testing.T) {
	assert.Equal(t, 1, NextIncrementID(nil))
}

func TestRandomID_AlwaysFourDigits(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := RandomID()
		assert.GreaterOrEqual(t, id, 1000)
		assert.LessOrEqual(t, id, 9999)
	}
}

func TestIsDuplicateID(t *testing.T) {
	items := inventoryWithIDs(3, 7, 2)

	assert.True(t, IsDuplicateID(items, 7))
	assert.False(t, IsDuplicateID(items, 8))
}

func TestParseIDMode(t *testing.T) {
	assert.Equal(t, IDModeManual, ParseIDMode("manual"))
	assert.Equal(t, IDModeRandom, ParseIDMode("random"))
	assert.Equal(t, IDModeIncrement, ParseIDMode("increment"))
	assert.Equal(t, IDModeIncrement, ParseIDMode(""))
}

func TestGenerateID_ByMode(t *testing.T) {
	items := inventoryWithIDs(3, 7, 2)

	assert.Equal(t, 8, GenerateID(IDModeIncrement, items, 0))
	assert.Equal(t, 42, GenerateID(IDModeManual, items, 42))

	random := GenerateID(IDModeRandom, items, 0)
	assert.GreaterOrEqual(t, random, 1000)
	assert.LessOrEqual(t, random, 9999)
}
