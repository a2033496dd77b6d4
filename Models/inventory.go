package Models

// InventoryItem is one stocked product. The authoritative copy lives in the
// backend; the app only ever holds a snapshot of the full collection.
type InventoryItem struct {
	InventoryID int     `json:"inventory_id" gorm:"primaryKey;autoIncrement:false"`
	ItemName    string  `json:"item_name" gorm:"size:255;not null"`
	Quantity    int     `json:"quantity" gorm:"not null;default:0"`
	UnitPrice   float64 `json:"unit_price" gorm:"not null;default:0"`
	LastUpdated string  `json:"last_updated"`
}

// SalesData is one line of a report being composed or edited. Price carries
// the unit price at sale time; the extended total shown in the form is
// derived from it and never entered directly.
type SalesData struct {
	InventoryID  int     `json:"inventory_id" validate:"required,gt=0"`
	QuantitySold int     `json:"quantity_sold" validate:"required,gt=0"`
	Price        float64 `json:"price" validate:"gte=0"`
}

// InventoryRequest is the payload accepted by the add and update endpoints.
type InventoryRequest struct {
	InventoryID int     `json:"inventory_id"`
	ItemName    string  `json:"item_name" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	LastUpdated string  `json:"last_updated"`
}
