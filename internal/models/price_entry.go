package models

import "time"

// PriceEntry is the per-ingredient unit price book used to cost grocery lines.
// A zero or negative price counts as missing.
type PriceEntry struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Key          string    `gorm:"uniqueIndex;not null" json:"key"`
	UnitPriceMAD float64   `json:"unitPriceMAD"`
	ProductName  string    `json:"productName,omitempty"`
	ProductURL   string    `json:"productUrl,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
