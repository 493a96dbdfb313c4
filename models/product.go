package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is an inventory item with a stock level and reorder threshold.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	CurrentStock int       `json:"currentStock"` // may go negative, never clamped
	MinStock     int       `json:"minStock"`
	SellingPrice int       `json:"sellingPrice"` // whole yen
	CostPrice    int       `json:"costPrice"`    // whole yen
	Unit         string    `json:"unit,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewProduct fills construction defaults on a product.
func NewProduct(p Product) Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Unit == "" {
		p.Unit = "pc"
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return p
}

// AdjustStock applies a signed delta to the stock level. Negative stock is
// representable and preserved.
func (p *Product) AdjustStock(delta int) {
	p.CurrentStock += delta
	p.UpdatedAt = time.Now().UTC()
}

// IsLowStock reports whether the stock level is at or below the threshold.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// StockStatusText returns the display label for the stock state.
func (p *Product) StockStatusText() string {
	if p.IsLowStock() {
		return "Low stock"
	}
	return "In stock"
}

// ProfitMargin returns the margin over cost as a percentage, 0 when the
// cost price is 0.
func (p *Product) ProfitMargin() float64 {
	if p.CostPrice == 0 {
		return 0
	}
	return float64(p.SellingPrice-p.CostPrice) / float64(p.CostPrice) * 100
}

// SellingPriceString renders the selling price in yen.
func (p *Product) SellingPriceString() string {
	return FormatYen(p.SellingPrice)
}
