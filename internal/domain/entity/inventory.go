package entity

import "math"

// StockStatus labels a product's stock level.
type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "out-of-stock"
	StockStatusLow        StockStatus = "low"
	StockStatusNormal     StockStatus = "normal"
)

// IsValid checks if the status is one of the known labels.
func (s StockStatus) IsValid() bool {
	switch s {
	case StockStatusOutOfStock, StockStatusLow, StockStatusNormal:
		return true
	default:
		return false
	}
}

// InventoryThresholds are the fixed cut-offs used by the stock report.
type InventoryThresholds struct {
	LowStock          int // stock at or below this (and above zero) is "low"
	RestockRunwayDays int // runway at or below this many days needs restock
	SalesWindowDays   int // trailing window used for sales velocity
}

// DefaultInventoryThresholds returns the thresholds used when none are configured.
func DefaultInventoryThresholds() InventoryThresholds {
	return InventoryThresholds{
		LowStock:          10,
		RestockRunwayDays: 7,
		SalesWindowDays:   30,
	}
}

// StatusFor derives the stock status of a stock level.
func (t InventoryThresholds) StatusFor(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusOutOfStock
	case stock <= t.LowStock:
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}

// InventoryItem is one row of the stock report.
type InventoryItem struct {
	ProductID         uint        `json:"productId"`
	Name              string      `json:"name"`
	Category          string      `json:"category"`
	Size              string      `json:"size"`
	Price             float64     `json:"price"`
	Stock             int         `json:"stock"`
	Sold30            int64       `json:"sold30"`
	SalesVelocity     float64     `json:"salesVelocity"`
	DaysUntilStockout *int64      `json:"daysUntilStockout"` // nil means no sales, infinite runway
	StockStatus       StockStatus `json:"stockStatus"`
	NeedsRestock      bool        `json:"needsRestock"`
}

// NewInventoryItem derives the report row of a product from its sales in the window.
func NewInventoryItem(product *Product, sold int64, t InventoryThresholds) InventoryItem {
	window := t.SalesWindowDays
	if window <= 0 {
		window = DefaultInventoryThresholds().SalesWindowDays
	}

	stock := max(product.Stock, 0)
	status := t.StatusFor(stock)

	item := InventoryItem{
		ProductID:   product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Size:        product.Size,
		Price:       product.Price,
		Stock:       product.Stock,
		Sold30:      sold,
		StockStatus: status,
	}

	if sold > 0 {
		item.SalesVelocity = math.Round(float64(sold)/float64(window)*100) / 100
		// floor(stock / (sold/window)) without float rounding drift
		days := int64(stock) * int64(window) / sold
		item.DaysUntilStockout = &days
	}

	item.NeedsRestock = status != StockStatusNormal ||
		(item.DaysUntilStockout != nil && *item.DaysUntilStockout <= int64(t.RestockRunwayDays))

	return item
}

// InventoryTotals counts report rows per status.
type InventoryTotals struct {
	Products     int `json:"products"`
	OutOfStock   int `json:"outOfStock"`
	Low          int `json:"low"`
	Normal       int `json:"normal"`
	NeedsRestock int `json:"needsRestock"`
}

// Add accounts one row in the totals.
func (t *InventoryTotals) Add(item InventoryItem) {
	t.Products++
	switch item.StockStatus {
	case StockStatusOutOfStock:
		t.OutOfStock++
	case StockStatusLow:
		t.Low++
	case StockStatusNormal:
		t.Normal++
	}
	if item.NeedsRestock {
		t.NeedsRestock++
	}
}

// BuildInventory derives one row per product in a single pass. sold maps
// product IDs to quantities sold within the window; missing IDs sold nothing.
func BuildInventory(products []*Product, sold map[uint]int64, t InventoryThresholds) ([]InventoryItem, InventoryTotals) {
	items := make([]InventoryItem, 0, len(products))
	var totals InventoryTotals
	for _, product := range products {
		item := NewInventoryItem(product, sold[product.ID], t)
		totals.Add(item)
		items = append(items, item)
	}

	return items, totals
}

// InventoryReport is the paginated stock report.
type InventoryReport struct {
	Items      []InventoryItem `json:"items"`
	Totals     InventoryTotals `json:"totals"`
	Pagination Pagination      `json:"pagination"`
}
