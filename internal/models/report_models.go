package models

// AnalyticsSummary aggregates completed transactions, optionally filtered by
// location.
type AnalyticsSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
}

// LowStockAlert is a product whose summed inventory across all locations has
// dropped to or below its reorder level.
type LowStockAlert struct {
	Product
	TotalStock int `json:"total_stock"`
}

// ProfitMarginEntry reports the per-product margin, sorted descending by
// MarginPct in the report output.
type ProfitMarginEntry struct {
	Product
	Profit    float64 `json:"profit"`
	MarginPct float64 `json:"margin_pct"`
}

// DeadStockEntry is a product holding stock with zero recorded sales.
// DeadCapital = total stock x cost price.
type DeadStockEntry struct {
	Product
	TotalStock  int     `json:"total_stock"`
	DeadCapital float64 `json:"dead_capital"`
}
