package dto

import "github.com/shopspring/decimal"

// BusinessStatsResponse feeds the dashboard KPI cards.
type BusinessStatsResponse struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	OrderCount    int64           `json:"order_count"`
	LowStockCount int             `json:"low_stock_count"`
	StockValue    decimal.Decimal `json:"stock_value"`
	TopProduct    string          `json:"top_product"`
}

// DailySales is one bar of the weekly sales chart.
type DailySales struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

type WeeklySalesResponse struct {
	Data []DailySales `json:"data"`
}
