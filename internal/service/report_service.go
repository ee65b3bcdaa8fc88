package service

import (
	"context"
	"time"

	"heladosupply/internal/dto"
	"heladosupply/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportService interface {
	BusinessStats(ctx context.Context) (*dto.BusinessStatsResponse, error)
	WeeklySales(ctx context.Context) (*dto.WeeklySalesResponse, error)
}

type reportService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewReportService(orders repository.OrderRepository, products repository.ProductRepository) ReportService {
	return &reportService{orders: orders, products: products}
}

func (s *reportService) BusinessStats(ctx context.Context) (*dto.BusinessStatsResponse, error) {
	totalSales, err := s.orders.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	topProduct, err := s.orders.TopProduct(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	lowStock := 0
	stockValue := decimal.Zero
	for _, p := range products {
		if p.BelowMinimum() {
			lowStock++
		}
		stockValue = stockValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	return &dto.BusinessStatsResponse{
		TotalSales:    totalSales,
		OrderCount:    orderCount,
		LowStockCount: lowStock,
		StockValue:    stockValue,
		TopProduct:    topProduct,
	}, nil
}

// WeeklySales returns the last 7 days of order totals, zero-filled so the
// chart always has one bar per day.
func (s *reportService) WeeklySales(ctx context.Context) (*dto.WeeklySalesResponse, error) {
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -6).Truncate(24 * time.Hour)

	byDay, err := s.orders.SalesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	resp := &dto.WeeklySalesResponse{Data: make([]dto.DailySales, 0, 7)}
	for i := 0; i < 7; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		total, ok := byDay[day]
		if !ok {
			total = decimal.Zero
		}
		resp.Data = append(resp.Data, dto.DailySales{Date: day, Total: total})
	}
	return resp, nil
}
