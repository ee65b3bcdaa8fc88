package repository

import (
	"context"
	"time"

	"heladosupply/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	// List returns all orders newest first, items included.
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	// CreateTx inserts the order and its items inside the caller's transaction.
	CreateTx(ctx context.Context, tx *gorm.DB, o *model.Order) error
	// Upsert replaces an order and its item set wholesale (backup restore path).
	Upsert(ctx context.Context, o *model.Order) error

	// Dashboard aggregates
	Count(ctx context.Context) (int64, error)
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	TopProduct(ctx context.Context) (string, error)
	// SalesSince returns per-day totals keyed YYYY-MM-DD for orders at or
	// after the given time.
	SalesSince(ctx context.Context, since time.Time) (map[string]decimal.Decimal, error)

	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Preload("Items").Order("date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) CreateTx(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) Upsert(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := o.Items
		o.Items = nil
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(o).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.OrderItem{}, "order_id = ?", o.ID).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		o.Items = items
		return nil
	})
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&n).Error
	return n, err
}

func (r *orderRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(total), 0) FROM orders").Scan(&total).Error
	return total, err
}

func (r *orderRepo) TopProduct(ctx context.Context) (string, error) {
	var name string
	err := r.db.WithContext(ctx).Raw(`
		SELECT product_name FROM order_items
		GROUP BY product_name
		ORDER BY SUM(quantity) DESC
		LIMIT 1`).Scan(&name).Error
	return name, err
}

func (r *orderRepo) SalesSince(ctx context.Context, since time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Day   string
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(date, 'YYYY-MM-DD') AS day, SUM(total) AS total
		FROM orders
		WHERE date >= ?
		GROUP BY 1`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row.Total
	}
	return byDay, nil
}

func (r *orderRepo) DB() *gorm.DB { return r.db }
