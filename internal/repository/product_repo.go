package repository

import (
	"context"

	"heladosupply/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockDelta is one pending stock subtraction inside an order transaction.
type StockDelta struct {
	ProductID uuid.UUID
	Quantity  int
}

// ProductRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation;
// a memory-backed variant exists for standalone mode and unit tests.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Upsert(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListBelowMinimum(ctx context.Context) ([]model.Product, error)

	// DecrementStockTx subtracts every delta or none of them. Each subtraction
	// is conditional (stock >= quantity); the first product that cannot cover
	// its quantity is returned and no stock is left modified — within a GORM
	// transaction the caller's rollback undoes prior updates, the memory
	// variant checks everything under one lock before applying.
	DecrementStockTx(tx *gorm.DB, deltas []StockDelta) (insufficient *uuid.UUID, err error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	// Nil for the memory variant.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Upsert(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) ListBelowMinimum(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("stock <= min_stock").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) DecrementStockTx(tx *gorm.DB, deltas []StockDelta) (*uuid.UUID, error) {
	for _, d := range deltas {
		res := tx.Model(&model.Product{}).
			Where("id = ? AND stock >= ?", d.ProductID, d.Quantity).
			Update("stock", gorm.Expr("stock - ?", d.Quantity))
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			id := d.ProductID
			return &id, nil
		}
	}
	return nil, nil
}

func (r *productRepo) DB() *gorm.DB { return r.db }
