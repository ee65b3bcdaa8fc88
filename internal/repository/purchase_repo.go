package repository

import (
	"context"

	"heladosupply/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepository interface {
	List(ctx context.Context) ([]model.Purchase, error)
	Upsert(ctx context.Context, p *model.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) List(ctx context.Context) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).Order("date DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) Upsert(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

func (r *purchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Purchase{}, "id = ?", id).Error
}
