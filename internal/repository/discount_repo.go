package repository

import (
	"context"

	"heladosupply/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DiscountRepository interface {
	List(ctx context.Context) ([]model.Discount, error)
	Upsert(ctx context.Context, d *model.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountRepo struct{ db *gorm.DB }

func NewDiscountRepository(db *gorm.DB) DiscountRepository { return &discountRepo{db: db} }

func (r *discountRepo) List(ctx context.Context) ([]model.Discount, error) {
	var discounts []model.Discount
	err := r.db.WithContext(ctx).Order("name ASC").Find(&discounts).Error
	return discounts, err
}

func (r *discountRepo) Upsert(ctx context.Context, d *model.Discount) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(d).Error
}

func (r *discountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Discount{}, "id = ?", id).Error
}
