package repository

import (
	"context"

	"heladosupply/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProviderRepository interface {
	List(ctx context.Context) ([]model.Provider, error)
	Upsert(ctx context.Context, p *model.Provider) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type providerRepo struct{ db *gorm.DB }

func NewProviderRepository(db *gorm.DB) ProviderRepository { return &providerRepo{db: db} }

func (r *providerRepo) List(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	err := r.db.WithContext(ctx).Order("name ASC").Find(&providers).Error
	return providers, err
}

func (r *providerRepo) Upsert(ctx context.Context, p *model.Provider) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

func (r *providerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Provider{}, "id = ?", id).Error
}
