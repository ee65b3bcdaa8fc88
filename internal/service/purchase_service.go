package service

import (
	"context"
	"fmt"
	"time"

	"heladosupply/internal/dto"
	"heladosupply/internal/model"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"

	"github.com/google/uuid"
)

type PurchaseService interface {
	List(ctx context.Context) ([]dto.PurchaseResponse, error)
	Upsert(ctx context.Context, req dto.UpsertPurchaseRequest) (*dto.PurchaseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	publisher *notify.Publisher
}

func NewPurchaseService(purchases repository.PurchaseRepository, publisher *notify.Publisher) PurchaseService {
	return &purchaseService{purchases: purchases, publisher: publisher}
}

func (s *purchaseService) List(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, purchaseToResponse(p))
	}
	return out, nil
}

func (s *purchaseService) Upsert(ctx context.Context, req dto.UpsertPurchaseRequest) (*dto.PurchaseResponse, error) {
	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		date = parsed
	}

	p := model.Purchase{
		Date:         date,
		ProviderName: req.ProviderName,
		Status:       req.Status,
		Total:        req.Total,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, err
		}
		p.ID = id
	}
	if err := s.purchases.Upsert(ctx, &p); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, notify.CollectionPurchases)
	resp := purchaseToResponse(p)
	return &resp, nil
}

func (s *purchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.purchases.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, notify.CollectionPurchases)
	return nil
}

func purchaseToResponse(p model.Purchase) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:           p.ID.String(),
		Date:         p.Date.Format(time.RFC3339),
		ProviderName: p.ProviderName,
		Status:       p.Status,
		Total:        p.Total,
	}
}
