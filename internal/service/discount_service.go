package service

import (
	"context"

	"heladosupply/internal/dto"
	"heladosupply/internal/model"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"

	"github.com/google/uuid"
)

type DiscountService interface {
	List(ctx context.Context) ([]dto.DiscountResponse, error)
	Upsert(ctx context.Context, req dto.UpsertDiscountRequest) (*dto.DiscountResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountService struct {
	discounts repository.DiscountRepository
	publisher *notify.Publisher
}

func NewDiscountService(discounts repository.DiscountRepository, publisher *notify.Publisher) DiscountService {
	return &discountService{discounts: discounts, publisher: publisher}
}

func (s *discountService) List(ctx context.Context) ([]dto.DiscountResponse, error) {
	discounts, err := s.discounts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		out = append(out, discountToResponse(d))
	}
	return out, nil
}

func (s *discountService) Upsert(ctx context.Context, req dto.UpsertDiscountRequest) (*dto.DiscountResponse, error) {
	d := model.Discount{
		Name:        req.Name,
		Description: req.Description,
		Value:       req.Value,
		Active:      req.Active,
		Color:       req.Color,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, err
		}
		d.ID = id
	}
	if err := s.discounts.Upsert(ctx, &d); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, notify.CollectionDiscounts)
	resp := discountToResponse(d)
	return &resp, nil
}

func (s *discountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.discounts.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, notify.CollectionDiscounts)
	return nil
}

func discountToResponse(d model.Discount) dto.DiscountResponse {
	return dto.DiscountResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		Value:       d.Value,
		Active:      d.Active,
		Color:       d.Color,
	}
}
