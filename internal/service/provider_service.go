package service

import (
	"context"

	"heladosupply/internal/dto"
	"heladosupply/internal/model"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"

	"github.com/google/uuid"
)

type ProviderService interface {
	List(ctx context.Context) ([]dto.ProviderResponse, error)
	Upsert(ctx context.Context, req dto.UpsertProviderRequest) (*dto.ProviderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type providerService struct {
	providers repository.ProviderRepository
	publisher *notify.Publisher
}

func NewProviderService(providers repository.ProviderRepository, publisher *notify.Publisher) ProviderService {
	return &providerService{providers: providers, publisher: publisher}
}

func (s *providerService) List(ctx context.Context) ([]dto.ProviderResponse, error) {
	providers, err := s.providers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, providerToResponse(p))
	}
	return out, nil
}

func (s *providerService) Upsert(ctx context.Context, req dto.UpsertProviderRequest) (*dto.ProviderResponse, error) {
	p := model.Provider{
		Name:     req.Name,
		Contact:  req.Contact,
		Phone:    req.Phone,
		Email:    req.Email,
		Category: req.Category,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, err
		}
		p.ID = id
	}
	if err := s.providers.Upsert(ctx, &p); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, notify.CollectionProviders)
	resp := providerToResponse(p)
	return &resp, nil
}

func (s *providerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.providers.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, notify.CollectionProviders)
	return nil
}

func providerToResponse(p model.Provider) dto.ProviderResponse {
	return dto.ProviderResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Contact:  p.Contact,
		Phone:    p.Phone,
		Email:    p.Email,
		Category: p.Category,
	}
}
