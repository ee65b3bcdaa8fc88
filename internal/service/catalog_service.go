package service

// catalog_service.go — product catalog with a redis read-through cache.
// The cached product list is dropped by the invalidator goroutine whenever a
// change event names the products collection. Cache failures are tolerated:
// the database stays authoritative.

import (
	"context"
	"encoding/json"
	"time"

	"heladosupply/internal/dto"
	"heladosupply/internal/model"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	catalogCacheKey = "cache:products"
	catalogCacheTTL = 5 * time.Minute
)

type CatalogService interface {
	List(ctx context.Context) (*dto.ProductListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Upsert(ctx context.Context, req dto.UpsertProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListBelowMinimum(ctx context.Context) (*dto.ProductListResponse, error)
	// InvalidateCache drops the cached list; called by the change-event
	// subscriber so every instance flushes on any product mutation.
	InvalidateCache(ctx context.Context)
}

type catalogService struct {
	products  repository.ProductRepository
	rdb       *redis.Client
	publisher *notify.Publisher
}

func NewCatalogService(products repository.ProductRepository, rdb *redis.Client, publisher *notify.Publisher) CatalogService {
	return &catalogService{products: products, rdb: rdb, publisher: publisher}
}

func (s *catalogService) List(ctx context.Context) (*dto.ProductListResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, catalogCacheKey).Result(); err == nil {
			var resp dto.ProductListResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{Data: productsToResponses(products), Total: len(products)}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("catalog: failed to cache product list")
			}
		}
	}
	return resp, nil
}

func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := productToResponse(*p)
	return &resp, nil
}

func (s *catalogService) Upsert(ctx context.Context, req dto.UpsertProductRequest) (*dto.ProductResponse, error) {
	p := model.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		MinStock: req.MinStock,
		Unit:     req.Unit,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, err
		}
		p.ID = id
	}
	if err := s.products.Upsert(ctx, &p); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, notify.CollectionProducts)
	resp := productToResponse(p)
	return &resp, nil
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, notify.CollectionProducts)
	return nil
}

func (s *catalogService) ListBelowMinimum(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := s.products.ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Data: productsToResponses(products), Total: len(products)}, nil
}

func (s *catalogService) InvalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, catalogCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("catalog: failed to invalidate product cache")
	}
}

// StartCacheInvalidator listens for change events and drops the catalog
// cache whenever one names the products collection. Runs until ctx ends.
func StartCacheInvalidator(ctx context.Context, sub *notify.Subscriber, catalog CatalogService) {
	go func() {
		_ = sub.Listen(ctx, func(ev notify.Event) {
			for _, col := range ev.Collections {
				if col == notify.CollectionProducts {
					catalog.InvalidateCache(ctx)
					return
				}
			}
		})
	}()
}

func productToResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		MinStock: p.MinStock,
		Unit:     p.Unit,
	}
}

func productsToResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(p))
	}
	return out
}
