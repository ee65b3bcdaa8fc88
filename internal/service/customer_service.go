package service

import (
	"context"

	"heladosupply/internal/dto"
	"heladosupply/internal/model"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"

	"github.com/google/uuid"
)

type CustomerService interface {
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Upsert(ctx context.Context, req dto.UpsertCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	customers repository.CustomerRepository
	publisher *notify.Publisher
}

func NewCustomerService(customers repository.CustomerRepository, publisher *notify.Publisher) CustomerService {
	return &customerService{customers: customers, publisher: publisher}
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerToResponse(c))
	}
	return out, nil
}

func (s *customerService) Upsert(ctx context.Context, req dto.UpsertCustomerRequest) (*dto.CustomerResponse, error) {
	c := model.Customer{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, err
		}
		c.ID = id
	}
	if err := s.customers.Upsert(ctx, &c); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, notify.CollectionCustomers)
	resp := customerToResponse(c)
	return &resp, nil
}

// Delete removes the customer record only. Historical orders keep their
// denormalized customer name and dangling customer_id.
func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, notify.CollectionCustomers)
	return nil
}

func customerToResponse(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}
