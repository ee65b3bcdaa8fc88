package service

// backup_service.go — full-database export and restore as one JSON document.
// Restore upserts collection by collection, sequentially; a mid-way failure
// leaves the collections already written in place. There is no cross-
// collection rollback, which keeps a partially restored backup inspectable.

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

type BackupService interface {
	Export(ctx context.Context) (*dto.BackupDocument, error)
	Restore(ctx context.Context, doc dto.BackupDocument) (*dto.RestoreResponse, error)
}

type backupService struct {
	stores    *repository.Stores
	publisher *notify.Publisher
}

func NewBackupService(stores *repository.Stores, publisher *notify.Publisher) BackupService {
	return &backupService{stores: stores, publisher: publisher}
}

func (s *backupService) Export(ctx context.Context) (*dto.BackupDocument, error) {
	doc := &dto.BackupDocument{}

	products, err := s.stores.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: export products: %w", err)
	}
	doc.Products = productsToResponses(products)

	customers, err := s.stores.Customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: export customers: %w", err)
	}
	for _, c := range customers {
		doc.Customers = append(doc.Customers, customerToResponse(c))
	}

	orders, err := s.stores.Orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: export orders: %w", err)
	}
	for i := range orders {
		doc.Orders = append(doc.Orders, *orderToResponse(&orders[i]))
	}

	providers, err := s.stores.Providers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: export providers: %w", err)
	}
	for _, p := range providers {
		doc.Providers = append(doc.Providers, providerToResponse(p))
	}

	discounts, err := s.stores.Discounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: export discounts: %w", err)
	}
	for _, d := range discounts {
		doc.Discounts = append(doc.Discounts, discountToResponse(d))
	}

	purchases, err := s.stores.Purchases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: export purchases: %w", err)
	}
	for _, p := range purchases {
		doc.Purchases = append(doc.Purchases, purchaseToResponse(p))
	}

	return doc, nil
}

func (s *backupService) Restore(ctx context.Context, doc dto.BackupDocument) (*dto.RestoreResponse, error) {
	resp := &dto.RestoreResponse{}

	for _, pr := range doc.Products {
		p, err := backupProductToModel(pr)
		if err != nil {
			return resp, fmt.Errorf("backup: restore products: %w", err)
		}
		if err := s.stores.Products.Upsert(ctx, p); err != nil {
			return resp, fmt.Errorf("backup: restore products: %w", err)
		}
		resp.Products++
	}

	for _, cr := range doc.Customers {
		id, err := uuid.Parse(cr.ID)
		if err != nil {
			return resp, fmt.Errorf("backup: restore customers: %w", err)
		}
		c := model.Customer{ID: id, Name: cr.Name, Address: cr.Address, Phone: cr.Phone, Email: cr.Email}
		if err := s.stores.Customers.Upsert(ctx, &c); err != nil {
			return resp, fmt.Errorf("backup: restore customers: %w", err)
		}
		resp.Customers++
	}

	for _, or := range doc.Orders {
		o, err := backupOrderToModel(or)
		if err != nil {
			return resp, fmt.Errorf("backup: restore orders: %w", err)
		}
		if err := s.stores.Orders.Upsert(ctx, o); err != nil {
			return resp, fmt.Errorf("backup: restore orders: %w", err)
		}
		resp.Orders++
	}

	for _, pr := range doc.Providers {
		id, err := uuid.Parse(pr.ID)
		if err != nil {
			return resp, fmt.Errorf("backup: restore providers: %w", err)
		}
		p := model.Provider{ID: id, Name: pr.Name, Contact: pr.Contact, Phone: pr.Phone, Email: pr.Email, Category: pr.Category}
		if err := s.stores.Providers.Upsert(ctx, &p); err != nil {
			return resp, fmt.Errorf("backup: restore providers: %w", err)
		}
		resp.Providers++
	}

	for _, dr := range doc.Discounts {
		id, err := uuid.Parse(dr.ID)
		if err != nil {
			return resp, fmt.Errorf("backup: restore discounts: %w", err)
		}
		d := model.Discount{ID: id, Name: dr.Name, Description: dr.Description, Value: dr.Value, Active: dr.Active, Color: dr.Color}
		if err := s.stores.Discounts.Upsert(ctx, &d); err != nil {
			return resp, fmt.Errorf("backup: restore discounts: %w", err)
		}
		resp.Discounts++
	}

	for _, pr := range doc.Purchases {
		p, err := backupPurchaseToModel(pr)
		if err != nil {
			return resp, fmt.Errorf("backup: restore purchases: %w", err)
		}
		if err := s.stores.Purchases.Upsert(ctx, p); err != nil {
			return resp, fmt.Errorf("backup: restore purchases: %w", err)
		}
		resp.Purchases++
	}

	s.publisher.Publish(ctx,
		notify.CollectionProducts, notify.CollectionCustomers, notify.CollectionOrders,
		notify.CollectionProviders, notify.CollectionDiscounts, notify.CollectionPurchases)

	return resp, nil
}

func backupProductToModel(pr dto.ProductResponse) (*model.Product, error) {
	id, err := uuid.Parse(pr.ID)
	if err != nil {
		return nil, err
	}
	return &model.Product{
		ID:       id,
		Name:     pr.Name,
		Category: pr.Category,
		Price:    pr.Price,
		Stock:    pr.Stock,
		MinStock: pr.MinStock,
		Unit:     pr.Unit,
	}, nil
}

func backupOrderToModel(or dto.OrderResponse) (*model.Order, error) {
	id, err := uuid.Parse(or.ID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(time.RFC3339, or.Date)
	if err != nil {
		return nil, err
	}
	o := model.Order{
		ID:           id,
		CustomerName: or.CustomerName,
		Date:         date,
		Status:       or.Status,
		Total:        or.Total,
	}
	if or.CustomerID != "" && or.CustomerID != WalkInCustomerID {
		cid, err := uuid.Parse(or.CustomerID)
		if err != nil {
			return nil, err
		}
		o.CustomerID = &cid
	}
	for _, item := range or.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, err
		}
		o.Items = append(o.Items, model.OrderItem{
			ID:          uuid.New(),
			OrderID:     id,
			ProductID:   pid,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
		})
	}
	return &o, nil
}

func backupPurchaseToModel(pr dto.PurchaseResponse) (*model.Purchase, error) {
	id, err := uuid.Parse(pr.ID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(time.RFC3339, pr.Date)
	if err != nil {
		return nil, err
	}
	return &model.Purchase{
		ID:           id,
		Date:         date,
		ProviderName: pr.ProviderName,
		Status:       pr.Status,
		Total:        pr.Total,
	}, nil
}
