package repository

import "gorm.io/gorm"

// Stores bundles every repository behind one handle so wiring in main stays
// flat. Two constructors, one per store driver.
type Stores struct {
	Products  ProductRepository
	Customers CustomerRepository
	Orders    OrderRepository
	Providers ProviderRepository
	Discounts DiscountRepository
	Purchases PurchaseRepository
	Users     UserRepository
}

// NewGormStores wires every repository over the shared Postgres connection.
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Products:  NewProductRepository(db),
		Customers: NewCustomerRepository(db),
		Orders:    NewOrderRepository(db),
		Providers: NewProviderRepository(db),
		Discounts: NewDiscountRepository(db),
		Purchases: NewPurchaseRepository(db),
		Users:     NewUserRepository(db),
	}
}

// NewMemoryStores wires process-local repositories, used with
// STORE_DRIVER=memory and by the unit tests.
func NewMemoryStores() *Stores {
	return &Stores{
		Products:  NewMemoryProductRepository(),
		Customers: NewMemoryCustomerRepository(),
		Orders:    NewMemoryOrderRepository(),
		Providers: NewMemoryProviderRepository(),
		Discounts: NewMemoryDiscountRepository(),
		Purchases: NewMemoryPurchaseRepository(),
		Users:     NewMemoryUserRepository(),
	}
}
