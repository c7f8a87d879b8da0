package customer

import "context"

// Repository defines customer persistence operations.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Customer, error)
	Count(ctx context.Context) (int64, error)
}

// DomainRepository defines domain persistence operations.
type DomainRepository interface {
	Create(ctx context.Context, d *Domain) error
	GetByID(ctx context.Context, id uint) (*Domain, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Domain, error)
	Delete(ctx context.Context, id uint) error
}
