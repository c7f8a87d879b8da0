package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/logger"
)

type CustomerDetail struct {
	Customer           *customer.Customer
	Domains            []*customer.Domain
	LatestSubscription *subscription.Subscription
}

type GetCustomerUseCase struct {
	customerRepo     customer.Repository
	domainRepo       customer.DomainRepository
	subscriptionRepo SubscriptionSource
	logger           logger.Interface
}

func NewGetCustomerUseCase(
	customerRepo customer.Repository,
	domainRepo customer.DomainRepository,
	subscriptionRepo SubscriptionSource,
	logger logger.Interface,
) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo:     customerRepo,
		domainRepo:       domainRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, customerID uint) (*CustomerDetail, error) {
	cust, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_id", customerID)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if cust == nil {
		return nil, customer.ErrNotFound
	}

	domains, err := uc.domainRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to list domains", "error", err, "customer_id", customerID)
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	subs, err := uc.subscriptionRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "customer_id", customerID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	detail := &CustomerDetail{Customer: cust, Domains: domains}
	if len(subs) > 0 {
		detail.LatestSubscription = subs[0]
	}
	return detail, nil
}
