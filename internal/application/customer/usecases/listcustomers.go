package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/shared/logger"
)

type ListCustomersUseCase struct {
	customerRepo     customer.Repository
	domainRepo       customer.DomainRepository
	subscriptionRepo SubscriptionSource
	logger           logger.Interface
}

func NewListCustomersUseCase(
	customerRepo customer.Repository,
	domainRepo customer.DomainRepository,
	subscriptionRepo SubscriptionSource,
	logger logger.Interface,
) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo:     customerRepo,
		domainRepo:       domainRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*CustomerDetail, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	details := make([]*CustomerDetail, 0, len(customers))
	for _, cust := range customers {
		domains, err := uc.domainRepo.ListByCustomer(ctx, cust.ID())
		if err != nil {
			uc.logger.Errorw("failed to list domains", "error", err, "customer_id", cust.ID())
			return nil, fmt.Errorf("failed to list domains: %w", err)
		}

		subs, err := uc.subscriptionRepo.ListByCustomer(ctx, cust.ID())
		if err != nil {
			uc.logger.Errorw("failed to list subscriptions", "error", err, "customer_id", cust.ID())
			return nil, fmt.Errorf("failed to list subscriptions: %w", err)
		}

		detail := &CustomerDetail{Customer: cust, Domains: domains}
		if len(subs) > 0 {
			detail.LatestSubscription = subs[0]
		}
		details = append(details, detail)
	}
	return details, nil
}
