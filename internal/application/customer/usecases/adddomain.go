package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/shared/logger"
)

type AddDomainCommand struct {
	CustomerID uint
	URL        string
	WPAdminURL string
	WPSecret   string
}

type AddDomainUseCase struct {
	customerRepo customer.Repository
	domainRepo   customer.DomainRepository
	logger       logger.Interface
}

func NewAddDomainUseCase(
	customerRepo customer.Repository,
	domainRepo customer.DomainRepository,
	logger logger.Interface,
) *AddDomainUseCase {
	return &AddDomainUseCase{
		customerRepo: customerRepo,
		domainRepo:   domainRepo,
		logger:       logger,
	}
}

func (uc *AddDomainUseCase) Execute(ctx context.Context, cmd AddDomainCommand) (*customer.Domain, error) {
	cust, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_id", cmd.CustomerID)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if cust == nil {
		return nil, customer.ErrNotFound
	}

	dom, err := customer.NewDomain(cmd.CustomerID, cmd.URL)
	if err != nil {
		return nil, err
	}
	if cmd.WPAdminURL != "" {
		dom.ConfigureWordPress(cmd.WPAdminURL, cmd.WPSecret)
	}

	if err := uc.domainRepo.Create(ctx, dom); err != nil {
		uc.logger.Errorw("failed to create domain", "error", err, "url", cmd.URL)
		return nil, fmt.Errorf("failed to create domain: %w", err)
	}

	uc.logger.Infow("domain added", "domain_id", dom.ID(), "customer_id", cmd.CustomerID, "url", dom.URL())
	return dom, nil
}
