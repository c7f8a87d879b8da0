package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/shared/logger"
)

type UpdateCustomerCommand struct {
	CustomerID uint
	Username   string
	Company    customer.Company
	Phone      string
}

type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.Repository,
	logger logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	cust, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_id", cmd.CustomerID)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if cust == nil {
		return nil, customer.ErrNotFound
	}

	if err := cust.UpdateProfile(cmd.Username, cmd.Company, cmd.Phone); err != nil {
		return nil, err
	}

	if err := uc.customerRepo.Update(ctx, cust); err != nil {
		uc.logger.Errorw("failed to update customer", "error", err, "customer_id", cmd.CustomerID)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	uc.logger.Infow("customer updated", "customer_id", cust.ID())
	return cust, nil
}
