package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/shared/logger"
)

type DeleteCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(
	customerRepo customer.Repository,
	logger logger.Interface,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, customerID uint) error {
	cust, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_id", customerID)
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if cust == nil {
		return customer.ErrNotFound
	}

	if err := uc.customerRepo.Delete(ctx, customerID); err != nil {
		uc.logger.Errorw("failed to delete customer", "error", err, "customer_id", customerID)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	uc.logger.Infow("customer deleted", "customer_id", customerID)
	return nil
}
