package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/shared/logger"
)

type CreateCustomerCommand struct {
	Username string
	Company  customer.Company
	Phone    string
}

type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewCreateCustomerUseCase(
	customerRepo customer.Repository,
	logger logger.Interface,
) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	cust, err := customer.NewCustomer(cmd.Username, cmd.Company, cmd.Phone)
	if err != nil {
		return nil, err
	}

	if err := uc.customerRepo.Create(ctx, cust); err != nil {
		uc.logger.Errorw("failed to create customer", "error", err, "username", cmd.Username)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	uc.logger.Infow("customer created", "customer_id", cust.ID(), "username", cust.Username())
	return cust, nil
}
