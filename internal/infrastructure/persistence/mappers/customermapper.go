package mappers

import (
	"hostdesk/internal/domain/customer"
	"hostdesk/internal/infrastructure/persistence/models"
)

// CustomerMapper handles conversion between Customer domain and model.
type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) (*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:        c.ID(),
		Username:  c.Username(),
		Company:   string(c.Company()),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.Username,
		customer.Company(model.Company),
		model.Phone,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
