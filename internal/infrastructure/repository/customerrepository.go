package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/infrastructure/persistence/mappers"
	"hostdesk/internal/infrastructure/persistence/models"
	"hostdesk/internal/shared/logger"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
	logger logger.Interface
}

func NewCustomerRepository(
	db *gorm.DB,
	logger logger.Interface,
) *CustomerRepositoryImpl {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
		logger: logger,
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer in database", "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set customer ID", "error", err)
		return fmt.Errorf("failed to set customer ID: %w", err)
	}

	r.logger.Infow("customer created", "id", model.ID, "username", model.Username)
	return nil
}

func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)

	result := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"username":   model.Username,
			"company":    model.Company,
			"phone":      model.Phone,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update customer", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrNotFound
	}
	return nil
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete customer", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrNotFound
	}
	return nil
}

func (r *CustomerRepositoryImpl) List(ctx context.Context) ([]*customer.Customer, error) {
	var modelList []models.CustomerModel

	if err := r.db.WithContext(ctx).Order("username ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*customer.Customer, 0, len(modelList))
	for i := range modelList {
		entity, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map customer model", "id", modelList[i].ID, "error", err)
			return nil, fmt.Errorf("failed to map customer: %w", err)
		}
		customers = append(customers, entity)
	}
	return customers, nil
}

func (r *CustomerRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
