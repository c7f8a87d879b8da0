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

type DomainRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DomainMapper
	logger logger.Interface
}

func NewDomainRepository(
	db *gorm.DB,
	logger logger.Interface,
) *DomainRepositoryImpl {
	return &DomainRepositoryImpl{
		db:     db,
		mapper: mappers.NewDomainMapper(),
		logger: logger,
	}
}

func (r *DomainRepositoryImpl) Create(ctx context.Context, d *customer.Domain) error {
	model := r.mapper.ToModel(d)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create domain in database", "error", err)
		return fmt.Errorf("failed to create domain: %w", err)
	}

	if err := d.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set domain ID", "error", err)
		return fmt.Errorf("failed to set domain ID: %w", err)
	}

	r.logger.Infow("domain created", "id", model.ID, "customer_id", model.CustomerID, "url", model.URL)
	return nil
}

func (r *DomainRepositoryImpl) GetByID(ctx context.Context, id uint) (*customer.Domain, error) {
	var model models.DomainModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get domain by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DomainRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*customer.Domain, error) {
	var modelList []models.DomainModel

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("url ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list domains", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	domains := make([]*customer.Domain, 0, len(modelList))
	for i := range modelList {
		entity, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map domain model", "id", modelList[i].ID, "error", err)
			return nil, fmt.Errorf("failed to map domain: %w", err)
		}
		domains = append(domains, entity)
	}
	return domains, nil
}

func (r *DomainRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.DomainModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete domain", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete domain: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrDomainNotFound
	}
	return nil
}
