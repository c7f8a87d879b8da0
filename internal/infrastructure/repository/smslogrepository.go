package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hostdesk/internal/domain/sms"
	"hostdesk/internal/infrastructure/persistence/mappers"
	"hostdesk/internal/infrastructure/persistence/models"
	"hostdesk/internal/shared/logger"
)

type SMSLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SMSLogMapper
	logger logger.Interface
}

func NewSMSLogRepository(
	db *gorm.DB,
	logger logger.Interface,
) *SMSLogRepositoryImpl {
	return &SMSLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewSMSLogMapper(),
		logger: logger,
	}
}

func (r *SMSLogRepositoryImpl) Create(ctx context.Context, l *sms.Log) error {
	model := r.mapper.ToModel(l)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create sms log in database", "error", err)
		return fmt.Errorf("failed to create sms log: %w", err)
	}

	if err := l.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set sms log ID", "error", err)
		return fmt.Errorf("failed to set sms log ID: %w", err)
	}
	return nil
}

func (r *SMSLogRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*sms.Log, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SMSLogModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sms logs: %w", err)
	}

	var modelList []models.SMSLogModel
	if err := r.db.WithContext(ctx).
		Order("sent_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list sms logs", "error", err)
		return nil, 0, fmt.Errorf("failed to list sms logs: %w", err)
	}

	logs := make([]*sms.Log, 0, len(modelList))
	for i := range modelList {
		entity, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map sms log model", "id", modelList[i].ID, "error", err)
			return nil, 0, fmt.Errorf("failed to map sms log: %w", err)
		}
		logs = append(logs, entity)
	}
	return logs, total, nil
}
