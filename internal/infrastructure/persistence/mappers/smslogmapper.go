package mappers

import (
	"hostdesk/internal/domain/sms"
	"hostdesk/internal/infrastructure/persistence/models"
)

// SMSLogMapper handles conversion between SMS log domain and model.
type SMSLogMapper interface {
	ToModel(l *sms.Log) *models.SMSLogModel
	ToDomain(model *models.SMSLogModel) (*sms.Log, error)
}

type SMSLogMapperImpl struct{}

func NewSMSLogMapper() SMSLogMapper {
	return &SMSLogMapperImpl{}
}

func (m *SMSLogMapperImpl) ToModel(l *sms.Log) *models.SMSLogModel {
	return &models.SMSLogModel{
		ID:       l.ID(),
		Phone:    l.Phone(),
		Message:  l.Message(),
		Status:   l.Status().String(),
		Response: l.Response(),
		SentAt:   l.SentAt(),
	}
}

func (m *SMSLogMapperImpl) ToDomain(model *models.SMSLogModel) (*sms.Log, error) {
	return sms.ReconstructLog(
		model.ID,
		model.Phone,
		model.Message,
		sms.Status(model.Status),
		model.Response,
		model.SentAt,
	)
}
