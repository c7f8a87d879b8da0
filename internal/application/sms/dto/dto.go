package dto

import (
	"time"

	"hostdesk/internal/domain/sms"
)

type SMSLogDTO struct {
	ID       uint      `json:"id"`
	Phone    string    `json:"phone"`
	Message  string    `json:"message"`
	Status   string    `json:"status"`
	Response *string   `json:"response,omitempty"`
	SentAt   time.Time `json:"sent_at"`
}

type SMSLogListDTO struct {
	Logs  []*SMSLogDTO `json:"logs"`
	Total int64        `json:"total"`
}

func ToSMSLogDTO(l *sms.Log) *SMSLogDTO {
	if l == nil {
		return nil
	}
	return &SMSLogDTO{
		ID:       l.ID(),
		Phone:    l.Phone(),
		Message:  l.Message(),
		Status:   l.Status().String(),
		Response: l.Response(),
		SentAt:   l.SentAt(),
	}
}

func ToSMSLogDTOList(logs []*sms.Log) []*SMSLogDTO {
	dtos := make([]*SMSLogDTO, 0, len(logs))
	for _, l := range logs {
		if l != nil {
			dtos = append(dtos, ToSMSLogDTO(l))
		}
	}
	return dtos
}
