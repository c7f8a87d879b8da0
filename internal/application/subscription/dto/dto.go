package dto

import (
	"time"

	"hostdesk/internal/domain/subscription"
)

type SubscriptionDTO struct {
	ID                   uint       `json:"id"`
	CustomerID           uint       `json:"customer_id"`
	DomainID             uint       `json:"domain_id"`
	YearlyCost           float64    `json:"yearly_cost"`
	DomainCost           *float64   `json:"domain_cost,omitempty"`
	BoughtDomain         bool       `json:"bought_domain"`
	BeginDate            time.Time  `json:"begin_date"`
	ExpireDate           time.Time  `json:"expire_date"`
	Status               string     `json:"status"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CancelReason         *string    `json:"cancel_reason,omitempty"`
	OneMonthReminderSent bool       `json:"one_month_reminder_sent"`
	OneWeekReminderSent  bool       `json:"one_week_reminder_sent"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func ToSubscriptionDTO(sub *subscription.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:                   sub.ID(),
		CustomerID:           sub.CustomerID(),
		DomainID:             sub.DomainID(),
		YearlyCost:           sub.YearlyCost(),
		DomainCost:           sub.DomainCost(),
		BoughtDomain:         sub.BoughtDomain(),
		BeginDate:            sub.BeginDate(),
		ExpireDate:           sub.ExpireDate(),
		Status:               sub.Status().String(),
		CancelledAt:          sub.CancelledAt(),
		CancelReason:         sub.CancelReason(),
		OneMonthReminderSent: sub.OneMonthReminderSent(),
		OneWeekReminderSent:  sub.OneWeekReminderSent(),
		CreatedAt:            sub.CreatedAt(),
		UpdatedAt:            sub.UpdatedAt(),
	}
}

func ToSubscriptionDTOList(subs []*subscription.Subscription) []*SubscriptionDTO {
	dtos := make([]*SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		if sub != nil {
			dtos = append(dtos, ToSubscriptionDTO(sub))
		}
	}
	return dtos
}
