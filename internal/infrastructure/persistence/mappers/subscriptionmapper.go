package mappers

import (
	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/infrastructure/persistence/models"

	subvo "hostdesk/internal/domain/subscription/valueobjects"
)

// SubscriptionMapper handles conversion between Subscription domain and model.
type SubscriptionMapper interface {
	ToModel(sub *subscription.Subscription) *models.SubscriptionModel
	ToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToModel(sub *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
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

func (m *SubscriptionMapperImpl) ToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	return subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:                   model.ID,
		CustomerID:           model.CustomerID,
		DomainID:             model.DomainID,
		YearlyCost:           model.YearlyCost,
		DomainCost:           model.DomainCost,
		BoughtDomain:         model.BoughtDomain,
		BeginDate:            model.BeginDate,
		ExpireDate:           model.ExpireDate,
		Status:               subvo.SubscriptionStatus(model.Status),
		CancelledAt:          model.CancelledAt,
		CancelReason:         model.CancelReason,
		OneMonthReminderSent: model.OneMonthReminderSent,
		OneWeekReminderSent:  model.OneWeekReminderSent,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	})
}
