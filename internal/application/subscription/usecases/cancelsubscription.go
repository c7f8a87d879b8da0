package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/application/messages"
	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/notification"
	"hostdesk/internal/domain/sms"
	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/logger"

	notifvo "hostdesk/internal/domain/notification/valueobjects"
)

type CancelSubscriptionCommand struct {
	SubscriptionID uint
	Reason         string
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	customerRepo     customer.Repository
	domainRepo       customer.DomainRepository
	notificationRepo notification.Repository
	gateway          sms.Gateway
	smsLogRepo       sms.LogRepository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	customerRepo customer.Repository,
	domainRepo customer.DomainRepository,
	notificationRepo notification.Repository,
	gateway sms.Gateway,
	smsLogRepo sms.LogRepository,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		customerRepo:     customerRepo,
		domainRepo:       domainRepo,
		notificationRepo: notificationRepo,
		gateway:          gateway,
		smsLogRepo:       smsLogRepo,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, subscription.ErrNotFound
	}

	if err := sub.Cancel(cmd.Reason); err != nil {
		return nil, err
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist cancellation", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to persist cancellation: %w", err)
	}

	uc.logger.Infow("subscription cancelled",
		"subscription_id", sub.ID(),
		"customer_id", sub.CustomerID(),
		"reason", cmd.Reason,
	)

	// the cancellation itself is committed; SMS and inbox entry are best effort
	cust, err := uc.customerRepo.GetByID(ctx, sub.CustomerID())
	if err != nil || cust == nil {
		uc.logger.Warnw("customer unavailable for cancellation SMS", "error", err, "customer_id", sub.CustomerID())
		return sub, nil
	}
	domainURL := ""
	if dom, derr := uc.domainRepo.GetByID(ctx, sub.DomainID()); derr == nil && dom != nil {
		domainURL = dom.URL()
	}

	message := messages.SubscriptionCancelled(cust.Username(), domainURL)
	uc.sendAndLog(ctx, cust.Phone(), message)

	customerID := cust.ID()
	actionURL := fmt.Sprintf("/user/%d", cust.ID())
	n, nerr := notification.NewNotification(
		notifvo.TypeSubscriptionCancelled,
		messages.NotificationCancelledTitle,
		messages.NotificationCancelledBody(cust.Username(), domainURL, cmd.Reason),
		&actionURL,
		&customerID,
	)
	if nerr == nil {
		if err := uc.notificationRepo.Create(ctx, n); err != nil {
			uc.logger.Errorw("failed to record cancellation notification", "error", err, "customer_id", cust.ID())
		}
	}

	return sub, nil
}

func (uc *CancelSubscriptionUseCase) sendAndLog(ctx context.Context, phone, message string) {
	result, err := uc.gateway.Send(ctx, phone, message)
	status := sms.StatusSuccess
	var response *string
	if err != nil {
		status = sms.StatusFailed
		msg := err.Error()
		response = &msg
		uc.logger.Errorw("failed to send cancellation SMS", "error", err, "phone", phone)
	} else if !result.Success {
		status = sms.StatusFailed
		response = &result.ErrMessage
		uc.logger.Warnw("cancellation SMS rejected by gateway", "phone", phone, "response", result.ErrMessage)
	} else if result.RawResponse != "" {
		response = &result.RawResponse
	}

	log, lerr := sms.NewLog(phone, message, status, response)
	if lerr != nil {
		return
	}
	if lerr := uc.smsLogRepo.Create(ctx, log); lerr != nil {
		uc.logger.Errorw("failed to write sms log", "error", lerr, "phone", phone)
	}
}
