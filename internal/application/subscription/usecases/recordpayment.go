package usecases

import (
	"context"
	"fmt"
	"time"

	"hostdesk/internal/application/messages"
	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/notification"
	"hostdesk/internal/domain/sms"
	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/logger"

	notifvo "hostdesk/internal/domain/notification/valueobjects"
)

type RecordPaymentCommand struct {
	CustomerID   uint
	DomainID     uint
	YearlyCost   float64
	DomainCost   *float64
	BoughtDomain bool
	BeginDate    time.Time
}

// RecordPaymentUseCase opens a new one-year subscription for a domain. The
// previous active subscription on the same domain transitions to done so the
// domain never carries two active subscriptions at once.
type RecordPaymentUseCase struct {
	subscriptionRepo subscription.Repository
	customerRepo     customer.Repository
	domainRepo       customer.DomainRepository
	notificationRepo notification.Repository
	gateway          sms.Gateway
	smsLogRepo       sms.LogRepository
	logger           logger.Interface
}

func NewRecordPaymentUseCase(
	subscriptionRepo subscription.Repository,
	customerRepo customer.Repository,
	domainRepo customer.DomainRepository,
	notificationRepo notification.Repository,
	gateway sms.Gateway,
	smsLogRepo sms.LogRepository,
	logger logger.Interface,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		subscriptionRepo: subscriptionRepo,
		customerRepo:     customerRepo,
		domainRepo:       domainRepo,
		notificationRepo: notificationRepo,
		gateway:          gateway,
		smsLogRepo:       smsLogRepo,
		logger:           logger,
	}
}

func (uc *RecordPaymentUseCase) Execute(ctx context.Context, cmd RecordPaymentCommand) (*subscription.Subscription, error) {
	cust, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_id", cmd.CustomerID)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if cust == nil {
		return nil, customer.ErrNotFound
	}

	dom, err := uc.domainRepo.GetByID(ctx, cmd.DomainID)
	if err != nil {
		uc.logger.Errorw("failed to get domain", "error", err, "domain_id", cmd.DomainID)
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}
	if dom == nil {
		return nil, customer.ErrDomainNotFound
	}
	if dom.CustomerID() != cmd.CustomerID {
		return nil, fmt.Errorf("domain %d does not belong to customer %d", cmd.DomainID, cmd.CustomerID)
	}

	prior, err := uc.subscriptionRepo.FindActiveByDomain(ctx, cmd.DomainID)
	if err != nil {
		uc.logger.Errorw("failed to look up active subscription", "error", err, "domain_id", cmd.DomainID)
		return nil, fmt.Errorf("failed to look up active subscription: %w", err)
	}
	if prior != nil {
		if err := prior.Complete(); err != nil {
			return nil, fmt.Errorf("failed to complete prior subscription: %w", err)
		}
		if err := uc.subscriptionRepo.Update(ctx, prior); err != nil {
			uc.logger.Errorw("failed to persist prior subscription", "error", err, "subscription_id", prior.ID())
			return nil, fmt.Errorf("failed to persist prior subscription: %w", err)
		}
	}

	sub, err := subscription.NewSubscription(
		cmd.CustomerID, cmd.DomainID, cmd.YearlyCost, cmd.DomainCost, cmd.BoughtDomain, cmd.BeginDate,
	)
	if err != nil {
		return nil, err
	}
	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "domain_id", cmd.DomainID)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("payment recorded",
		"subscription_id", sub.ID(),
		"customer_id", cmd.CustomerID,
		"domain", dom.URL(),
		"expire_date", sub.ExpireDate(),
	)

	// confirmation SMS and the admin-inbox entry are best effort
	message := messages.PaymentReceived(cust.Username(), cmd.YearlyCost, sub.ExpireDate())
	uc.sendAndLog(ctx, cust.Phone(), message)

	customerID := cust.ID()
	actionURL := fmt.Sprintf("/user/%d", cust.ID())
	n, err := notification.NewNotification(
		notifvo.TypePaymentReceived,
		messages.NotificationPaymentTitle,
		messages.NotificationPaymentBody(cust.Username(), dom.URL(), cmd.YearlyCost),
		&actionURL,
		&customerID,
	)
	if err == nil {
		if err := uc.notificationRepo.Create(ctx, n); err != nil {
			uc.logger.Errorw("failed to record payment notification", "error", err, "customer_id", cust.ID())
		}
	}

	return sub, nil
}

func (uc *RecordPaymentUseCase) sendAndLog(ctx context.Context, phone, message string) {
	result, err := uc.gateway.Send(ctx, phone, message)
	status := sms.StatusSuccess
	var response *string
	if err != nil {
		status = sms.StatusFailed
		msg := err.Error()
		response = &msg
		uc.logger.Errorw("failed to send payment SMS", "error", err, "phone", phone)
	} else if !result.Success {
		status = sms.StatusFailed
		response = &result.ErrMessage
		uc.logger.Warnw("payment SMS rejected by gateway", "phone", phone, "response", result.ErrMessage)
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
