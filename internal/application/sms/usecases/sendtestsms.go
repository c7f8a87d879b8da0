package usecases

import (
	"context"
	"fmt"
	"time"

	"hostdesk/internal/application/messages"
	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/sms"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"
)

// TestTemplate selects which fixed message a test send uses.
type TestTemplate string

const (
	TemplateOneMonth  TestTemplate = "one_month"
	TemplateOneWeek   TestTemplate = "one_week"
	TemplatePayment   TestTemplate = "payment"
	TemplateCancelled TestTemplate = "cancelled"
	TemplateCustom    TestTemplate = "custom"
)

type SendTestSMSCommand struct {
	CustomerID uint
	Template   TestTemplate
	CustomText string
}

type SendTestSMSResult struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Sent    bool   `json:"sent"`
	Error   string `json:"error,omitempty"`
}

// SendTestSMSUseCase sends one of the fixed templates, or free text, to a
// customer's phone with placeholder subscription values. Every attempt is
// written to the SMS log like a real dispatch.
type SendTestSMSUseCase struct {
	customerRepo customer.Repository
	gateway      sms.Gateway
	smsLogRepo   sms.LogRepository
	now          func() time.Time
	logger       logger.Interface
}

func NewSendTestSMSUseCase(
	customerRepo customer.Repository,
	gateway sms.Gateway,
	smsLogRepo sms.LogRepository,
	now func() time.Time,
	logger logger.Interface,
) *SendTestSMSUseCase {
	if now == nil {
		now = biztime.NowUTC
	}
	return &SendTestSMSUseCase{
		customerRepo: customerRepo,
		gateway:      gateway,
		smsLogRepo:   smsLogRepo,
		now:          now,
		logger:       logger,
	}
}

func (uc *SendTestSMSUseCase) Execute(ctx context.Context, cmd SendTestSMSCommand) (*SendTestSMSResult, error) {
	cust, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_id", cmd.CustomerID)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if cust == nil {
		return nil, customer.ErrNotFound
	}

	message, err := uc.buildMessage(cust.Username(), cmd)
	if err != nil {
		return nil, err
	}

	result := &SendTestSMSResult{Phone: cust.Phone(), Message: message}

	sendResult, err := uc.gateway.Send(ctx, cust.Phone(), message)
	status := sms.StatusSuccess
	var response *string
	switch {
	case err != nil:
		status = sms.StatusFailed
		msg := err.Error()
		response = &msg
		result.Error = msg
	case !sendResult.Success:
		status = sms.StatusFailed
		response = &sendResult.ErrMessage
		result.Error = sendResult.ErrMessage
	default:
		result.Sent = true
		if sendResult.RawResponse != "" {
			response = &sendResult.RawResponse
		}
	}

	if log, lerr := sms.NewLog(cust.Phone(), message, status, response); lerr == nil {
		if lerr := uc.smsLogRepo.Create(ctx, log); lerr != nil {
			uc.logger.Errorw("failed to write sms log", "error", lerr, "phone", cust.Phone())
		}
	}

	uc.logger.Infow("test SMS processed",
		"customer_id", cmd.CustomerID,
		"template", cmd.Template,
		"sent", result.Sent,
	)
	return result, nil
}

func (uc *SendTestSMSUseCase) buildMessage(username string, cmd SendTestSMSCommand) (string, error) {
	// sample values so the operator sees the real template shape
	sampleExpire := biztime.AddCalendarMonths(uc.now(), 1)
	const sampleDomain = "example.com"
	const sampleCost = 1200.0

	switch cmd.Template {
	case TemplateOneMonth:
		return messages.CustomerOneMonth(username, sampleDomain, sampleExpire, sampleCost), nil
	case TemplateOneWeek:
		return messages.CustomerOneWeek(username, sampleDomain, sampleExpire, sampleCost), nil
	case TemplatePayment:
		return messages.PaymentReceived(username, sampleCost, sampleExpire), nil
	case TemplateCancelled:
		return messages.SubscriptionCancelled(username, sampleDomain), nil
	case TemplateCustom:
		if cmd.CustomText == "" {
			return "", fmt.Errorf("custom message text is required")
		}
		return cmd.CustomText, nil
	default:
		return "", fmt.Errorf("unknown test template: %s", cmd.Template)
	}
}
