package usecases

import (
	"context"
	"fmt"
	"time"

	"hostdesk/internal/application/messages"
	"hostdesk/internal/application/reminder/dto"
	"hostdesk/internal/domain/notification"
	"hostdesk/internal/domain/setting"
	"hostdesk/internal/domain/sms"
	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"

	notifvo "hostdesk/internal/domain/notification/valueobjects"
	subvo "hostdesk/internal/domain/subscription/valueobjects"
)

// reminderPass describes one reminder kind as data: its window, its message
// builders and its admin-inbox title. Both passes run through the same loop.
type reminderPass struct {
	kind              subvo.ReminderKind
	window            func(now time.Time) subscription.ReminderWindow
	customerMessage   func(d subscription.DueReminder) string
	adminMessage      func(d subscription.DueReminder) string
	notificationTitle string
}

var reminderPasses = []reminderPass{
	{
		kind:   subvo.ReminderOneMonth,
		window: subscription.OneMonthWindow,
		customerMessage: func(d subscription.DueReminder) string {
			return messages.CustomerOneMonth(d.CustomerName, d.DomainURL, d.ExpireDate, d.YearlyCost)
		},
		adminMessage: func(d subscription.DueReminder) string {
			return messages.AdminOneMonth(d.CustomerName, d.DomainURL, d.ExpireDate, d.YearlyCost, d.Phone)
		},
		notificationTitle: messages.NotificationOneMonthTitle,
	},
	{
		kind:   subvo.ReminderOneWeek,
		window: subscription.OneWeekWindow,
		customerMessage: func(d subscription.DueReminder) string {
			return messages.CustomerOneWeek(d.CustomerName, d.DomainURL, d.ExpireDate, d.YearlyCost)
		},
		adminMessage: func(d subscription.DueReminder) string {
			return messages.AdminOneWeek(d.CustomerName, d.DomainURL, d.ExpireDate, d.YearlyCost, d.Phone)
		},
		notificationTitle: messages.NotificationOneWeekTitle,
	},
}

// RunRemindersUseCase is the reminder run orchestrator: status evaluation,
// then the one-month and one-week passes, each sequential so that a
// subscription's flag is committed before the next one is touched.
type RunRemindersUseCase struct {
	subscriptionRepo subscription.Repository
	notificationRepo notification.Repository
	settingRepo      setting.Repository
	gateway          sms.Gateway
	smsLogRepo       sms.LogRepository
	expirer          *ExpireSubscriptionsUseCase
	now              func() time.Time
	logger           logger.Interface
}

func NewRunRemindersUseCase(
	subscriptionRepo subscription.Repository,
	notificationRepo notification.Repository,
	settingRepo setting.Repository,
	gateway sms.Gateway,
	smsLogRepo sms.LogRepository,
	now func() time.Time,
	logger logger.Interface,
) *RunRemindersUseCase {
	if now == nil {
		now = biztime.NowUTC
	}
	return &RunRemindersUseCase{
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
		settingRepo:      settingRepo,
		gateway:          gateway,
		smsLogRepo:       smsLogRepo,
		expirer:          NewExpireSubscriptionsUseCase(subscriptionRepo, now, logger),
		now:              now,
		logger:           logger,
	}
}

// Execute runs the full reminder batch and returns the aggregate report.
// Committed work is never rolled back: re-invoking without reset skips every
// subscription whose flag is already set.
func (uc *RunRemindersUseCase) Execute(ctx context.Context, req dto.RunRemindersRequest) (*dto.RunRemindersResult, error) {
	settings, err := uc.settingRepo.Get(ctx)
	if err != nil {
		// Availability over strictness here: without settings the run still
		// proceeds against the known defaults.
		uc.logger.Warnw("failed to load settings, using defaults", "error", err)
		settings = setting.Defaults()
	}

	if _, err := uc.expirer.Execute(ctx); err != nil {
		uc.logger.Errorw("failed to update subscription statuses", "error", err)
	}

	result := &dto.RunRemindersResult{
		Success:         true,
		OneMonthDetails: []dto.ReminderDetail{},
		OneWeekDetails:  []dto.ReminderDetail{},
	}

	if !settings.AutoMessagesEnabled {
		uc.logger.Infow("auto messages are disabled, skipping reminder checks")
		result.Message = "Auto messages disabled"
		return result, nil
	}

	now := uc.now()

	for _, pass := range reminderPasses {
		details := uc.runPass(ctx, pass, now, settings.AdminPhone, req.Reset)
		switch pass.kind {
		case subvo.ReminderOneMonth:
			result.OneMonthReminders = len(details)
			result.OneMonthDetails = details
		case subvo.ReminderOneWeek:
			result.OneWeekReminders = len(details)
			result.OneWeekDetails = details
		}
	}

	return result, nil
}

// runPass executes one reminder window pass. A failure selecting the window
// ends that pass only; dispatch failures are isolated per subscription.
func (uc *RunRemindersUseCase) runPass(ctx context.Context, pass reminderPass, now time.Time, adminPhone string, reset bool) []dto.ReminderDetail {
	window := pass.window(now)
	log := uc.logger.With("reminder_kind", pass.kind.String())

	if reset {
		cleared, err := uc.subscriptionRepo.ResetReminderFlags(ctx, window)
		if err != nil {
			log.Errorw("failed to reset reminder flags", "error", err)
		} else if cleared > 0 {
			log.Infow("reminder flags reset", "count", cleared)
		}
	}

	due, err := uc.subscriptionRepo.ListDueForReminder(ctx, window)
	if err != nil {
		log.Errorw("failed to select due subscriptions", "error", err)
		return []dto.ReminderDetail{}
	}

	if len(due) == 0 {
		return []dto.ReminderDetail{}
	}

	log.Infow("found subscriptions due for reminder", "count", len(due))

	details := make([]dto.ReminderDetail, 0, len(due))
	for _, d := range due {
		detail, ok := uc.dispatch(ctx, pass, d, adminPhone, log)
		if ok {
			details = append(details, detail)
		}
	}

	return details
}

// dispatch handles one subscription: claim the flag, send both messages,
// record the inbox notification. The claim comes first so two overlapping
// runs cannot both send; a crash after the claim is recovered with reset.
func (uc *RunRemindersUseCase) dispatch(ctx context.Context, pass reminderPass, d subscription.DueReminder, adminPhone string, log logger.Interface) (dto.ReminderDetail, bool) {
	claimed, err := uc.subscriptionRepo.ClaimReminder(ctx, d.SubscriptionID, pass.kind)
	if err != nil {
		log.Errorw("failed to claim reminder",
			"subscription_id", d.SubscriptionID,
			"error", err,
		)
		return dto.ReminderDetail{}, false
	}
	if !claimed {
		log.Debugw("reminder already claimed by another run",
			"subscription_id", d.SubscriptionID,
		)
		return dto.ReminderDetail{}, false
	}

	userSent, userErr := uc.sendAndLog(ctx, d.Phone, pass.customerMessage(d))
	adminSent, adminErr := uc.sendAndLog(ctx, adminPhone, pass.adminMessage(d))

	uc.recordNotification(ctx, pass, d, log)

	if userSent && adminSent {
		log.Infow("reminder dispatched",
			"subscription_id", d.SubscriptionID,
			"domain", d.DomainURL,
		)
	} else {
		log.Warnw("reminder dispatched with failures",
			"subscription_id", d.SubscriptionID,
			"domain", d.DomainURL,
			"user_sms_error", userErr,
			"admin_sms_error", adminErr,
		)
	}

	return dto.ReminderDetail{
		Customer:      d.CustomerName,
		Phone:         d.Phone,
		Domain:        d.DomainURL,
		ExpireDate:    biztime.FormatInBizTimezone(d.ExpireDate, "2006-01-02"),
		UserSMSSent:   userSent,
		AdminSMSSent:  adminSent,
		UserSMSError:  userErr,
		AdminSMSError: adminErr,
	}, true
}

// sendAndLog sends one SMS and writes the audit-log row. Gateway failures are
// reported back, never propagated.
func (uc *RunRemindersUseCase) sendAndLog(ctx context.Context, phone, message string) (bool, string) {
	res, err := uc.gateway.Send(ctx, phone, message)

	status := sms.StatusSuccess
	errMsg := ""
	var response *string
	switch {
	case err != nil:
		status = sms.StatusFailed
		errMsg = err.Error()
	case !res.Success:
		status = sms.StatusFailed
		errMsg = res.ErrMessage
		response = &res.RawResponse
	default:
		response = &res.RawResponse
	}

	if logEntry, logErr := sms.NewLog(phone, message, status, response); logErr == nil {
		if createErr := uc.smsLogRepo.Create(ctx, logEntry); createErr != nil {
			uc.logger.Warnw("failed to persist sms log", "phone", phone, "error", createErr)
		}
	}

	return status == sms.StatusSuccess, errMsg
}

func (uc *RunRemindersUseCase) recordNotification(ctx context.Context, pass reminderPass, d subscription.DueReminder, log logger.Interface) {
	actionURL := fmt.Sprintf("/user/%d", d.CustomerID)
	customerID := d.CustomerID

	n, err := notification.NewNotification(
		notifvo.TypeSubscriptionExpiring,
		pass.notificationTitle,
		messages.NotificationExpiringBody(d.CustomerName, d.DomainURL, d.ExpireDate, d.Phone),
		&actionURL,
		&customerID,
	)
	if err != nil {
		log.Errorw("failed to build notification", "subscription_id", d.SubscriptionID, "error", err)
		return
	}

	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		log.Errorw("failed to create notification", "subscription_id", d.SubscriptionID, "error", err)
	}
}
