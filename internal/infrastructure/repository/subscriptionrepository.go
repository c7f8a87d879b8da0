package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/infrastructure/persistence/mappers"
	"hostdesk/internal/infrastructure/persistence/models"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/constants"
	"hostdesk/internal/shared/logger"

	subvo "hostdesk/internal/domain/subscription/valueobjects"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(
	db *gorm.DB,
	logger logger.Interface,
) *SubscriptionRepositoryImpl {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

// flagColumn maps a reminder kind to its database column. Both call sites go
// through here so a typo cannot silently update the wrong flag.
func flagColumn(kind subvo.ReminderKind) string {
	if kind == subvo.ReminderOneWeek {
		return "one_week_reminder_sent"
	}
	return "one_month_reminder_sent"
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created", "id", model.ID, "customer_id", model.CustomerID, "domain_id", model.DomainID)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}
	return entity, nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"customer_id":             model.CustomerID,
			"domain_id":               model.DomainID,
			"yearly_cost":             model.YearlyCost,
			"domain_cost":             model.DomainCost,
			"bought_domain":           model.BoughtDomain,
			"begin_date":              model.BeginDate,
			"expire_date":             model.ExpireDate,
			"status":                  model.Status,
			"cancelled_at":            model.CancelledAt,
			"cancel_reason":           model.CancelReason,
			"one_month_reminder_sent": model.OneMonthReminderSent,
			"one_week_reminder_sent":  model.OneWeekReminderSent,
			"updated_at":              model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SubscriptionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*subscription.Subscription, error) {
	var modelList []models.SubscriptionModel

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("begin_date DESC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs := make([]*subscription.Subscription, 0, len(modelList))
	for i := range modelList {
		entity, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map subscription model", "id", modelList[i].ID, "error", err)
			return nil, fmt.Errorf("failed to map subscription: %w", err)
		}
		subs = append(subs, entity)
	}
	return subs, nil
}

func (r *SubscriptionRepositoryImpl) FindActiveByDomain(ctx context.Context, domainID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("domain_id = ? AND status = ?", domainID, subvo.StatusActive.String()).
		Order("begin_date DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find active subscription", "domain_id", domainID, "error", err)
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// MarkExpired bulk-transitions active subscriptions whose expire date is
// before the cutoff. Cancelled and done rows are never touched.
func (r *SubscriptionRepositoryImpl) MarkExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("status = ? AND expire_date < ?", subvo.StatusActive.String(), before).
		Updates(map[string]interface{}{
			"status":     subvo.StatusExpired.String(),
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to mark expired subscriptions", "error", result.Error)
		return 0, fmt.Errorf("failed to mark expired subscriptions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ListDueForReminder selects active, uncancelled, unflagged subscriptions
// whose expire date falls inside the window, joined with the customer and
// domain the dispatcher needs.
func (r *SubscriptionRepositoryImpl) ListDueForReminder(ctx context.Context, window subscription.ReminderWindow) ([]subscription.DueReminder, error) {
	type dueRow struct {
		SubscriptionID uint
		CustomerID     uint
		CustomerName   string
		Phone          string
		DomainID       uint
		DomainURL      string
		YearlyCost     float64
		ExpireDate     time.Time
	}

	var rows []dueRow
	err := r.db.WithContext(ctx).
		Table(constants.TableSubscriptions+" AS s").
		Select(`s.id AS subscription_id,
			c.id AS customer_id,
			c.username AS customer_name,
			c.phone AS phone,
			d.id AS domain_id,
			d.url AS domain_url,
			s.yearly_cost AS yearly_cost,
			s.expire_date AS expire_date`).
		Joins(fmt.Sprintf("JOIN %s AS c ON c.id = s.customer_id", constants.TableCustomers)).
		Joins(fmt.Sprintf("JOIN %s AS d ON d.id = s.domain_id", constants.TableDomains)).
		Where("s.status = ?", subvo.StatusActive.String()).
		Where("s.cancelled_at IS NULL").
		Where(fmt.Sprintf("s.%s = ?", flagColumn(window.Kind)), false).
		Where("s.expire_date BETWEEN ? AND ?", window.From, window.To).
		Order("s.expire_date ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list due reminders", "kind", window.Kind.String(), "error", err)
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}

	due := make([]subscription.DueReminder, 0, len(rows))
	for _, row := range rows {
		due = append(due, subscription.DueReminder{
			SubscriptionID: row.SubscriptionID,
			CustomerID:     row.CustomerID,
			CustomerName:   row.CustomerName,
			Phone:          row.Phone,
			DomainID:       row.DomainID,
			DomainURL:      row.DomainURL,
			YearlyCost:     row.YearlyCost,
			ExpireDate:     row.ExpireDate,
		})
	}
	return due, nil
}

// ClaimReminder flips the reminder flag only if it is still clear. A false
// return means another run already owns this dispatch.
func (r *SubscriptionRepositoryImpl) ClaimReminder(ctx context.Context, id uint, kind subvo.ReminderKind) (bool, error) {
	column := flagColumn(kind)

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where(fmt.Sprintf("id = ? AND %s = ?", column), id, false).
		Updates(map[string]interface{}{
			column:       true,
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to claim reminder", "id", id, "kind", kind.String(), "error", result.Error)
		return false, fmt.Errorf("failed to claim reminder: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ResetReminderFlags clears the window's flag for re-delivery after a crashed
// or misfired run. Only rows inside the window are affected.
func (r *SubscriptionRepositoryImpl) ResetReminderFlags(ctx context.Context, window subscription.ReminderWindow) (int64, error) {
	column := flagColumn(window.Kind)

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("status = ? AND cancelled_at IS NULL", subvo.StatusActive.String()).
		Where("expire_date BETWEEN ? AND ?", window.From, window.To).
		Where(fmt.Sprintf("%s = ?", column), true).
		Updates(map[string]interface{}{
			column:       false,
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to reset reminder flags", "kind", window.Kind.String(), "error", result.Error)
		return 0, fmt.Errorf("failed to reset reminder flags: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CountActive reports currently active subscriptions.
func (r *SubscriptionRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("status = ?", subvo.StatusActive.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	return count, nil
}

// CountExpiringBetween reports active subscriptions expiring inside the range.
func (r *SubscriptionRepositoryImpl) CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("status = ?", subvo.StatusActive.String()).
		Where("expire_date BETWEEN ? AND ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count expiring subscriptions: %w", err)
	}
	return count, nil
}

// CountCustomersWithActive reports distinct customers holding an active
// subscription. The dashboard divides the server cost across them.
func (r *SubscriptionRepositoryImpl) CountCustomersWithActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("status = ?", subvo.StatusActive.String()).
		Distinct("customer_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count paying customers: %w", err)
	}
	return count, nil
}
