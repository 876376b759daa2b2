package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"ispbilling-backend/logger"
	"ispbilling-backend/models"
)

// BillingService runs the daily billing sweep: warn subscribers whose due
// date is close, deactivate the ones past grace, and issue the period's
// invoices on each profile's billing cycle day.
type BillingService struct {
	db            *gorm.DB
	notifications *NotificationService
	cron          *cron.Cron

	WarningDays int
	GraceDays   int
}

func NewBillingService(db *gorm.DB, notifications *NotificationService, warningDays, graceDays int) *BillingService {
	return &BillingService{
		db:            db,
		notifications: notifications,
		WarningDays:   warningDays,
		GraceDays:     graceDays,
	}
}

func (s *BillingService) StartScheduler(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { s.RunDailySweep(time.Now()) }); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	logger.Logger.Infof("Billing scheduler started (%s)", schedule)
	return nil
}

func (s *BillingService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *BillingService) RunDailySweep(now time.Time) {
	if err := s.NotifyDueSoon(now); err != nil {
		logger.Logger.WithError(err).Error("Due-soon sweep failed")
	}
	if err := s.DeactivateOverdue(now); err != nil {
		logger.Logger.WithError(err).Error("Overdue sweep failed")
	}
	if err := s.IssueInvoices(now); err != nil {
		logger.Logger.WithError(err).Error("Invoice issuing failed")
	}
}

// NotifyDueSoon emits a "billing" notification for every active secret whose
// due date falls inside the warning window.
func (s *BillingService) NotifyDueSoon(now time.Time) error {
	deadline := now.AddDate(0, 0, s.WarningDays)

	var secrets []models.PppSecret
	err := s.db.Preload("Customer").Preload("PppProfile").
		Where("is_active = ? AND due_date IS NOT NULL AND due_date > ? AND due_date <= ?", true, now, deadline).
		Find(&secrets).Error
	if err != nil {
		return err
	}

	for _, secret := range secrets {
		message := fmt.Sprintf("PPP secret %s is due on %s", secret.Username, secret.DueDate.Format("2006-01-02"))

		// One warning per secret and due date; the sweep runs on every day
		// of the window.
		var already int64
		if err := s.db.Model(&models.Notification{}).
			Where("type = ? AND message = ?", "billing", message).
			Count(&already).Error; err != nil {
			return err
		}
		if already > 0 {
			continue
		}

		data := map[string]interface{}{
			"username": secret.Username,
			"due_date": secret.DueDate.Format("2006-01-02"),
		}
		if secret.Customer != nil {
			data["customer_name"] = secret.Customer.Name
		}
		if secret.PppProfile != nil {
			data["amount"] = secret.PppProfile.Price
		}
		_, err := s.notifications.Create(CreateNotificationInput{
			Type:    "billing",
			Title:   "Subscription due soon",
			Message: message,
			Data:    data,
			Icon:    "clock",
			Color:   models.NotificationColorWarning,
		})
		if err != nil {
			logger.Logger.WithError(err).Warnf("Failed to create due-soon notification for %s", secret.Username)
		}
	}
	return nil
}

// DeactivateOverdue disables secrets whose due date is more than GraceDays in
// the past and records a "suspension" notification per subscriber.
func (s *BillingService) DeactivateOverdue(now time.Time) error {
	cutoff := now.AddDate(0, 0, -s.GraceDays)

	var secrets []models.PppSecret
	err := s.db.Preload("Customer").
		Where("is_active = ? AND due_date IS NOT NULL AND due_date < ?", true, cutoff).
		Find(&secrets).Error
	if err != nil {
		return err
	}

	for _, secret := range secrets {
		if err := s.db.Model(&models.PppSecret{}).Where("id = ?", secret.ID).
			Update("is_active", false).Error; err != nil {
			logger.Logger.WithError(err).Errorf("Failed to deactivate secret %s", secret.Username)
			continue
		}
		data := map[string]interface{}{"username": secret.Username}
		if secret.Customer != nil {
			data["customer_name"] = secret.Customer.Name
		}
		_, err := s.notifications.Create(CreateNotificationInput{
			Type:    "suspension",
			Title:   "Subscriber suspended",
			Message: fmt.Sprintf("PPP secret %s was deactivated, payment overdue", secret.Username),
			Data:    data,
			Icon:    "ban",
			Color:   models.NotificationColorDanger,
		})
		if err != nil {
			logger.Logger.WithError(err).Warnf("Failed to create suspension notification for %s", secret.Username)
		}
	}
	return nil
}

// IssueInvoices creates this period's invoice for every active customer whose
// profile bills today and whose current period has run out. Quarterly and
// annual profiles hit the cycle day every month, so a customer with an
// invoice whose period_end is still ahead is skipped. The deterministic
// invoice number doubles as a same-day dedup key: a rerun collides on the
// unique index and is skipped.
func (s *BillingService) IssueInvoices(now time.Time) error {
	var customers []models.Customer
	err := s.db.Preload("PppProfile").
		Where("is_active = ? AND ppp_profile_id IS NOT NULL", true).
		Find(&customers).Error
	if err != nil {
		return err
	}

	for _, customer := range customers {
		profile := customer.PppProfile
		if profile == nil || !profile.IsActive {
			continue
		}
		if now.Day() != clampCycleDay(profile.BillingCycleDay, now) {
			continue
		}
		var covered int64
		if err := s.db.Model(&models.Invoice{}).
			Where("customer_id = ? AND period_end > ?", customer.ID, now).
			Count(&covered).Error; err != nil {
			return err
		}
		if covered > 0 {
			continue
		}
		periodEnd := NextDueDate(now, profile.BillingPeriod, profile.BillingCycleDay)
		invoice := models.Invoice{
			InvoiceNumber: fmt.Sprintf("INV-%d-%s", customer.ID, now.Format("200601")),
			CustomerID:    customer.ID,
			Amount:        profile.Price,
			PeriodStart:   now,
			PeriodEnd:     periodEnd,
			DueDate:       periodEnd,
			Status:        models.InvoiceStatusUnpaid,
		}
		if err := s.db.Create(&invoice).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			logger.Logger.WithError(err).Errorf("Failed to issue invoice for customer %d", customer.ID)
		}
	}
	return nil
}

// NextDueDate advances from one billing date to the next for the period,
// landing on cycleDay clamped to the target month's length.
func NextDueDate(from time.Time, period string, cycleDay int) time.Time {
	months := 1
	switch period {
	case models.BillingPeriodQuarterly:
		months = 3
	case models.BillingPeriodAnnually:
		months = 12
	}
	next := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location()).AddDate(0, months, 0)
	return time.Date(next.Year(), next.Month(), clampCycleDay(cycleDay, next), 0, 0, 0, 0, from.Location())
}

func clampCycleDay(day int, month time.Time) int {
	if day < 1 {
		day = 1
	}
	last := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location()).
		AddDate(0, 1, -1).Day()
	if day > last {
		return last
	}
	return day
}
