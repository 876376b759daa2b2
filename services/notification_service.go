package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ispbilling-backend/models"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

type CreateNotificationInput struct {
	Type    string
	Title   string
	Message string
	Data    map[string]interface{}
	Icon    string
	Color   string
	UserID  *uint
}

type ListNotificationsFilter struct {
	UserID     *uint
	SystemOnly bool
	Unread     *bool
	Page       int
	PageSize   int
}

// Create stores a new unread notification. Data is kept opaque; its shape is
// the caller's business.
func (s *NotificationService) Create(in CreateNotificationInput) (*models.Notification, error) {
	if in.Type == "" {
		return nil, &ValidationError{Field: "type", Reason: "required"}
	}
	if in.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "required"}
	}
	if in.Message == "" {
		return nil, &ValidationError{Field: "message", Reason: "required"}
	}

	notification := models.Notification{
		Type:    in.Type,
		Title:   in.Title,
		Message: in.Message,
		Icon:    in.Icon,
		Color:   in.Color,
		UserID:  in.UserID,
	}
	if notification.Color == "" {
		notification.Color = models.NotificationColorInfo
	}
	if in.Data != nil {
		raw, err := json.Marshal(in.Data)
		if err != nil {
			return nil, &ValidationError{Field: "data", Reason: err.Error()}
		}
		notification.Data = datatypes.JSON(raw)
	}

	if err := s.db.Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// List returns notifications newest first along with the total row count for
// the filter. A user scope includes system-wide rows (user_id IS NULL) so
// broadcasts appear in every feed.
func (s *NotificationService) List(f ListNotificationsFilter) ([]models.Notification, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}

	query := s.scoped(f.UserID, f.SystemOnly)
	if f.Unread != nil {
		query = query.Where("is_read = ?", !*f.Unread)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.
		Order("created_at DESC, id DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// MarkAsRead flips one notification to read and stamps read_at. Already-read
// rows are left untouched and still report success.
func (s *NotificationService) MarkAsRead(id uint) error {
	now := time.Now()
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.db.Model(&models.Notification{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// MarkAllAsRead read-acknowledges every unread notification in scope with a
// single UPDATE, so a concurrent List never observes a half-done sweep, and
// returns how many rows changed.
func (s *NotificationService) MarkAllAsRead(userID *uint) (int64, error) {
	now := time.Now()
	result := s.scoped(userID, false).
		Where("is_read = ?", false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	return result.RowsAffected, result.Error
}

// Delete permanently removes a notification. There is no soft delete.
func (s *NotificationService) Delete(id uint) error {
	result := s.db.Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UnreadCount backs the badge in the panel header.
func (s *NotificationService) UnreadCount(userID *uint) (int64, error) {
	var count int64
	err := s.scoped(userID, false).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (s *NotificationService) scoped(userID *uint, systemOnly bool) *gorm.DB {
	query := s.db.Model(&models.Notification{})
	switch {
	case systemOnly:
		query = query.Where("user_id IS NULL")
	case userID != nil:
		query = query.Where("user_id = ? OR user_id IS NULL", *userID)
	}
	return query
}

// IsNotFound reports whether err is the service's or gorm's not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
