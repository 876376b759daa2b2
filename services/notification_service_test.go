package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ispbilling-backend/logger"
	"ispbilling-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if logger.Logger == nil {
		if err := logger.InitLogger(); err != nil {
			t.Fatalf("init logger: %v", err)
		}
	}

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&_foreign_keys=on", name)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = database.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.PppProfile{},
		&models.PppSecret{},
		&models.Invoice{},
		&models.Payment{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func TestCreateAndListNewestFirst(t *testing.T) {
	database := openTestDB(t)
	service := NewNotificationService(database)

	if _, err := service.Create(CreateNotificationInput{
		Type:    "system",
		Title:   "Router synced",
		Message: "PPP profiles pushed to router",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	created, err := service.Create(CreateNotificationInput{
		Type:    "payment",
		Title:   "Payment Received",
		Message: "Payment PAY-1 was verified",
		Data: map[string]interface{}{
			"customer_name":  "Alice",
			"amount":         150000,
			"payment_method": "bank_transfer",
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notifications, total, err := service.List(ListNotificationsFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got total=%d len=%d", total, len(notifications))
	}
	if notifications[0].ID != created.ID {
		t.Errorf("newest notification should be first, got id %d", notifications[0].ID)
	}
	if notifications[0].IsRead || notifications[0].ReadAt != nil {
		t.Errorf("fresh notification must be unread with nil read_at")
	}

	payload, ok := notifications[0].PaymentData()
	if !ok {
		t.Fatalf("expected payment payload")
	}
	if payload.CustomerName != "Alice" || payload.Amount != 150000 || payload.PaymentMethod != "bank_transfer" {
		t.Errorf("unexpected payload: %+v", payload)
	}

	if _, ok := notifications[1].PaymentData(); ok {
		t.Errorf("notification without data must not report a payment payload")
	}
}

func TestCreateRequiresTypeTitleMessage(t *testing.T) {
	service := NewNotificationService(openTestDB(t))

	cases := []CreateNotificationInput{
		{Title: "t", Message: "m"},
		{Type: "x", Message: "m"},
		{Type: "x", Title: "t"},
	}
	for _, input := range cases {
		_, err := service.Create(input)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("input %+v: expected ValidationError, got %v", input, err)
		}
	}
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	database := openTestDB(t)
	service := NewNotificationService(database)

	created, err := service.Create(CreateNotificationInput{Type: "system", Title: "t", Message: "m"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.MarkAsRead(created.ID); err != nil {
		t.Fatalf("first mark: %v", err)
	}

	var first models.Notification
	if err := database.First(&first, created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !first.IsRead || first.ReadAt == nil {
		t.Fatalf("expected read with read_at set, got is_read=%v read_at=%v", first.IsRead, first.ReadAt)
	}

	if err := service.MarkAsRead(created.ID); err != nil {
		t.Fatalf("second mark should still succeed: %v", err)
	}

	var second models.Notification
	if err := database.First(&second, created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !second.ReadAt.Equal(*first.ReadAt) {
		t.Errorf("read_at must not move on the second call: %v vs %v", second.ReadAt, first.ReadAt)
	}
}

func TestMarkAsReadNotFound(t *testing.T) {
	service := NewNotificationService(openTestDB(t))
	if err := service.MarkAsRead(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadAtTracksIsRead(t *testing.T) {
	database := openTestDB(t)
	service := NewNotificationService(database)

	for i := 0; i < 5; i++ {
		if _, err := service.Create(CreateNotificationInput{Type: "system", Title: "t", Message: "m"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := service.MarkAsRead(2); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if _, err := service.MarkAllAsRead(nil); err != nil {
		t.Fatalf("mark all: %v", err)
	}

	var notifications []models.Notification
	if err := database.Find(&notifications).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	for _, n := range notifications {
		if n.IsRead != (n.ReadAt != nil) {
			t.Errorf("notification %d: is_read=%v but read_at=%v", n.ID, n.IsRead, n.ReadAt)
		}
	}
}

func TestMarkAllAsReadCountsAndClears(t *testing.T) {
	database := openTestDB(t)
	service := NewNotificationService(database)

	userID := seedUser(t, database, "admin")
	otherID := seedUser(t, database, "operator")

	for i := 0; i < 3; i++ {
		mustCreate(t, service, CreateNotificationInput{Type: "system", Title: "t", Message: "m", UserID: &userID})
	}
	mustCreate(t, service, CreateNotificationInput{Type: "system", Title: "t", Message: "m"})
	mustCreate(t, service, CreateNotificationInput{Type: "system", Title: "t", Message: "m", UserID: &otherID})

	// user scope covers own rows plus the broadcast, not the other user's
	updated, err := service.MarkAllAsRead(&userID)
	if err != nil {
		t.Fatalf("mark all: %v", err)
	}
	if updated != 4 {
		t.Fatalf("expected 4 rows updated, got %d", updated)
	}

	remaining, err := service.UnreadCount(&userID)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if remaining != 0 {
		t.Errorf("expected zero unread in scope, got %d", remaining)
	}

	otherUnread, err := service.UnreadCount(&otherID)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if otherUnread != 1 {
		t.Errorf("other user's notification must stay unread, got %d unread", otherUnread)
	}

	// a second sweep finds nothing left
	updated, err = service.MarkAllAsRead(&userID)
	if err != nil {
		t.Fatalf("mark all: %v", err)
	}
	if updated != 0 {
		t.Errorf("second sweep should update 0 rows, got %d", updated)
	}
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	service := NewNotificationService(openTestDB(t))

	created := mustCreate(t, service, CreateNotificationInput{Type: "system", Title: "t", Message: "m"})

	if err := service.Delete(created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := service.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	database := openTestDB(t)
	service := NewNotificationService(database)

	userID := seedUser(t, database, "admin")
	mustCreate(t, service, CreateNotificationInput{Type: "system", Title: "t", Message: "m"})
	owned := mustCreate(t, service, CreateNotificationInput{Type: "system", Title: "t", Message: "m", UserID: &userID})
	if err := service.MarkAsRead(owned.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}

	systemOnly, total, err := service.List(ListNotificationsFilter{SystemOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || systemOnly[0].UserID != nil {
		t.Errorf("system-only filter leaked user rows: total=%d", total)
	}

	unread := true
	unreadOnly, total, err := service.List(ListNotificationsFilter{UserID: &userID, Unread: &unread})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || unreadOnly[0].IsRead {
		t.Errorf("unread filter returned read rows: total=%d", total)
	}
}

func TestListPagination(t *testing.T) {
	database := openTestDB(t)
	service := NewNotificationService(database)

	for i := 0; i < 25; i++ {
		mustCreate(t, service, CreateNotificationInput{Type: "system", Title: "t", Message: "m"})
	}

	firstPage, total, err := service.List(ListNotificationsFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 25 || len(firstPage) != 10 {
		t.Fatalf("page 1: total=%d len=%d", total, len(firstPage))
	}

	lastPage, _, err := service.List(ListNotificationsFilter{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lastPage) != 5 {
		t.Errorf("page 3: expected 5 rows, got %d", len(lastPage))
	}
	if firstPage[0].ID <= lastPage[len(lastPage)-1].ID {
		t.Errorf("ordering is not newest first across pages")
	}
}

func mustCreate(t *testing.T, service *NotificationService, input CreateNotificationInput) *models.Notification {
	t.Helper()
	created, err := service.Create(input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return created
}

func seedUser(t *testing.T, database *gorm.DB, username string) uint {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "irrelevant",
		Email:    username + "@example.com",
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}
