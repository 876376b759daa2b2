package services

import (
	"fmt"
	"testing"

	"ispbilling-backend/models"
	"ispbilling-backend/providers/mikrotik"
)

type fakeRouter struct {
	nextID   int
	profiles map[string]mikrotik.ProfileSync
	secrets  map[string]mikrotik.SecretSync
	failNext bool
}

func newFakeRouter() *fakeRouter {
	return &fakeRouter{
		profiles: make(map[string]mikrotik.ProfileSync),
		secrets:  make(map[string]mikrotik.SecretSync),
	}
}

func (f *fakeRouter) allocate() string {
	f.nextID++
	return fmt.Sprintf("*%X", f.nextID)
}

func (f *fakeRouter) EnsureProfile(p mikrotik.ProfileSync) (string, error) {
	if f.failNext {
		f.failNext = false
		return "", fmt.Errorf("router unreachable")
	}
	id := p.MikrotikID
	if id == "" {
		id = f.allocate()
	}
	f.profiles[id] = p
	return id, nil
}

func (f *fakeRouter) EnsureSecret(s mikrotik.SecretSync) (string, error) {
	if f.failNext {
		f.failNext = false
		return "", fmt.Errorf("router unreachable")
	}
	id := s.MikrotikID
	if id == "" {
		id = f.allocate()
	}
	f.secrets[id] = s
	return id, nil
}

func (f *fakeRouter) RemoveProfile(id string) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeRouter) RemoveSecret(id string) error {
	delete(f.secrets, id)
	return nil
}

func (f *fakeRouter) Close() error { return nil }

func TestSyncAllPushesAndStoresRemoteIDs(t *testing.T) {
	database := openTestDB(t)
	router := newFakeRouter()
	service := NewSyncService(database, router)

	profile := models.PppProfile{Name: "fiber-50", RateLimit: "50M/50M", AutoSync: true}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	manual := models.PppProfile{Name: "static-lab", AutoSync: false}
	if err := database.Create(&manual).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	secret := models.PppSecret{Username: "alice", Password: "pw", PppProfileID: profile.ID, AutoSync: true, IsActive: true}
	if err := database.Create(&secret).Error; err != nil {
		t.Fatalf("create secret: %v", err)
	}

	pushed, err := service.SyncAll()
	if err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	if pushed != 2 {
		t.Fatalf("expected 2 pushed objects, got %d", pushed)
	}

	var got models.PppProfile
	database.First(&got, profile.ID)
	if got.MikrotikID == "" {
		t.Fatal("profile mikrotik_id not stored")
	}
	var gotSecret models.PppSecret
	database.First(&gotSecret, secret.ID)
	if gotSecret.MikrotikID == "" {
		t.Fatal("secret mikrotik_id not stored")
	}
	if router.secrets[gotSecret.MikrotikID].Profile != "fiber-50" {
		t.Fatalf("secret pushed with profile %q", router.secrets[gotSecret.MikrotikID].Profile)
	}

	var gotManual models.PppProfile
	database.First(&gotManual, manual.ID)
	if gotManual.MikrotikID != "" {
		t.Fatal("auto_sync=false profile was pushed")
	}
}

func TestSyncAllIsStableAcrossRuns(t *testing.T) {
	database := openTestDB(t)
	router := newFakeRouter()
	service := NewSyncService(database, router)

	profile := models.PppProfile{Name: "fiber-100", AutoSync: true}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if _, err := service.SyncAll(); err != nil {
		t.Fatalf("first SyncAll: %v", err)
	}
	var first models.PppProfile
	database.First(&first, profile.ID)

	if _, err := service.SyncAll(); err != nil {
		t.Fatalf("second SyncAll: %v", err)
	}
	var second models.PppProfile
	database.First(&second, profile.ID)
	if first.MikrotikID != second.MikrotikID {
		t.Fatalf("remote id changed across runs: %q -> %q", first.MikrotikID, second.MikrotikID)
	}
	if len(router.profiles) != 1 {
		t.Fatalf("expected 1 remote profile, got %d", len(router.profiles))
	}
}

func TestSyncSecretPushesUnsyncedProfileFirst(t *testing.T) {
	database := openTestDB(t)
	router := newFakeRouter()
	service := NewSyncService(database, router)

	profile := models.PppProfile{Name: "fiber-25", AutoSync: true}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	secret := models.PppSecret{Username: "bob", Password: "pw", PppProfileID: profile.ID, AutoSync: true, IsActive: true}
	if err := database.Create(&secret).Error; err != nil {
		t.Fatalf("create secret: %v", err)
	}

	if err := service.SyncSecret(secret.ID); err != nil {
		t.Fatalf("SyncSecret: %v", err)
	}
	var gotProfile models.PppProfile
	database.First(&gotProfile, profile.ID)
	if gotProfile.MikrotikID == "" {
		t.Fatal("profile was not pushed before its secret")
	}
}

func TestSyncProfileNotFound(t *testing.T) {
	database := openTestDB(t)
	service := NewSyncService(database, newFakeRouter())
	if err := service.SyncProfile(999); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveSecretClearsRemoteID(t *testing.T) {
	database := openTestDB(t)
	router := newFakeRouter()
	service := NewSyncService(database, router)

	profile := models.PppProfile{Name: "fiber-10", AutoSync: true}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	secret := models.PppSecret{Username: "carol", Password: "pw", PppProfileID: profile.ID, AutoSync: true}
	if err := database.Create(&secret).Error; err != nil {
		t.Fatalf("create secret: %v", err)
	}
	if err := service.SyncSecret(secret.ID); err != nil {
		t.Fatalf("SyncSecret: %v", err)
	}

	if err := service.RemoveSecret(secret.ID); err != nil {
		t.Fatalf("RemoveSecret: %v", err)
	}
	var got models.PppSecret
	database.First(&got, secret.ID)
	if got.MikrotikID != "" {
		t.Fatalf("mikrotik_id still %q after removal", got.MikrotikID)
	}
	if len(router.secrets) != 0 {
		t.Fatalf("router still holds %d secrets", len(router.secrets))
	}
}
