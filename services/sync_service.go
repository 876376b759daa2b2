package services

import (
	"gorm.io/gorm"

	"ispbilling-backend/logger"
	"ispbilling-backend/models"
	"ispbilling-backend/providers/mikrotik"
)

// SyncService pushes auto_sync profiles and secrets to the router and records
// the remote object ids. Records with auto_sync disabled are never touched.
type SyncService struct {
	db     *gorm.DB
	client mikrotik.Client
}

func NewSyncService(db *gorm.DB, client mikrotik.Client) *SyncService {
	return &SyncService{db: db, client: client}
}

// SyncProfile ensures a single profile exists on the router.
func (s *SyncService) SyncProfile(profileID uint) error {
	var profile models.PppProfile
	if err := s.db.First(&profile, profileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return s.pushProfile(&profile)
}

// SyncSecret ensures a single secret exists on the router. The profile is
// pushed first when it has no remote id yet, secrets reference profiles by
// name on the router side.
func (s *SyncService) SyncSecret(secretID uint) error {
	var secret models.PppSecret
	if err := s.db.Preload("PppProfile").First(&secret, secretID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if secret.PppProfile != nil && secret.PppProfile.AutoSync && secret.PppProfile.MikrotikID == "" {
		if err := s.pushProfile(secret.PppProfile); err != nil {
			return err
		}
	}
	return s.pushSecret(&secret)
}

// SyncAll pushes every auto_sync profile, then every auto_sync secret.
// Returns the number of objects pushed.
func (s *SyncService) SyncAll() (int, error) {
	pushed := 0

	var profiles []models.PppProfile
	if err := s.db.Where("auto_sync = ?", true).Find(&profiles).Error; err != nil {
		return pushed, err
	}
	for i := range profiles {
		if err := s.pushProfile(&profiles[i]); err != nil {
			return pushed, err
		}
		pushed++
	}

	var secrets []models.PppSecret
	if err := s.db.Preload("PppProfile").Where("auto_sync = ?", true).Find(&secrets).Error; err != nil {
		return pushed, err
	}
	for i := range secrets {
		if err := s.pushSecret(&secrets[i]); err != nil {
			return pushed, err
		}
		pushed++
	}
	return pushed, nil
}

// RemoveSecret deletes the secret's remote object and clears the stored id.
// A secret that was never pushed is a no-op.
func (s *SyncService) RemoveSecret(secretID uint) error {
	var secret models.PppSecret
	if err := s.db.First(&secret, secretID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if secret.MikrotikID == "" {
		return nil
	}
	if err := s.client.RemoveSecret(secret.MikrotikID); err != nil {
		return err
	}
	return s.db.Model(&secret).Update("mikrotik_id", "").Error
}

func (s *SyncService) pushProfile(profile *models.PppProfile) error {
	if !profile.AutoSync {
		return nil
	}
	remoteID, err := s.client.EnsureProfile(mikrotik.ProfileSync{
		MikrotikID:    profile.MikrotikID,
		Name:          profile.Name,
		LocalAddress:  profile.LocalAddress,
		RemoteAddress: profile.RemoteAddress,
		RateLimit:     profile.RateLimit,
		ParentQueue:   profile.ParentQueue,
		OnlyOne:       profile.OnlyOne,
	})
	if err != nil {
		logger.Logger.Errorf("Failed to sync profile %s: %v", profile.Name, err)
		return err
	}
	if remoteID != profile.MikrotikID {
		profile.MikrotikID = remoteID
		return s.db.Model(profile).Update("mikrotik_id", remoteID).Error
	}
	return nil
}

func (s *SyncService) pushSecret(secret *models.PppSecret) error {
	if !secret.AutoSync {
		return nil
	}
	profileName := ""
	if secret.PppProfile != nil {
		profileName = secret.PppProfile.Name
	}
	remoteID, err := s.client.EnsureSecret(mikrotik.SecretSync{
		MikrotikID:    secret.MikrotikID,
		Username:      secret.Username,
		Password:      secret.Password,
		Service:       secret.Service,
		Profile:       profileName,
		LocalAddress:  secret.LocalAddress,
		RemoteAddress: secret.RemoteAddress,
		Disabled:      !secret.IsActive,
	})
	if err != nil {
		logger.Logger.Errorf("Failed to sync secret %s: %v", secret.Username, err)
		return err
	}
	if remoteID != secret.MikrotikID {
		secret.MikrotikID = remoteID
		return s.db.Model(secret).Update("mikrotik_id", remoteID).Error
	}
	return nil
}
