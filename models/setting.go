package models

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

// Setting names written by the admin config endpoint.
const (
	SETTING_CHANNEL_ID          = "channel_id"
	SETTING_CHANNEL_SECRET      = "channel_secret"
	SETTING_MID                 = "mid"
	SETTING_FB_VALIDATION_TOKEN = "fb_validation_token"
)

// Setting é um par nome/valor persistido (credenciais do canal e flags).
// Escrito apenas pelo endpoint /admin/config; lido a cada uso, sem cache.
type Setting struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null;unique_index" json:"name"`
	Value     string     `gorm:"type:text" json:"value"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func GetSetting(db *gorm.DB, name string) (string, error) {
	var s Setting
	if err := db.Where("name = ?", name).First(&s).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}

// PutSetting faz upsert por nome (last-write-wins).
func PutSetting(db *gorm.DB, name, value string) error {
	var s Setting
	err := db.Where("name = ?", name).First(&s).Error
	if gorm.IsRecordNotFoundError(err) {
		s = Setting{Name: name}
	} else if err != nil {
		return err
	}
	s.Value = value
	return db.Save(&s).Error
}

// ChannelSettings is the explicit configuration object handed to the
// components that talk to the platform, instead of scattered lookups.
type ChannelSettings struct {
	ChannelID     string
	ChannelSecret string
	MID           string
}

// LoadChannelSettings reads the three credentials at call time. A partially
// configured store is a hard error: sending with half a credential set only
// produces confusing platform-side failures.
func LoadChannelSettings(db *gorm.DB) (ChannelSettings, error) {
	var cs ChannelSettings
	var err error
	if cs.ChannelID, err = GetSetting(db, SETTING_CHANNEL_ID); err != nil {
		return cs, fmt.Errorf("setting %s: %w", SETTING_CHANNEL_ID, err)
	}
	if cs.ChannelSecret, err = GetSetting(db, SETTING_CHANNEL_SECRET); err != nil {
		return cs, fmt.Errorf("setting %s: %w", SETTING_CHANNEL_SECRET, err)
	}
	if cs.MID, err = GetSetting(db, SETTING_MID); err != nil {
		return cs, fmt.Errorf("setting %s: %w", SETTING_MID, err)
	}
	return cs, nil
}
