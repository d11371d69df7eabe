package model

import "time"

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// User account. Username stays empty between a provider sign-in and
// registration completion, so uniqueness is enforced on the pair
// (auth_provider, auth_provider_user_id) as well.
type User struct {
	ID                 string  `gorm:"primaryKey;type:varchar(36)"`
	Username           string  `gorm:"type:varchar(64);uniqueIndex:ux_user_username"`
	PasswordHash       string  `gorm:"type:varchar(128);not null"`
	Status             string  `gorm:"type:text;not null;default:''"`
	PictureURL         string  `gorm:"type:text"`
	AuthProvider       string  `gorm:"type:varchar(16);not null;default:'local';index:idx_user_provider_pair,unique"`
	AuthProviderUserID *string `gorm:"type:varchar(128);index:idx_user_provider_pair,unique"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (User) TableName() string { return "users" }
