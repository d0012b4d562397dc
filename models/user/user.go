package user

import (
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maximum number of previous password hashes retained per account
const PasswordHistoryLimit = 5

// ProfileImage is the embedded profile picture reference
type ProfileImage struct {
	URL         string     `json:"url"`
	PublicID    string     `json:"public_id"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Default     string     `json:"default"`
}

// NotificationPrefs holds per-channel notification opt-ins
type NotificationPrefs struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// User is a registered account. Accounts are created unverified and become
// verified through the OTP email flow.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(255);not null;unique" json:"username"`
	Email    string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	Company string `gorm:"type:varchar(255)" json:"company"`
	Address string `gorm:"type:text" json:"address"`

	ProfileImage  datatypes.JSONType[ProfileImage]      `json:"profile_image"`
	Notifications datatypes.JSONType[NotificationPrefs] `json:"notifications"`

	PasswordHistory pq.StringArray `gorm:"type:text[]" json:"-"`

	Role       string `gorm:"type:varchar(20);not null;default:user" json:"role"`
	IsVerified bool   `gorm:"default:false" json:"is_verified"`

	OTPCode      *string    `gorm:"type:varchar(6)" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// SetPassword hashes the plain password, appends the hash to the bounded
// password history and stores it as the current credential.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if len(u.PasswordHistory) >= PasswordHistoryLimit {
		u.PasswordHistory = u.PasswordHistory[len(u.PasswordHistory)-PasswordHistoryLimit+1:]
	}
	u.PasswordHistory = append(u.PasswordHistory, string(hashed))
	u.Password = string(hashed)
	return nil
}

// ComparePassword reports whether plain matches the stored hash
func (u *User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// SetOTP stores a one-time code with its expiry
func (u *User) SetOTP(code string, expiresAt time.Time) {
	u.OTPCode = &code
	u.OTPExpiresAt = &expiresAt
}

// ClearOTP discards any pending one-time code
func (u *User) ClearOTP() {
	u.OTPCode = nil
	u.OTPExpiresAt = nil
}

// OTPValid reports whether code matches the stored OTP and the expiry has
// not passed at instant now. A missing OTP never validates.
func (u *User) OTPValid(code string, now time.Time) bool {
	if u.OTPCode == nil || u.OTPExpiresAt == nil || code == "" {
		return false
	}
	return *u.OTPCode == code && now.Before(*u.OTPExpiresAt)
}

// ProfileImageURL returns the display URL, falling back to the default
func (u *User) ProfileImageURL() string {
	img := u.ProfileImage.Data()
	if img.URL != "" {
		return img.URL
	}
	return img.Default
}
