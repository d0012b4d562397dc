package contact

import (
	"time"

	"samaj-backend/models/user"
)

// ContactMessage is a message submitted through the public contact form
type ContactMessage struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"-"`

	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Email   string `gorm:"type:varchar(255);not null" json:"email"`
	Subject string `gorm:"type:varchar(255)" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
