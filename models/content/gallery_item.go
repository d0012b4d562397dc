package content

import "time"

// MediaType distinguishes gallery photos from videos
type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

// GalleryCategory buckets gallery items for the public gallery filters
type GalleryCategory string

const (
	CategoryWeddings   GalleryCategory = "weddings"
	CategoryCorporate  GalleryCategory = "corporate"
	CategoryBirthdays  GalleryCategory = "birthdays"
	CategorySocial     GalleryCategory = "social"
	CategoryGraduation GalleryCategory = "graduation"
	CategoryPrivate    GalleryCategory = "private"
)

func (m MediaType) IsValid() bool {
	return m == MediaTypePhoto || m == MediaTypeVideo
}

func (c GalleryCategory) IsValid() bool {
	switch c {
	case CategoryWeddings, CategoryCorporate, CategoryBirthdays,
		CategorySocial, CategoryGraduation, CategoryPrivate:
		return true
	default:
		return false
	}
}

// GalleryItem is one public gallery entry
type GalleryItem struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Type      MediaType `gorm:"type:varchar(10);not null" json:"type"`
	URL       string    `gorm:"type:varchar(2048)" json:"url"`
	Thumbnail string    `gorm:"type:varchar(2048)" json:"thumbnail"`

	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Category    GalleryCategory `gorm:"type:varchar(20);not null;index" json:"category"`

	Likes int `gorm:"default:0" json:"likes"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
