package content

import (
	"time"

	"gorm.io/datatypes"
)

// HeroSlide is one rotating banner on the landing page
type HeroSlide struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order"`
}

// Highlight is a short icon/title/subtitle item in the introduction
type Highlight struct {
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Download is an optional downloadable attachment in the introduction
type Download struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// Feature is an icon/title/description item in the about section
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TeamMember is one entry in the leadership section
type TeamMember struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// IntroSection is the introduction block of the home page
type IntroSection struct {
	Heading     string      `json:"heading"`
	Description string      `json:"description"`
	Highlights  []Highlight `json:"highlights"`
	Download    Download    `json:"download"`
}

// AboutSection is the about block of the home page
type AboutSection struct {
	Heading     string    `json:"heading"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Features    []Feature `json:"features"`
}

// LeadershipSection is the leadership block of the home page
type LeadershipSection struct {
	Heading     string       `json:"heading"`
	Description string       `json:"description"`
	Note        string       `json:"note"`
	Members     []TeamMember `json:"members"`
}

// HomeContent is the singleton CMS document backing the marketing home
// page. Sections are stored as JSONB documents.
type HomeContent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Title       string `gorm:"type:varchar(255)" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	HeroSlider   datatypes.JSONSlice[HeroSlide]         `json:"hero_slider"`
	Introduction datatypes.JSONType[IntroSection]       `json:"introduction"`
	About        datatypes.JSONType[AboutSection]       `json:"about"`
	Leadership   datatypes.JSONType[LeadershipSection]  `json:"leadership"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
