package domain

import (
	"time"

	"gorm.io/gorm"
)

type Artist struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:120;not null;index"`
	SearchName         string    `json:"-" gorm:"size:255;not null;default:''"`
	City               string    `json:"city" gorm:"size:120;not null"`
	State              string    `json:"state" gorm:"size:2;not null"`
	Phone              string    `json:"phone" gorm:"size:20"`
	Genres             Genres    `json:"genres" gorm:"type:text;not null"`
	ImageLink          string    `json:"image_link" gorm:"size:500"`
	Website            string    `json:"website" gorm:"size:500"`
	FacebookLink       string    `json:"facebook_link" gorm:"size:500"`
	SeekingVenue       bool      `json:"seeking_venue" gorm:"not null"`
	SeekingDescription string    `json:"seeking_description" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Fixed at creation; edits never touch it.
	Availabilities []Availability `json:"availabilities,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

func (Artist) TableName() string {
	return "artists"
}

// BeforeSave keeps the search key in step with the name.
func (a *Artist) BeforeSave(*gorm.DB) error {
	a.SearchName = SearchKey(a.Name)
	return nil
}
