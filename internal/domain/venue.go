package domain

import (
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:120;not null;index"`
	SearchName         string    `json:"-" gorm:"size:255;not null;default:''"`
	Address            string    `json:"address" gorm:"size:120;not null"`
	City               string    `json:"city" gorm:"size:120;not null;index:idx_venues_area"`
	State              string    `json:"state" gorm:"size:2;not null;index:idx_venues_area"`
	Phone              string    `json:"phone" gorm:"size:20"`
	Genres             Genres    `json:"genres" gorm:"type:text;not null"`
	ImageLink          string    `json:"image_link" gorm:"size:500"`
	Website            string    `json:"website" gorm:"size:500"`
	FacebookLink       string    `json:"facebook_link" gorm:"size:500"`
	SeekingTalent      bool      `json:"seeking_talent" gorm:"not null"`
	SeekingDescription string    `json:"seeking_description" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}

// BeforeSave keeps the search key in step with the name.
func (v *Venue) BeforeSave(*gorm.DB) error {
	v.SearchName = SearchKey(v.Name)
	return nil
}
