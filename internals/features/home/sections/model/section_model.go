package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionModel adalah banner dua bahasa di halaman depan.
type SectionModel struct {
	SectionID            uuid.UUID `gorm:"column:section_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"section_id"`
	SectionTitleEn       string    `gorm:"column:section_title_en;type:varchar(255);not null" json:"section_title_en"`
	SectionTitleAr       string    `gorm:"column:section_title_ar;type:varchar(255);not null" json:"section_title_ar"`
	SectionDescriptionEn string    `gorm:"column:section_description_en;type:text;not null" json:"section_description_en"`
	SectionDescriptionAr string    `gorm:"column:section_description_ar;type:text;not null" json:"section_description_ar"`
	SectionImageURL      string    `gorm:"column:section_image_url;type:text" json:"section_image_url"`
	SectionImagePublicID string    `gorm:"column:section_image_public_id;type:text" json:"section_image_public_id"`
	SectionCreatedAt     time.Time `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt     time.Time `gorm:"column:section_updated_at" json:"section_updated_at"`
}

func (SectionModel) TableName() string {
	return "home_sections"
}
