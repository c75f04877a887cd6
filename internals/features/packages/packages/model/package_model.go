package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tipe paket sesuai katalog marketing
const (
	PackageTypeStandard = "standard"
	PackageTypePremium  = "premium"
	PackageTypeLuxury   = "luxury"
)

func IsValidPackageType(t string) bool {
	switch t {
	case PackageTypeStandard, PackageTypePremium, PackageTypeLuxury:
		return true
	}
	return false
}

// LocalizedText adalah pasangan teks dua bahasa (en/ar).
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// ItineraryDay satu hari dalam rencana perjalanan.
type ItineraryDay struct {
	Day         int             `json:"day"`
	Title       LocalizedText   `json:"title"`
	Description LocalizedText   `json:"description"`
	Activities  []LocalizedText `json:"activities"`
}

type FAQItem struct {
	Question LocalizedText `json:"question"`
	Answer   LocalizedText `json:"answer"`
}

type PackageModel struct {
	PackageID   uuid.UUID `gorm:"column:package_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"package_id"`
	PackageType string    `gorm:"column:package_type;type:varchar(20);not null" json:"package_type"`

	PackageTitleEn string `gorm:"column:package_title_en;type:varchar(255);not null" json:"package_title_en"`
	PackageTitleAr string `gorm:"column:package_title_ar;type:varchar(255);not null" json:"package_title_ar"`

	PackageDescriptionEn string `gorm:"column:package_description_en;type:text;not null" json:"package_description_en"`
	PackageDescriptionAr string `gorm:"column:package_description_ar;type:text;not null" json:"package_description_ar"`

	PackageDestinationsEn string `gorm:"column:package_destinations_en;type:text;not null" json:"package_destinations_en"`
	PackageDestinationsAr string `gorm:"column:package_destinations_ar;type:text;not null" json:"package_destinations_ar"`

	PackageNights int `gorm:"column:package_nights;not null;default:0" json:"package_nights"`
	PackageDays   int `gorm:"column:package_days;not null;default:0" json:"package_days"`

	PackageRating       float64 `gorm:"column:package_rating;type:numeric(2,1);not null;default:0" json:"package_rating"`
	PackageReviewsCount int     `gorm:"column:package_reviews_count;not null;default:0" json:"package_reviews_count"`
	PackageDiscount     int     `gorm:"column:package_discount;not null;default:0" json:"package_discount"`
	PackageIsFeatured   bool    `gorm:"column:package_is_featured;not null;default:false;index" json:"package_is_featured"`

	PackageImageURL      string `gorm:"column:package_image_url;type:text" json:"package_image_url"`
	PackageImagePublicID string `gorm:"column:package_image_public_id;type:text" json:"package_image_public_id"`

	// gambar kedua untuk social share (og:image)
	PackageOGImageURL      string `gorm:"column:package_og_image_url;type:text" json:"package_og_image_url"`
	PackageOGImagePublicID string `gorm:"column:package_og_image_public_id;type:text" json:"package_og_image_public_id"`

	PackageItinerary  datatypes.JSON `gorm:"column:package_itinerary;type:jsonb" json:"package_itinerary"`
	PackageInclusions datatypes.JSON `gorm:"column:package_inclusions;type:jsonb" json:"package_inclusions"`
	PackageExclusions datatypes.JSON `gorm:"column:package_exclusions;type:jsonb" json:"package_exclusions"`

	PackagePrice         float64 `gorm:"column:package_price;type:numeric(12,2);not null;default:0" json:"package_price"`
	PackageOriginalPrice float64 `gorm:"column:package_original_price;type:numeric(12,2);not null;default:0" json:"package_original_price"`

	PackageOverviewEn string `gorm:"column:package_overview_en;type:text" json:"package_overview_en"`
	PackageOverviewAr string `gorm:"column:package_overview_ar;type:text" json:"package_overview_ar"`

	PackageHighlights datatypes.JSON `gorm:"column:package_highlights;type:jsonb" json:"package_highlights"`
	PackageFaqs       datatypes.JSON `gorm:"column:package_faqs;type:jsonb" json:"package_faqs"`

	// SEO
	PackageMetaTitleEn       string `gorm:"column:package_meta_title_en;type:varchar(255)" json:"package_meta_title_en"`
	PackageMetaTitleAr       string `gorm:"column:package_meta_title_ar;type:varchar(255)" json:"package_meta_title_ar"`
	PackageMetaDescriptionEn string `gorm:"column:package_meta_description_en;type:text" json:"package_meta_description_en"`
	PackageMetaDescriptionAr string `gorm:"column:package_meta_description_ar;type:text" json:"package_meta_description_ar"`
	PackageMetaKeywordsEn    string `gorm:"column:package_meta_keywords_en;type:text" json:"package_meta_keywords_en"`
	PackageMetaKeywordsAr    string `gorm:"column:package_meta_keywords_ar;type:text" json:"package_meta_keywords_ar"`
	PackageCanonicalURL      string `gorm:"column:package_canonical_url;type:text" json:"package_canonical_url"`

	// slug unik lintas seluruh koleksi, per bahasa
	PackageSlugEn string `gorm:"column:package_slug_en;type:varchar(160);not null;uniqueIndex" json:"package_slug_en"`
	PackageSlugAr string `gorm:"column:package_slug_ar;type:varchar(160);not null;uniqueIndex" json:"package_slug_ar"`

	PackageCreatedAt time.Time `gorm:"column:package_created_at;autoCreateTime" json:"package_created_at"`
	PackageUpdatedAt time.Time `gorm:"column:package_updated_at" json:"package_updated_at"`
}

func (PackageModel) TableName() string {
	return "packages"
}
