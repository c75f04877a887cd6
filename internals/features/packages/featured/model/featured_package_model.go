package model

import (
	"time"

	"github.com/google/uuid"

	packageModel "tenderoutes_backend/internals/features/packages/packages/model"
)

// FeaturedPackageModel adalah record kurasi homepage: referensi ke satu
// paket plus teks dan urutan tampilnya. Hapus record ini tidak pernah
// menghapus paketnya.
type FeaturedPackageModel struct {
	FeaturedPackageID        uuid.UUID `gorm:"column:featured_package_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"featured_package_id"`
	FeaturedPackagePackageID uuid.UUID `gorm:"column:featured_package_package_id;type:uuid;not null;index" json:"featured_package_package_id"`

	Package *packageModel.PackageModel `gorm:"foreignKey:FeaturedPackagePackageID;references:PackageID" json:"package,omitempty"`

	FeaturedPackageTitleEn    string `gorm:"column:featured_package_title_en;type:varchar(255);not null" json:"featured_package_title_en"`
	FeaturedPackageTitleAr    string `gorm:"column:featured_package_title_ar;type:varchar(255);not null" json:"featured_package_title_ar"`
	FeaturedPackageSubtitleEn string `gorm:"column:featured_package_subtitle_en;type:varchar(255);not null" json:"featured_package_subtitle_en"`
	FeaturedPackageSubtitleAr string `gorm:"column:featured_package_subtitle_ar;type:varchar(255);not null" json:"featured_package_subtitle_ar"`

	FeaturedPackageDestinationsCount string `gorm:"column:featured_package_destinations_count;type:varchar(50);not null" json:"featured_package_destinations_count"`

	FeaturedPackageOrder    int  `gorm:"column:featured_package_order;not null;default:0;index" json:"featured_package_order"`
	FeaturedPackageIsActive bool `gorm:"column:featured_package_is_active;not null;default:true" json:"featured_package_is_active"`

	FeaturedPackageCreatedAt time.Time `gorm:"column:featured_package_created_at;autoCreateTime" json:"featured_package_created_at"`
}

func (FeaturedPackageModel) TableName() string {
	return "featured_packages"
}
