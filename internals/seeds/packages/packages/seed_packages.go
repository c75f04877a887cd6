package packages

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"tenderoutes_backend/internals/features/packages/packages/model"
	helper "tenderoutes_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Struktur sesuai dengan bentuk request CreatePackage
type PackageSeed struct {
	PackageType    string                `json:"package_type"`
	TitleEn        string                `json:"title_en"`
	TitleAr        string                `json:"title_ar"`
	DescriptionEn  string                `json:"description_en"`
	DescriptionAr  string                `json:"description_ar"`
	DestinationsEn string                `json:"destinations_en"`
	DestinationsAr string                `json:"destinations_ar"`
	Nights         int                   `json:"nights"`
	Days           int                   `json:"days"`
	Rating         float64               `json:"rating"`
	ReviewsCount   int                   `json:"reviews_count"`
	Discount       int                   `json:"discount"`
	IsFeatured     bool                  `json:"is_featured"`
	Price          float64               `json:"price"`
	OriginalPrice  float64               `json:"original_price"`
	Itinerary      []model.ItineraryDay  `json:"itinerary"`
	Inclusions     []model.LocalizedText `json:"inclusions"`
	Exclusions     []model.LocalizedText `json:"exclusions"`
	Highlights     []model.LocalizedText `json:"highlights"`
}

func SeedPackagesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var pkgs []PackageSeed
	if err := json.Unmarshal(file, &pkgs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, p := range pkgs {
		slugEn := helper.Slugify(p.TitleEn, helper.DefaultSlugMaxLen)
		slugAr := helper.Slugify(p.TitleAr, helper.DefaultSlugMaxLen)

		var existing model.PackageModel
		if err := db.Where("package_slug_en = ?", slugEn).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Package dengan slug %s sudah ada, lewati...", slugEn)
			continue
		}

		now := time.Now()
		newPackage := model.PackageModel{
			PackageID:             uuid.New(),
			PackageType:           p.PackageType,
			PackageTitleEn:        p.TitleEn,
			PackageTitleAr:        p.TitleAr,
			PackageDescriptionEn:  p.DescriptionEn,
			PackageDescriptionAr:  p.DescriptionAr,
			PackageDestinationsEn: p.DestinationsEn,
			PackageDestinationsAr: p.DestinationsAr,
			PackageNights:         p.Nights,
			PackageDays:           p.Days,
			PackageRating:         p.Rating,
			PackageReviewsCount:   p.ReviewsCount,
			PackageDiscount:       p.Discount,
			PackageIsFeatured:     p.IsFeatured,
			PackagePrice:          p.Price,
			PackageOriginalPrice:  p.OriginalPrice,
			PackageItinerary:      mustJSONB(p.Itinerary),
			PackageInclusions:     mustJSONB(p.Inclusions),
			PackageExclusions:     mustJSONB(p.Exclusions),
			PackageHighlights:     mustJSONB(p.Highlights),
			PackageFaqs:           datatypes.JSON([]byte("[]")),
			PackageSlugEn:         slugEn,
			PackageSlugAr:         slugAr,
			PackageCreatedAt:      now,
			PackageUpdatedAt:      now,
		}

		if err := db.Create(&newPackage).Error; err != nil {
			log.Printf("❌ Gagal insert package %s: %v", slugEn, err)
		} else {
			log.Printf("✅ Berhasil insert package %s (%s)", newPackage.PackageTitleEn, newPackage.PackageSlugEn)
		}
	}
}

func mustJSONB(v any) datatypes.JSON {
	if v == nil {
		return datatypes.JSON([]byte("[]"))
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
