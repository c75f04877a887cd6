package sections

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"tenderoutes_backend/internals/features/home/sections/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Struktur sesuai dengan bentuk request CreateSection
type SectionSeed struct {
	TitleEn       string `json:"title_en"`
	TitleAr       string `json:"title_ar"`
	DescriptionEn string `json:"description_en"`
	DescriptionAr string `json:"description_ar"`
	ImageURL      string `json:"image_url"`
}

func SeedSectionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var sections []SectionSeed
	if err := json.Unmarshal(file, &sections); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range sections {
		var existing model.SectionModel
		if err := db.Where("section_title_en = ?", s.TitleEn).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Section %q sudah ada, lewati...", s.TitleEn)
			continue
		}

		now := time.Now()
		newSection := model.SectionModel{
			SectionID:            uuid.New(),
			SectionTitleEn:       s.TitleEn,
			SectionTitleAr:       s.TitleAr,
			SectionDescriptionEn: s.DescriptionEn,
			SectionDescriptionAr: s.DescriptionAr,
			SectionImageURL:      s.ImageURL,
			SectionCreatedAt:     now,
			SectionUpdatedAt:     now,
		}

		if err := db.Create(&newSection).Error; err != nil {
			log.Printf("❌ Gagal insert section %q: %v", s.TitleEn, err)
		} else {
			log.Printf("✅ Berhasil insert section %q", newSection.SectionTitleEn)
		}
	}
}
