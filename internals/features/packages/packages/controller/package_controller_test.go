package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	featuredModel "tenderoutes_backend/internals/features/packages/featured/model"
	"tenderoutes_backend/internals/features/packages/packages/model"
	"tenderoutes_backend/internals/helpers/storage"
)

// fakeImageHost merekam destroy supaya kontrak pelepasan gambar bisa
// di-assert tanpa image host beneran.
type fakeImageHost struct {
	destroyed  []string
	destroyErr error
}

func (f *fakeImageHost) Upload(ctx context.Context, localPath, folder string) (storage.UploadResult, error) {
	return storage.UploadResult{URL: "https://img.test/" + folder, PublicID: folder + "/fake"}, nil
}

func (f *fakeImageHost) Destroy(ctx context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return f.destroyErr
}

// Skema dibuat manual: DDL model memakai tipe/default Postgres
// (gen_random_uuid, jsonb) yang tidak dikenal SQLite. FK kurasi → paket
// ikut dibuat persis seperti hasil migrate di Postgres.
const testPackagesDDL = `CREATE TABLE packages (
	package_id TEXT PRIMARY KEY,
	package_type TEXT NOT NULL,
	package_title_en TEXT NOT NULL,
	package_title_ar TEXT NOT NULL,
	package_description_en TEXT NOT NULL,
	package_description_ar TEXT NOT NULL,
	package_destinations_en TEXT NOT NULL,
	package_destinations_ar TEXT NOT NULL,
	package_nights INTEGER NOT NULL DEFAULT 0,
	package_days INTEGER NOT NULL DEFAULT 0,
	package_rating REAL NOT NULL DEFAULT 0,
	package_reviews_count INTEGER NOT NULL DEFAULT 0,
	package_discount INTEGER NOT NULL DEFAULT 0,
	package_is_featured INTEGER NOT NULL DEFAULT 0,
	package_image_url TEXT,
	package_image_public_id TEXT,
	package_og_image_url TEXT,
	package_og_image_public_id TEXT,
	package_itinerary TEXT,
	package_inclusions TEXT,
	package_exclusions TEXT,
	package_price REAL NOT NULL DEFAULT 0,
	package_original_price REAL NOT NULL DEFAULT 0,
	package_overview_en TEXT,
	package_overview_ar TEXT,
	package_highlights TEXT,
	package_faqs TEXT,
	package_meta_title_en TEXT,
	package_meta_title_ar TEXT,
	package_meta_description_en TEXT,
	package_meta_description_ar TEXT,
	package_meta_keywords_en TEXT,
	package_meta_keywords_ar TEXT,
	package_canonical_url TEXT,
	package_slug_en TEXT NOT NULL UNIQUE,
	package_slug_ar TEXT NOT NULL UNIQUE,
	package_created_at DATETIME,
	package_updated_at DATETIME
)`

const testFeaturedDDL = `CREATE TABLE featured_packages (
	featured_package_id TEXT PRIMARY KEY,
	featured_package_package_id TEXT NOT NULL REFERENCES packages(package_id),
	featured_package_title_en TEXT NOT NULL,
	featured_package_title_ar TEXT NOT NULL,
	featured_package_subtitle_en TEXT NOT NULL,
	featured_package_subtitle_ar TEXT NOT NULL,
	featured_package_destinations_count TEXT NOT NULL,
	featured_package_order INTEGER NOT NULL DEFAULT 0,
	featured_package_is_active INTEGER NOT NULL DEFAULT 1,
	featured_package_created_at DATETIME
)`

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	// satu koneksi supaya :memory: dan PRAGMA konsisten
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatal(err)
	}
	for _, ddl := range []string{testPackagesDDL, testFeaturedDDL} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("buat skema: %v", err)
		}
	}
	return db
}

func newTestApp(db *gorm.DB, st storage.ImageStorage) *fiber.App {
	app := fiber.New()
	ctrl := NewPackageController(db, st)
	app.Get("/api/packages", ctrl.GetPackages)
	app.Post("/api/packages", ctrl.CreatePackage)
	app.Put("/api/packages/:id", ctrl.UpdatePackage)
	app.Delete("/api/packages/:id", ctrl.DeletePackage)
	return app
}

func seedPackage(t *testing.T, db *gorm.DB, titleEn, slugEn, slugAr string) model.PackageModel {
	t.Helper()
	now := time.Now()
	empty := datatypes.JSON([]byte("[]"))
	pkg := model.PackageModel{
		PackageID:              uuid.New(),
		PackageType:            model.PackageTypeStandard,
		PackageTitleEn:         titleEn,
		PackageTitleAr:         "عنوان " + titleEn,
		PackageDescriptionEn:   "deskripsi",
		PackageDescriptionAr:   "وصف",
		PackageDestinationsEn:  "Riyadh",
		PackageDestinationsAr:  "الرياض",
		PackageNights:          2,
		PackageDays:            3,
		PackageImagePublicID:   "tenderoutes-packages/" + slugEn,
		PackageOGImagePublicID: "tenderoutes-packages/og/" + slugEn,
		PackageItinerary:       empty,
		PackageInclusions:      empty,
		PackageExclusions:      empty,
		PackageHighlights:      empty,
		PackageFaqs:            empty,
		PackageSlugEn:          slugEn,
		PackageSlugAr:          slugAr,
		PackageCreatedAt:       now,
		PackageUpdatedAt:       now,
	}
	if err := db.Create(&pkg).Error; err != nil {
		t.Fatalf("seed paket: %v", err)
	}
	return pkg
}

func seedFeatured(t *testing.T, db *gorm.DB, packageID uuid.UUID) featuredModel.FeaturedPackageModel {
	t.Helper()
	item := featuredModel.FeaturedPackageModel{
		FeaturedPackageID:                uuid.New(),
		FeaturedPackagePackageID:         packageID,
		FeaturedPackageTitleEn:           "Top Pick",
		FeaturedPackageTitleAr:           "الأفضل",
		FeaturedPackageSubtitleEn:        "Editor choice",
		FeaturedPackageSubtitleAr:        "اختيار المحرر",
		FeaturedPackageDestinationsCount: "2",
		FeaturedPackageIsActive:          true,
		FeaturedPackageCreatedAt:         time.Now(),
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed featured: %v", err)
	}
	return item
}

func TestDeletePackageReleasesCurationAndImages(t *testing.T) {
	db := newTestDB(t)
	st := &fakeImageHost{}
	app := newTestApp(db, st)

	pkg := seedPackage(t, db, "AlUla", "alula", "العلا")
	seedFeatured(t, db, pkg.PackageID)

	req := httptest.NewRequest(fiber.MethodDelete, "/api/packages/"+pkg.PackageID.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var pkgCount, featCount int64
	db.Model(&model.PackageModel{}).Count(&pkgCount)
	db.Model(&featuredModel.FeaturedPackageModel{}).Count(&featCount)
	if pkgCount != 0 {
		t.Error("paket yang sedang dikurasi harus tetap bisa dihapus")
	}
	if featCount != 0 {
		t.Error("record kurasi harus ikut terhapus bersama paketnya")
	}
	if len(st.destroyed) != 2 {
		t.Errorf("kedua gambar harus dilepas, dapat %v", st.destroyed)
	}
}

func TestDeletePackageDestroyFailureDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	st := &fakeImageHost{destroyErr: errors.New("image host down")}
	app := newTestApp(db, st)

	pkg := seedPackage(t, db, "Riyadh", "riyadh", "الرياض")

	req := httptest.NewRequest(fiber.MethodDelete, "/api/packages/"+pkg.PackageID.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var count int64
	db.Model(&model.PackageModel{}).Count(&count)
	if count != 0 {
		t.Error("gagal destroy tidak boleh membatalkan hapus record")
	}
	if len(st.destroyed) != 2 {
		t.Errorf("destroy tetap harus dicoba untuk kedua gambar, dapat %v", st.destroyed)
	}
}

func createBody(slugEn string) []byte {
	b, _ := json.Marshal(map[string]any{
		"packageType":    "standard",
		"titleEn":        "Another Trip",
		"titleAr":        "رحلة أخرى",
		"descriptionEn":  "deskripsi",
		"descriptionAr":  "وصف",
		"destinationsEn": "Jeddah",
		"destinationsAr": "جدة",
		"nights":         1,
		"days":           2,
		"slugEn":         slugEn,
	})
	return b
}

func TestCreatePackageSlugConflict(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &fakeImageHost{})

	seedPackage(t, db, "AlUla", "alula", "العلا")

	t.Run("slug en sudah dipakai", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/packages", bytes.NewReader(createBody("alula")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Fatalf("status = %d, want 409", resp.StatusCode)
		}
	})

	t.Run("bentrok lintas bahasa juga 409", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/packages", bytes.NewReader(createBody("العلا")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Fatalf("status = %d, want 409", resp.StatusCode)
		}
	})

	var count int64
	db.Model(&model.PackageModel{}).Count(&count)
	if count != 1 {
		t.Errorf("request bentrok tidak boleh menulis record, count = %d", count)
	}
}

func TestUpdatePackageSlugConflict(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &fakeImageHost{})

	seedPackage(t, db, "AlUla", "alula", "العلا")
	target := seedPackage(t, db, "Riyadh", "riyadh", "الرياض")

	body, _ := json.Marshal(map[string]any{"slugEn": "alula"})
	req := httptest.NewRequest(fiber.MethodPut, "/api/packages/"+target.PackageID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}

	var got model.PackageModel
	if err := db.Where("package_id = ?", target.PackageID).First(&got).Error; err != nil {
		t.Fatal(err)
	}
	if got.PackageSlugEn != "riyadh" {
		t.Errorf("slug tidak boleh berubah saat bentrok, dapat %q", got.PackageSlugEn)
	}
}

func TestUpdatePackageEmptySlugKeepsExisting(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &fakeImageHost{})

	pkg := seedPackage(t, db, "AlUla", "alula", "العلا")

	body, _ := json.Marshal(map[string]any{"slugEn": "", "titleEn": "AlUla Deluxe"})
	req := httptest.NewRequest(fiber.MethodPut, "/api/packages/"+pkg.PackageID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got model.PackageModel
	if err := db.Where("package_id = ?", pkg.PackageID).First(&got).Error; err != nil {
		t.Fatal(err)
	}
	if got.PackageSlugEn != "alula" {
		t.Errorf("slug kosong di body harus berarti tidak diubah, dapat %q", got.PackageSlugEn)
	}
	if got.PackageTitleEn != "AlUla Deluxe" {
		t.Errorf("field lain tetap harus ter-update, dapat %q", got.PackageTitleEn)
	}
}
