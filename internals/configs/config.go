package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// STORAGE CONFIG
// =======================

// StorageConfig dibangun sekali di main lalu di-inject ke service,
// tidak ada singleton Cloudinary global.
type StorageConfig struct {
	Driver    string // "cloudinary" | "local"
	CloudName string
	APIKey    string
	APISecret string
	UploadDir string // dipakai driver local
	BaseURL   string // prefix URL publik untuk driver local
}

func LoadStorageConfig() StorageConfig {
	cfg := StorageConfig{
		Driver:    strings.ToLower(GetEnv("IMAGE_STORAGE_DRIVER", "cloudinary")),
		CloudName: GetEnv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    GetEnv("CLOUDINARY_API_KEY"),
		APISecret: GetEnv("CLOUDINARY_API_SECRET"),
		UploadDir: GetEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:   GetEnv("PUBLIC_BASE_URL", ""),
	}

	if cfg.Driver == "cloudinary" {
		if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
			log.Println("❌ Kredensial Cloudinary belum lengkap, fallback ke storage local")
			cfg.Driver = "local"
		} else {
			log.Println("✅ Konfigurasi Cloudinary berhasil dimuat.")
		}
	}
	if cfg.Driver == "local" {
		log.Printf("📁 Storage local aktif, upload dir: %s", cfg.UploadDir)
	}
	return cfg
}
