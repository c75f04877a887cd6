package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"tenderoutes_backend/internals/configs"
)

// batas ukuran upload gambar (selaras limit multer di frontend lama)
const MaxUploadSize = int64(5 * 1024 * 1024)

type UploadResult struct {
	URL      string
	PublicID string
}

// ImageStorage adalah kontrak image host: upload file lokal ke folder
// tertentu, dan destroy berdasarkan public id. Destroy harus idempotent —
// object yang sudah tidak ada bukan error.
type ImageStorage interface {
	Upload(ctx context.Context, localPath, folder string) (UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// New memilih implementasi sesuai config (cloudinary | local).
func New(cfg configs.StorageConfig) ImageStorage {
	if cfg.Driver == "local" {
		return NewLocalStorage(cfg)
	}
	return NewCloudinaryService(cfg)
}

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return reUnsafeFilename.ReplaceAllString(filename, "_")
}

// StageTemp menyimpan part multipart ke file sementara dan mengembalikan
// path-nya. Pemanggil WAJIB menghapus file itu di semua jalur keluar
// (defer os.Remove), sukses maupun gagal.
func StageTemp(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("ukuran file %dKB melebihi batas %dKB", fh.Size/1024, MaxUploadSize/1024)
	}
	if !allowedImageType(fh) {
		return "", fmt.Errorf("tipe file tidak didukung, hanya jpg/jpeg/png/webp")
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFilename(fh.Filename))
	path := filepath.Join(os.TempDir(), name)
	if err := c.SaveFile(fh, path); err != nil {
		return "", fmt.Errorf("gagal simpan file sementara: %w", err)
	}
	return path, nil
}

func allowedImageType(fh *multipart.FileHeader) bool {
	ct := strings.ToLower(fh.Header.Get("Content-Type"))
	switch ct {
	case "image/jpg", "image/jpeg", "image/png", "image/webp":
		return true
	}
	// fallback ke ekstensi kalau browser tidak mengisi Content-Type
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}
