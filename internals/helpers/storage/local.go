package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"tenderoutes_backend/internals/configs"
)

// LocalStorage adalah mode bypass image host: gambar di-resize lokal lalu
// disimpan di UploadDir dan diserve statik di /uploads. PublicID = nama file.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(cfg configs.StorageConfig) *LocalStorage {
	return &LocalStorage{
		dir:     cfg.UploadDir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (s *LocalStorage) Upload(ctx context.Context, localPath, folder string) (UploadResult, error) {
	raw, err := os.ReadFile(localPath)
	if err != nil {
		return UploadResult{}, fmt.Errorf("gagal baca file upload: %w", err)
	}

	img, err := decodeImage(raw)
	if err != nil {
		return UploadResult{}, err
	}

	// bounding sama seperti transform Cloudinary: fit 1000x700, tanpa upscale
	b := img.Bounds()
	if b.Dx() > 1000 || b.Dy() > 700 {
		img = imaging.Fit(img, 1000, 700, imaging.Lanczos)
	}

	name := fmt.Sprintf("%s-%s.jpg", time.Now().Format("20060102"), uuid.New().String())
	if folder != "" {
		name = strings.ReplaceAll(folder, "/", "-") + "-" + name
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return UploadResult{}, fmt.Errorf("gagal siapkan upload dir: %w", err)
	}
	dst := filepath.Join(s.dir, name)
	if err := imaging.Save(img, dst, imaging.JPEGQuality(85)); err != nil {
		return UploadResult{}, fmt.Errorf("gagal simpan gambar: %w", err)
	}

	return UploadResult{
		URL:      s.baseURL + "/uploads/" + name,
		PublicID: name,
	}, nil
}

func (s *LocalStorage) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	// guard: public id hanya boleh nama file, bukan path
	name := filepath.Base(publicID)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return nil // sudah tidak ada, idempotent
		}
		return err
	}
	return nil
}

// decodeImage sniff MIME dari header bytes lalu decode jpeg/png/webp.
func decodeImage(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("file kosong")
	}
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("format gambar tidak didukung: %s", ct)
	}
}
