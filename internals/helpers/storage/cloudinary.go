package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"tenderoutes_backend/internals/configs"
)

// Transform bounding untuk semua gambar paket: maksimal 1000x700,
// aspect ratio dijaga, tidak pernah upscale.
const boundingTransform = "c_limit,h_700,w_1000"

// CloudinaryService bicara langsung ke REST API Cloudinary (signed upload).
// Instance dibangun sekali dari config lalu di-inject, tanpa singleton global.
type CloudinaryService struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client
}

func NewCloudinaryService(cfg configs.StorageConfig) *CloudinaryService {
	return &CloudinaryService{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		baseURL:   "https://api.cloudinary.com",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *CloudinaryService) Upload(ctx context.Context, localPath, folder string) (UploadResult, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return UploadResult{}, fmt.Errorf("gagal buka file upload: %w", err)
	}
	defer f.Close()

	ts := fmt.Sprintf("%d", time.Now().Unix())
	params := map[string]string{
		"folder":         folder,
		"timestamp":      ts,
		"transformation": boundingTransform,
	}

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	for k, v := range params {
		if err := mw.WriteField(k, v); err != nil {
			return UploadResult{}, err
		}
	}
	if err := mw.WriteField("api_key", s.apiKey); err != nil {
		return UploadResult{}, err
	}
	if err := mw.WriteField("signature", s.sign(params)); err != nil {
		return UploadResult{}, err
	}
	part, err := mw.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return UploadResult{}, fmt.Errorf("gagal baca file upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return UploadResult{}, err
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", s.baseURL, s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload ke Cloudinary gagal: %w", err)
	}
	defer resp.Body.Close()

	var out cloudinaryUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return UploadResult{}, fmt.Errorf("response Cloudinary tidak valid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return UploadResult{}, fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, out.Error.Message)
	}

	return UploadResult{URL: out.SecureURL, PublicID: out.PublicID}, nil
}

func (s *CloudinaryService) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	ts := fmt.Sprintf("%d", time.Now().Unix())
	params := map[string]string{
		"public_id": publicID,
		"timestamp": ts,
	}

	form := url.Values{
		"public_id": {publicID},
		"timestamp": {ts},
		"api_key":   {s.apiKey},
		"signature": {s.sign(params)},
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/destroy", s.baseURL, s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("destroy Cloudinary gagal: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("response destroy tidak valid: %w", err)
	}
	// "not found" dianggap sukses: object sudah tidak ada (idempotent)
	if out.Result != "ok" && out.Result != "not found" {
		return fmt.Errorf("destroy gagal: result=%q status=%d", out.Result, resp.StatusCode)
	}
	return nil
}

// sign menghitung signature Cloudinary: param diurutkan alfabetis,
// digabung k=v dengan "&", ditambah api secret, lalu SHA-1 hex.
func (s *CloudinaryService) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.apiSecret))
	return hex.EncodeToString(sum[:])
}
