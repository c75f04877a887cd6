package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"tenderoutes_backend/internals/configs"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *CloudinaryService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := NewCloudinaryService(configs.StorageConfig{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
	})
	s.baseURL = srv.URL
	return s
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foto.jpg")
	if err := os.WriteFile(path, []byte("bukan-gambar-beneran"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCloudinaryUpload(t *testing.T) {
	t.Run("sukses", func(t *testing.T) {
		var gotPath string
		var gotFolder, gotSignature string
		s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			if err := r.ParseMultipartForm(10 << 20); err != nil {
				t.Errorf("parse multipart: %v", err)
			}
			gotFolder = r.FormValue("folder")
			gotSignature = r.FormValue("signature")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/p.jpg","public_id":"tenderoutes-packages/p"}`))
		})

		res, err := s.Upload(context.Background(), writeTempImage(t), "tenderoutes-packages")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/v1_1/demo/image/upload" {
			t.Errorf("path = %q", gotPath)
		}
		if gotFolder != "tenderoutes-packages" {
			t.Errorf("folder = %q", gotFolder)
		}
		if gotSignature == "" {
			t.Error("signature kosong")
		}
		if res.URL != "https://res.cloudinary.com/demo/p.jpg" || res.PublicID != "tenderoutes-packages/p" {
			t.Errorf("result = %+v", res)
		}
	})

	t.Run("status error diteruskan", func(t *testing.T) {
		s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
		})

		if _, err := s.Upload(context.Background(), writeTempImage(t), "f"); err == nil {
			t.Error("expected error untuk status 401")
		}
	})

	t.Run("file tidak ada", func(t *testing.T) {
		s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("server tidak boleh dipanggil")
		})
		if _, err := s.Upload(context.Background(), "/tmp/tidak-ada-file.jpg", "f"); err == nil {
			t.Error("expected error untuk file hilang")
		}
	})
}

func TestCloudinaryDestroy(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var gotPath string
		s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"result":"ok"}`))
		})
		if err := s.Destroy(context.Background(), "tenderoutes-packages/p"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/v1_1/demo/image/destroy" {
			t.Errorf("path = %q", gotPath)
		}
	})

	t.Run("not found tetap sukses", func(t *testing.T) {
		s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"not found"}`))
		})
		if err := s.Destroy(context.Background(), "sudah-hilang"); err != nil {
			t.Errorf("destroy idempotent, dapat error: %v", err)
		}
	})

	t.Run("public id kosong no-op", func(t *testing.T) {
		s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("server tidak boleh dipanggil")
		})
		if err := s.Destroy(context.Background(), ""); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("public id dengan karakter reserved tetap utuh", func(t *testing.T) {
		const publicID = "tenderoutes-packages/og/foto musim panas&v=2"
		var gotID string
		s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			gotID = r.FormValue("public_id")
			w.Write([]byte(`{"result":"ok"}`))
		})
		if err := s.Destroy(context.Background(), publicID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotID != publicID {
			t.Errorf("public_id sampai sebagai %q, want %q", gotID, publicID)
		}
	})

	t.Run("result lain error", func(t *testing.T) {
		s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"rate limited"}`))
		})
		if err := s.Destroy(context.Background(), "p"); err == nil {
			t.Error("expected error untuk result bukan ok")
		}
	})
}

func TestSign(t *testing.T) {
	s := &CloudinaryService{apiSecret: "abcd"}
	// param diurutkan alfabetis sebelum di-hash, urutan map tidak boleh
	// pengaruhi hasil
	a := s.sign(map[string]string{"timestamp": "1", "folder": "x"})
	b := s.sign(map[string]string{"folder": "x", "timestamp": "1"})
	if a != b {
		t.Errorf("signature tidak deterministik: %q vs %q", a, b)
	}
	if len(a) != 40 {
		t.Errorf("SHA-1 hex harus 40 karakter, dapat %d", len(a))
	}
}
