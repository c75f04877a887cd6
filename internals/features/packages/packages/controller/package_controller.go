package controller

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "tenderoutes_backend/internals/helpers"
	"tenderoutes_backend/internals/helpers/storage"

	featuredModel "tenderoutes_backend/internals/features/packages/featured/model"
	"tenderoutes_backend/internals/features/packages/packages/dto"
	"tenderoutes_backend/internals/features/packages/packages/model"
	"tenderoutes_backend/internals/features/packages/packages/service"
)

// folder upload Cloudinary, dipisah supaya og:image punya namespace sendiri
const (
	packageImageFolder = "tenderoutes-packages"
	packageOGFolder    = "tenderoutes-packages/og"
)

type PackageController struct {
	DB      *gorm.DB
	Storage storage.ImageStorage
}

func NewPackageController(db *gorm.DB, st storage.ImageStorage) *PackageController {
	return &PackageController{DB: db, Storage: st}
}

// ✅ GET: Semua paket, filter opsional ?type=&featured=&limit=
func (ctrl *PackageController) GetPackages(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.PackageModel{})

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("package_type = ?", t)
	}
	if f := strings.TrimSpace(c.Query("featured")); f != "" {
		q = q.Where("package_is_featured = ?", f == "true")
	}
	if limit := helper.ResolveLimit(c, 100); limit > 0 {
		q = q.Limit(limit)
	}

	var packages []model.PackageModel
	if err := q.Order("package_created_at DESC").Find(&packages).Error; err != nil {
		log.Println("[ERROR] Gagal ambil data paket:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data paket")
	}

	return helper.JsonList(c, "Data paket berhasil diambil", dto.ToPackageResponseList(packages), len(packages))
}

// ✅ GET: Satu paket by ID
func (ctrl *PackageController) GetPackageByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var pkg model.PackageModel
	if err := ctrl.DB.Where("package_id = ?", id).First(&pkg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Paket tidak ditemukan")
	}

	return helper.JsonOK(c, "Data paket berhasil diambil", dto.ToPackageResponse(pkg))
}

// ✅ GET: Satu paket by slug (en atau ar, slug unik lintas bahasa)
func (ctrl *PackageController) GetPackageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var pkg model.PackageModel
	if err := ctrl.DB.
		Where("package_slug_en = ? OR package_slug_ar = ?", slug, slug).
		First(&pkg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Paket tidak ditemukan")
	}

	return helper.JsonOK(c, "Data paket berhasil diambil", dto.ToPackageResponse(pkg))
}

// ✅ POST: Buat paket baru (multipart atau JSON)
func (ctrl *PackageController) CreatePackage(c *fiber.Ctx) error {
	payload, fieldErrs, err := parsePayload(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	in, decodeErrs := service.FromPayload(payload)
	mergeFieldErrs(fieldErrs, decodeErrs)
	mergeFieldErrs(fieldErrs, service.ValidateRequired(in))
	mergeFieldErrs(fieldErrs, service.ValidateRanges(in))
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, "Field wajib belum lengkap atau tidak valid", fieldErrs)
	}

	now := time.Now()
	pkg, err := service.BuildPackage(in, now)
	if err != nil {
		log.Println("[ERROR] Gagal merakit record paket:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses data paket")
	}

	// slug: dipasok → harus bebas (bentrok 409); diturunkan dari judul → cari suffix bebas
	slugEn, ferr := ctrl.resolveSlug("package_slug_en", in.SlugEn, *in.TitleEn, nil)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}
	slugAr, ferr := ctrl.resolveSlug("package_slug_ar", in.SlugAr, *in.TitleAr, nil)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}
	pkg.PackageSlugEn = slugEn
	pkg.PackageSlugAr = slugAr

	// upload gambar dulu; gagal upload = tidak ada record yang dipersist
	img, ferr := ctrl.uploadFormImage(c, "image", packageImageFolder)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}
	ogImg, ferr := ctrl.uploadFormImage(c, "ogImage", packageOGFolder)
	if ferr != nil {
		if img != nil {
			ctrl.destroyQuiet(c, img.PublicID)
		}
		return helper.FromFiberError(c, ferr)
	}
	if img != nil {
		pkg.PackageImageURL = img.URL
		pkg.PackageImagePublicID = img.PublicID
	}
	if ogImg != nil {
		pkg.PackageOGImageURL = ogImg.URL
		pkg.PackageOGImagePublicID = ogImg.PublicID
	}

	if err := ctrl.DB.Create(&pkg).Error; err != nil {
		// record gagal masuk → lepas gambar yang terlanjur ter-upload
		if img != nil {
			ctrl.destroyQuiet(c, img.PublicID)
		}
		if ogImg != nil {
			ctrl.destroyQuiet(c, ogImg.PublicID)
		}
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug sudah dipakai paket lain")
		}
		log.Println("[ERROR] Gagal simpan paket:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan paket")
	}

	return helper.JsonCreated(c, "Paket berhasil ditambahkan", dto.ToPackageResponse(pkg))
}

// ✅ PUT: Partial update paket
func (ctrl *PackageController) UpdatePackage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var existing model.PackageModel
	if err := ctrl.DB.Where("package_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Paket tidak ditemukan")
	}

	payload, fieldErrs, err := parsePayload(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	in, decodeErrs := service.FromPayload(payload)
	mergeFieldErrs(fieldErrs, decodeErrs)
	mergeFieldErrs(fieldErrs, service.ValidateRanges(in))
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, "Input tidak valid", fieldErrs)
	}

	// slug string kosong di body update = tidak diubah, bukan regenerate
	if in.SlugEn != nil && strings.TrimSpace(*in.SlugEn) == "" {
		in.SlugEn = nil
	}
	if in.SlugAr != nil && strings.TrimSpace(*in.SlugAr) == "" {
		in.SlugAr = nil
	}

	// slug dipasok eksplisit saat update: bentrok = 409, tidak ada probe
	if in.SlugEn != nil {
		s, ferr := ctrl.resolveSlug("package_slug_en", in.SlugEn, "", existing.PackageID)
		if ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
		in.SlugEn = &s
	}
	if in.SlugAr != nil {
		s, ferr := ctrl.resolveSlug("package_slug_ar", in.SlugAr, "", existing.PackageID)
		if ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
		in.SlugAr = &s
	}

	// merge murni ke salinan; persist hanya kalau semua langkah sukses
	updated := existing
	if err := service.ApplyUpdate(&updated, in, time.Now()); err != nil {
		log.Println("[ERROR] Gagal merge paket:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses data paket")
	}

	// ganti gambar: destroy lama (gagal tidak memblokir), upload baru;
	// upload gagal = referensi lama tetap utuh di record
	if newImg, ferr := ctrl.replaceImage(c, "image", packageImageFolder, existing.PackageImagePublicID); ferr != nil {
		return helper.FromFiberError(c, ferr)
	} else if newImg != nil {
		updated.PackageImageURL = newImg.URL
		updated.PackageImagePublicID = newImg.PublicID
	}
	if newOG, ferr := ctrl.replaceImage(c, "ogImage", packageOGFolder, existing.PackageOGImagePublicID); ferr != nil {
		return helper.FromFiberError(c, ferr)
	} else if newOG != nil {
		updated.PackageOGImageURL = newOG.URL
		updated.PackageOGImagePublicID = newOG.PublicID
	}

	if err := ctrl.DB.Save(&updated).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug sudah dipakai paket lain")
		}
		log.Println("[ERROR] Gagal update paket:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update paket")
	}

	return helper.JsonUpdated(c, "Paket berhasil diupdate", dto.ToPackageResponse(updated))
}

// ✅ DELETE: Hapus paket + lepas kedua gambar di image host
func (ctrl *PackageController) DeletePackage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var pkg model.PackageModel
	if err := ctrl.DB.Where("package_id = ?", id).First(&pkg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Paket tidak ditemukan")
	}

	// record kurasi punya FK ke paket; hapus join-nya dulu dalam satu
	// transaksi supaya delete paket tidak mentok constraint
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("featured_package_package_id = ?", pkg.PackageID).
			Delete(&featuredModel.FeaturedPackageModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pkg).Error
	}); err != nil {
		log.Println("[ERROR] Gagal hapus paket:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus paket")
	}

	// gambar dilepas setelah record pasti hilang; gagal destroy cuma
	// di-log, gambar yatim di host masih bisa dibersihkan belakangan
	ctrl.destroyQuiet(c, pkg.PackageImagePublicID)
	ctrl.destroyQuiet(c, pkg.PackageOGImagePublicID)

	return helper.JsonDeleted(c, "Paket berhasil dihapus", fiber.Map{"id": id.String()})
}

/* ==============================
   Internal
============================== */

func parsePayload(c *fiber.Ctx) (dto.PackagePayload, map[string][]string, error) {
	if strings.Contains(c.Get("Content-Type"), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return dto.PackagePayload{}, nil, err
		}
		p, fieldErrs := dto.PayloadFromForm(form)
		return p, fieldErrs, nil
	}

	var p dto.PackagePayload
	if err := c.BodyParser(&p); err != nil {
		return dto.PackagePayload{}, nil, err
	}
	return p, map[string][]string{}, nil
}

func mergeFieldErrs(dst, src map[string][]string) {
	for k, v := range src {
		dst[k] = append(dst[k], v...)
	}
}

// resolveSlug: supplied != nil → normalisasi, bentrok 409.
// supplied nil → turunkan dari title dan cari suffix yang bebas.
func (ctrl *PackageController) resolveSlug(column string, supplied *string, title string, excludeID any) (string, error) {
	if supplied != nil && strings.TrimSpace(*supplied) != "" {
		s := helper.Slugify(*supplied, helper.DefaultSlugMaxLen)
		taken, err := ctrl.slugTaken(column, s, excludeID)
		if err != nil {
			return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal cek slug")
		}
		if taken {
			return "", fiber.NewError(fiber.StatusConflict, "Slug sudah dipakai paket lain")
		}
		return s, nil
	}

	base := helper.Slugify(title, helper.DefaultSlugMaxLen)
	if base == "" {
		base = "package"
	}
	s, err := helper.EnsureUniqueSlug(ctrl.DB, "packages",
		[]string{column, otherSlugColumn(column)}, base, "package_id", excludeID)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal generate slug")
	}
	return s, nil
}

func (ctrl *PackageController) slugTaken(column, slug string, excludeID any) (bool, error) {
	q := ctrl.DB.Model(&model.PackageModel{}).
		Where(column+" = ? OR "+otherSlugColumn(column)+" = ?", slug, slug)
	if excludeID != nil {
		q = q.Where("package_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func otherSlugColumn(column string) string {
	if column == "package_slug_en" {
		return "package_slug_ar"
	}
	return "package_slug_en"
}

// uploadFormImage: file tidak ada → (nil, nil). File sementara selalu
// dihapus, upload sukses maupun gagal.
func (ctrl *PackageController) uploadFormImage(c *fiber.Ctx, field, folder string) (*storage.UploadResult, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, nil
	}

	path, err := storage.StageTemp(c, fh)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer os.Remove(path)

	res, err := ctrl.Storage.Upload(c.UserContext(), path, folder)
	if err != nil {
		log.Printf("[ERROR] Upload gambar %s gagal: %v", field, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal upload gambar")
	}
	return &res, nil
}

// replaceImage: stage file baru dulu (validasi), destroy object lama
// (best effort, gagal tidak memblokir), lalu upload. Upload gagal →
// error, referensi lama di record tidak tersentuh.
func (ctrl *PackageController) replaceImage(c *fiber.Ctx, field, folder, oldPublicID string) (*storage.UploadResult, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, nil
	}

	path, err := storage.StageTemp(c, fh)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer os.Remove(path)

	ctrl.destroyQuiet(c, oldPublicID)

	res, err := ctrl.Storage.Upload(c.UserContext(), path, folder)
	if err != nil {
		log.Printf("[ERROR] Upload gambar %s gagal: %v", field, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal upload gambar")
	}
	return &res, nil
}

func (ctrl *PackageController) destroyQuiet(c *fiber.Ctx, publicID string) {
	if publicID == "" {
		return
	}
	if err := ctrl.Storage.Destroy(c.UserContext(), publicID); err != nil {
		log.Printf("[WARN] Gagal hapus gambar %s di image host: %v", publicID, err)
	}
}

// isUniqueViolation: deteksi SQLSTATE 23505 tanpa import tipe error driver
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
