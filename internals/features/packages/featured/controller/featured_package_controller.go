package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "tenderoutes_backend/internals/helpers"

	"tenderoutes_backend/internals/features/packages/featured/dto"
	"tenderoutes_backend/internals/features/packages/featured/model"
	packageModel "tenderoutes_backend/internals/features/packages/packages/model"
)

type FeaturedPackageController struct {
	DB *gorm.DB
}

func NewFeaturedPackageController(db *gorm.DB) *FeaturedPackageController {
	return &FeaturedPackageController{DB: db}
}

// ✅ GET: Kurasi homepage — default hanya yang aktif, urut naik by order,
// selalu di-join dengan data paket terkini (bukan snapshot)
func (ctrl *FeaturedPackageController) GetFeaturedPackages(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Package")
	if c.Query("all") != "true" {
		q = q.Where("featured_package_is_active = ?", true)
	}

	var items []model.FeaturedPackageModel
	if err := q.Order("featured_package_order ASC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil featured packages:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data")
	}

	return helper.JsonList(c, "Data featured packages berhasil diambil", dto.ToFeaturedPackageResponseList(items), len(items))
}

// ✅ POST: Tambah paket ke kurasi (paketnya wajib ada)
func (ctrl *FeaturedPackageController) CreateFeaturedPackage(c *fiber.Ctx) error {
	var req dto.CreateFeaturedPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, "Field wajib belum lengkap", validationFields(err))
	}

	// referensi harus resolve dulu, kalau tidak → 404 tanpa menulis apa pun
	var count int64
	if err := ctrl.DB.Model(&packageModel.PackageModel{}).
		Where("package_id = ?", req.PackageID).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] Gagal cek paket:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek paket")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Paket tidak ditemukan")
	}

	item := req.ToModel()
	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Println("[ERROR] Gagal tambah featured package:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal tambah data")
	}

	return helper.JsonCreated(c, "Featured package berhasil ditambahkan", dto.ToFeaturedPackageResponse(item))
}

// ✅ PUT: Partial update (title/subtitle/destinationsCount/order/isActive)
func (ctrl *FeaturedPackageController) UpdateFeaturedPackage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var existing model.FeaturedPackageModel
	if err := ctrl.DB.Where("featured_package_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Featured package tidak ditemukan")
	}

	var req dto.UpdateFeaturedPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, "Input tidak valid", validationFields(err))
	}

	req.Apply(&existing)
	if err := ctrl.DB.Save(&existing).Error; err != nil {
		log.Println("[ERROR] Gagal update featured package:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data")
	}

	return helper.JsonUpdated(c, "Featured package berhasil diupdate", dto.ToFeaturedPackageResponse(existing))
}

// ✅ DELETE: Hapus dari kurasi — hanya record join, paketnya tidak ikut
func (ctrl *FeaturedPackageController) DeleteFeaturedPackage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var existing model.FeaturedPackageModel
	if err := ctrl.DB.Where("featured_package_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Featured package tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&existing).Error; err != nil {
		log.Println("[ERROR] Gagal hapus featured package:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	return helper.JsonDeleted(c, "Featured package berhasil dihapus", fiber.Map{"id": id.String()})
}

// validationFields meratakan error validator jadi map field → pesan
func validationFields(err error) map[string][]string {
	out := map[string][]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			key := fe.Field()
			out[key] = append(out[key], "gagal validasi rule: "+fe.Tag())
		}
		return out
	}
	out["_"] = []string{err.Error()}
	return out
}
