package controller

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "tenderoutes_backend/internals/helpers"
	"tenderoutes_backend/internals/helpers/storage"

	"tenderoutes_backend/internals/features/home/sections/dto"
	"tenderoutes_backend/internals/features/home/sections/model"
)

const sectionImageFolder = "tenderoutes-sections"

type SectionController struct {
	DB      *gorm.DB
	Storage storage.ImageStorage
}

func NewSectionController(db *gorm.DB, st storage.ImageStorage) *SectionController {
	return &SectionController{DB: db, Storage: st}
}

// ✅ GET: Semua section, terbaru dulu
func (ctrl *SectionController) GetSections(c *fiber.Ctx) error {
	var sections []model.SectionModel
	if err := ctrl.DB.Order("section_created_at DESC").Find(&sections).Error; err != nil {
		log.Println("[ERROR] Gagal ambil data section:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data section")
	}

	return helper.JsonList(c, "Data section berhasil diambil", dto.ToSectionResponseList(sections), len(sections))
}

// ✅ POST: Buat section baru (multipart: titleEn/Ar, descriptionEn/Ar, image)
func (ctrl *SectionController) CreateSection(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if strings.Contains(c.Get("Content-Type"), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
		}
		req = dto.CreateFromForm(form)
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, "Field wajib belum lengkap", validationFields(err))
	}

	now := time.Now()
	section := model.SectionModel{
		SectionTitleEn:       req.TitleEn,
		SectionTitleAr:       req.TitleAr,
		SectionDescriptionEn: req.DescriptionEn,
		SectionDescriptionAr: req.DescriptionAr,
		SectionCreatedAt:     now,
		SectionUpdatedAt:     now,
	}

	// upload dulu; gagal upload = tidak ada record yang dipersist
	if res, ferr := ctrl.uploadFormImage(c); ferr != nil {
		return helper.FromFiberError(c, ferr)
	} else if res != nil {
		section.SectionImageURL = res.URL
		section.SectionImagePublicID = res.PublicID
	}

	if err := ctrl.DB.Create(&section).Error; err != nil {
		ctrl.destroyQuiet(c, section.SectionImagePublicID)
		log.Println("[ERROR] Gagal simpan section:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan section")
	}

	return helper.JsonCreated(c, "Section berhasil ditambahkan", dto.ToSectionResponse(section))
}

// ✅ PUT: Partial update section (field hadir saja yang ditimpa)
func (ctrl *SectionController) UpdateSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var existing model.SectionModel
	if err := ctrl.DB.Where("section_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}

	var req dto.UpdateSectionRequest
	if strings.Contains(c.Get("Content-Type"), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
		}
		req = dto.UpdateFromForm(form)
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	updated := existing
	req.Apply(&updated, time.Now())

	// ganti gambar: destroy lama best-effort, record hanya berubah
	// kalau upload baru sukses
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		path, err := storage.StageTemp(c, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		defer os.Remove(path)

		ctrl.destroyQuiet(c, existing.SectionImagePublicID)

		res, err := ctrl.Storage.Upload(c.UserContext(), path, sectionImageFolder)
		if err != nil {
			log.Printf("[ERROR] Upload gambar section gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upload gambar")
		}
		updated.SectionImageURL = res.URL
		updated.SectionImagePublicID = res.PublicID
	}

	if err := ctrl.DB.Save(&updated).Error; err != nil {
		log.Println("[ERROR] Gagal update section:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update section")
	}

	return helper.JsonUpdated(c, "Section berhasil diupdate", dto.ToSectionResponse(updated))
}

// ✅ DELETE: Hapus section + lepas gambar di image host
func (ctrl *SectionController) DeleteSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var section model.SectionModel
	if err := ctrl.DB.Where("section_id = ?", id).First(&section).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}

	// gagal destroy cuma di-log, hapus record jalan terus
	ctrl.destroyQuiet(c, section.SectionImagePublicID)

	if err := ctrl.DB.Delete(&section).Error; err != nil {
		log.Println("[ERROR] Gagal hapus section:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus section")
	}

	return helper.JsonDeleted(c, "Section berhasil dihapus", fiber.Map{"id": id.String()})
}

/* ==============================
   Internal
============================== */

func (ctrl *SectionController) uploadFormImage(c *fiber.Ctx) (*storage.UploadResult, error) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return nil, nil
	}

	path, err := storage.StageTemp(c, fh)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer os.Remove(path)

	res, err := ctrl.Storage.Upload(c.UserContext(), path, sectionImageFolder)
	if err != nil {
		log.Printf("[ERROR] Upload gambar section gagal: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal upload gambar")
	}
	return &res, nil
}

func (ctrl *SectionController) destroyQuiet(c *fiber.Ctx, publicID string) {
	if publicID == "" {
		return
	}
	if err := ctrl.Storage.Destroy(c.UserContext(), publicID); err != nil {
		log.Printf("[WARN] Gagal hapus gambar %s di image host: %v", publicID, err)
	}
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
