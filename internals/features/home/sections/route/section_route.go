package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tenderoutes_backend/internals/features/home/sections/controller"
	"tenderoutes_backend/internals/helpers/storage"
	"tenderoutes_backend/internals/middlewares"
)

func SectionRoutes(api fiber.Router, db *gorm.DB, st storage.ImageStorage) {
	sectionCtrl := controller.NewSectionController(db, st)

	section := api.Group("/sections")
	section.Get("/", sectionCtrl.GetSections)   // 📄 Semua section
	section.Post("/", middlewares.UploadRateLimiter(), sectionCtrl.CreateSection)   // ➕ Buat section
	section.Put("/:id", middlewares.UploadRateLimiter(), sectionCtrl.UpdateSection) // 🔄 Update section
	section.Delete("/:id", sectionCtrl.DeleteSection) // 🗑️ Hapus section
}
