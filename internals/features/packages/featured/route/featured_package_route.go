package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tenderoutes_backend/internals/features/packages/featured/controller"
)

func FeaturedPackageRoutes(api fiber.Router, db *gorm.DB) {
	featuredCtrl := controller.NewFeaturedPackageController(db)

	featured := api.Group("/featured-packages")
	featured.Get("/", featuredCtrl.GetFeaturedPackages)          // 📄 Kurasi homepage
	featured.Post("/", featuredCtrl.CreateFeaturedPackage)       // ➕ Tambah ke kurasi
	featured.Put("/:id", featuredCtrl.UpdateFeaturedPackage)     // 🔄 Update kurasi
	featured.Delete("/:id", featuredCtrl.DeleteFeaturedPackage)  // 🗑️ Keluarkan dari kurasi
}
