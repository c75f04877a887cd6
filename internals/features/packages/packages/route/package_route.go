package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tenderoutes_backend/internals/features/packages/packages/controller"
	"tenderoutes_backend/internals/helpers/storage"
	"tenderoutes_backend/internals/middlewares"
)

func PackageRoutes(api fiber.Router, db *gorm.DB, st storage.ImageStorage) {
	packageCtrl := controller.NewPackageController(db, st)

	pkg := api.Group("/packages")
	pkg.Get("/", packageCtrl.GetPackages)              // 📄 Semua paket (filter type/featured/limit)
	pkg.Get("/slug/:slug", packageCtrl.GetPackageBySlug)
	pkg.Get("/:id", packageCtrl.GetPackageByID)
	pkg.Post("/", middlewares.UploadRateLimiter(), packageCtrl.CreatePackage) // ➕ Buat paket
	pkg.Put("/:id", middlewares.UploadRateLimiter(), packageCtrl.UpdatePackage) // 🔄 Update paket
	pkg.Delete("/:id", packageCtrl.DeletePackage) // 🗑️ Hapus paket
}
