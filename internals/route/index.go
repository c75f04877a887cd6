package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionRoute "tenderoutes_backend/internals/features/home/sections/route"
	featuredRoute "tenderoutes_backend/internals/features/packages/featured/route"
	packageRoute "tenderoutes_backend/internals/features/packages/packages/route"
	"tenderoutes_backend/internals/helpers/storage"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, st storage.ImageStorage) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up SectionRoutes...")
	sectionRoute.SectionRoutes(api, db, st)

	log.Println("[INFO] Setting up PackageRoutes...")
	packageRoute.PackageRoutes(api, db, st)

	log.Println("[INFO] Setting up FeaturedPackageRoutes...")
	featuredRoute.FeaturedPackageRoutes(api, db)
}
