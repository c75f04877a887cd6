package seeds

import (
	sections "tenderoutes_backend/internals/seeds/home/sections"
	packages "tenderoutes_backend/internals/seeds/packages/packages"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Home
	sections.SeedSectionsFromJSON(db, "internals/seeds/home/sections/data_sections.json")

	//* Packages
	packages.SeedPackagesFromJSON(db, "internals/seeds/packages/packages/data_packages.json")
}
