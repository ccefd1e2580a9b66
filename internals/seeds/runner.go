package seeds

import (
	"log"

	"gorm.io/gorm"

	"homework_backend/internals/seeds/demo"
)

const DefaultSeedFile = "internals/seeds/demo/data_demo.json"

func RunAllSeeds(db *gorm.DB, file string) {
	if file == "" {
		file = DefaultSeedFile
	}
	log.Println("[SEED] running demo seed")
	demo.SeedDemoFromJSON(db, file)
}
