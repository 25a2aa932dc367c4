package storage

import (
	"os"
	"path/filepath"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database at dataSourceName, creating the
// parent directory if needed, and keeps the schema current via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Session{}); err != nil {
		return nil, err
	}
	return db, nil
}
