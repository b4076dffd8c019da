package db

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle used by middleware and legacy paths.
var DB *gorm.DB

// Init opens the database connection and runs the automatic migration.
// When databaseURL is set a postgres connection is used, otherwise the
// sqlite file at databasePath (default thoughts.db) is opened.
func Init(databaseURL, databasePath string) error {
	var err error

	if url := strings.TrimSpace(databaseURL); url != "" {
		DB, err = gorm.Open(postgres.Open(url), &gorm.Config{})
	} else {
		path := strings.TrimSpace(databasePath)
		if path == "" {
			path = "thoughts.db"
		}
		if dirErr := ensureParentDir(path); dirErr != nil {
			return dirErr
		}
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	if err = DB.AutoMigrate(
		&User{},
		&Category{},
		&Interest{},
		&Article{},
		&Comment{},
		&Bookmark{},
		&Like{},
	); err != nil {
		return err
	}

	seedCategories(DB)

	return nil
}

// seedCategories creates the fixed category reference data on first boot.
func seedCategories(gdb *gorm.DB) {
	var count int64
	gdb.Model(&Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []Category{
		{Name: "Tecnologia", Description: "Programação, ferramentas e novidades do mundo tech"},
		{Name: "Ciência", Description: "Descobertas, pesquisa e divulgação científica"},
		{Name: "Cultura", Description: "Livros, cinema, música e artes"},
		{Name: "Desporto", Description: "Modalidades, competições e vida ativa"},
		{Name: "Viagens", Description: "Destinos, roteiros e relatos de viagem"},
		{Name: "Saúde", Description: "Bem-estar, alimentação e saúde mental"},
	}

	for _, category := range categories {
		if err := gdb.Create(&category).Error; err != nil {
			log.Printf("failed to seed category %s: %v", category.Name, err)
		}
	}
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
