package database

import (
	"fmt"

	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate создает или обновляет схему всех моделей.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	logger.Info("AutoMigrate completed", "tables", len(models.All()))
	return nil
}

// Reset удаляет все таблицы (дочерние первыми) и создает схему заново.
func Reset(db *gorm.DB) error {
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	logger.Warn("All tables dropped")
	return AutoMigrate(db)
}
