package database

import (
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Site{},
	&models.Category{},
	&models.Tag{},
	&models.Post{},
	&models.PostTag{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.SetupJoinTable(&models.Post{}, "Tags", &models.PostTag{}); err != nil {
		return err
	}

	return source.AutoMigrate(AutoMaintainRange...)
}
