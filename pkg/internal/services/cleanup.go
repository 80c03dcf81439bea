package services

import (
	"git.solsynth.dev/hypernet/blog/pkg/internal/database"
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup repairs references left behind by writes that bypassed
// DeleteCategory and DeleteTag, for example rows removed by hand in the database.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Cleaning up dangling content references...")

	tx := database.C.
		Where("post_id NOT IN (?)", database.C.Model(&models.Post{}).Select("id")).
		Or("tag_id NOT IN (?)", database.C.Model(&models.Tag{}).Select("id")).
		Delete(&models.PostTag{})
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up tag memberships...")
	} else if tx.RowsAffected > 0 {
		log.Info().Int64("count", tx.RowsAffected).Msg("Removed dangling tag memberships.")
	}

	tx = database.C.Model(&models.Post{}).
		Where("category_id IS NOT NULL").
		Where("category_id NOT IN (?)", database.C.Model(&models.Category{}).Select("id")).
		Update("category_id", nil)
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up post categories...")
	} else if tx.RowsAffected > 0 {
		log.Info().Int64("count", tx.RowsAffected).Msg("Detached posts from missing categories.")
	}

	log.Debug().Msg("Cleaned up dangling content references.")
}
