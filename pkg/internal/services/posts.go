package services

import (
	"strings"
	"time"

	"git.solsynth.dev/hypernet/blog/pkg/internal/database"
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostDefaultOrder is newest first, later insertions win a pub_date tie.
const PostDefaultOrder = "posts.pub_date DESC, posts.id DESC"

func FilterPostWithSite(tx *gorm.DB, site uint) *gorm.DB {
	return tx.Where("posts.site_id = ?", site)
}

func FilterPostWithCategory(tx *gorm.DB, category uint) *gorm.DB {
	return tx.Where("posts.category_id = ?", category)
}

func FilterPostWithTag(tx *gorm.DB, tag uint) *gorm.DB {
	membership := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.PostTag{}).
		Select("post_id").
		Where("tag_id = ?", tag)
	return tx.Where("posts.id IN (?)", membership)
}

func FilterPostWithPublishedIn(tx *gorm.DB, start, end time.Time) *gorm.DB {
	return tx.Where("posts.pub_date >= ? AND posts.pub_date < ?", start, end)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FilterPostWithFuzzySearch matches the probe as a case-insensitive substring of
// the title or the text. An empty probe matches everything.
func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	// Both sides are folded by the database so they agree on case
	probe = "%" + likeEscaper.Replace(probe) + "%"
	return tx.Where(
		`(LOWER(posts.title) LIKE LOWER(?) ESCAPE '\' OR LOWER(posts.text) LIKE LOWER(?) ESCAPE '\')`,
		probe, probe,
	)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Category").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		})
}

func GetPostBySlug(tx *gorm.DB, slug string) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("posts.slug = ?", slug).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(PostDefaultOrder).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(item models.Post) (models.Post, error) {
	if err := ValidateStruct(item); err != nil {
		return item, err
	}
	if err := ensureSlugAvailable(&models.Post{}, &item.Slug, 0); err != nil {
		return item, err
	}

	item.Tags = lo.UniqBy(item.Tags, func(tag models.Tag) uint {
		return tag.ID
	})

	log.Debug().Str("slug", item.Slug).Int("tags", len(item.Tags)).Msg("Saving post record into database...")
	if err := database.C.Omit("Site", "Category", "Tags.*").Create(&item).Error; err != nil {
		return item, translateSlugError(err)
	}

	return item, nil
}

// EditPost saves the post's own columns. Tags are managed with AddPostTag and RemovePostTag.
func EditPost(item models.Post) (models.Post, error) {
	var prev models.Post
	if err := database.C.Where("id = ?", item.ID).First(&prev).Error; err != nil {
		return item, err
	}
	if prev.SiteID != item.SiteID {
		return item, ErrSiteImmutable
	}

	if err := ValidateStruct(item); err != nil {
		return item, err
	}
	if err := ensureSlugAvailable(&models.Post{}, &item.Slug, item.ID); err != nil {
		return item, err
	}

	err := database.C.Omit(clause.Associations).Save(&item).Error

	return item, translateSlugError(err)
}

func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

// AddPostTag is a no-op when the post already carries the tag.
func AddPostTag(post models.Post, tag models.Tag) error {
	return database.C.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostTag{PostID: post.ID, TagID: tag.ID}).Error
}

func RemovePostTag(post models.Post, tag models.Tag) error {
	return database.C.
		Where("post_id = ? AND tag_id = ?", post.ID, tag.ID).
		Delete(&models.PostTag{}).Error
}
