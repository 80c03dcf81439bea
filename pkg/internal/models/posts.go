package models

import (
	"fmt"
	"time"
)

type Post struct {
	BaseModel

	Title   string    `json:"title" gorm:"size:200" validate:"required,max=200"`
	PubDate time.Time `json:"pub_date" gorm:"index"`
	Text    string    `json:"text"`
	Slug    string    `json:"slug" gorm:"uniqueIndex;size:40" validate:"required,slug,max=40"`

	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category" gorm:"constraint:OnDelete:SET NULL" validate:"-"`

	SiteID uint `json:"site_id" validate:"required"`
	Site   Site `json:"-" validate:"-"`

	Tags []Tag `json:"tags" gorm:"many2many:post_tags" validate:"-"`
}

// Permalink follows /{year}/{month}/{slug}/ with the month left unpadded.
// The month is taken in UTC, the same calendar the month archive uses.
func (v Post) Permalink() string {
	date := v.PubDate.UTC()
	return fmt.Sprintf("/%d/%d/%s/", date.Year(), int(date.Month()), v.Slug)
}
