package models

import (
	"fmt"
	"time"
)

type Category struct {
	BaseModel

	Name        string  `json:"name" gorm:"size:200" validate:"required,max=200"`
	Description string  `json:"description"`
	Slug        *string `json:"slug" gorm:"uniqueIndex;size:40" validate:"omitempty,slug,max=40"`
}

// Permalink is empty when the category has no slug.
func (v Category) Permalink() string {
	if v.Slug == nil {
		return ""
	}
	return fmt.Sprintf("/category/%s/", *v.Slug)
}

type Tag struct {
	BaseModel

	Name string  `json:"name" gorm:"size:200" validate:"required,max=200"`
	Slug *string `json:"slug" gorm:"uniqueIndex;size:40" validate:"omitempty,slug,max=40"`
}

func (v Tag) Permalink() string {
	if v.Slug == nil {
		return ""
	}
	return fmt.Sprintf("/tag/%s/", *v.Slug)
}

// PostTag is the membership row between a post and a tag.
// Neither side owns it, the pair is the whole identity.
type PostTag struct {
	PostID    uint      `json:"post_id" gorm:"primaryKey"`
	TagID     uint      `json:"tag_id" gorm:"primaryKey;index"`
	CreatedAt time.Time `json:"created_at"`
}
