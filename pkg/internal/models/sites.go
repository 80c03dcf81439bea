package models

// Site is the publication a post is displayed under.
type Site struct {
	BaseModel

	Name   string `json:"name" validate:"required,max=50"`
	Domain string `json:"domain" gorm:"uniqueIndex;size:100" validate:"required,max=100"`
}
