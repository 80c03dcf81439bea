package services

import (
	"errors"

	"git.solsynth.dev/hypernet/blog/pkg/internal/database"
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"gorm.io/gorm"
)

func GetSiteByDomain(domain string) (models.Site, error) {
	var site models.Site
	if err := database.C.Where("domain = ?", domain).First(&site).Error; err != nil {
		return site, err
	}
	return site, nil
}

// EnsureSite returns the site serving the domain, creating it on first boot.
func EnsureSite(name, domain string) (models.Site, error) {
	site, err := GetSiteByDomain(domain)
	if err == nil {
		return site, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return site, err
	}

	site = models.Site{Name: name, Domain: domain}
	if err := ValidateStruct(site); err != nil {
		return site, err
	}
	err = database.C.Create(&site).Error
	return site, err
}
