package queries

import (
	"errors"
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"git.solsynth.dev/hypernet/blog/pkg/internal/services"
	"gorm.io/gorm"
)

type ListingMode int

const (
	ListingAll ListingMode = iota
	ListingByCategory
	ListingByTag
	ListingSearch
	ListingByMonth
)

// Listing describes which posts a listing page shows.
// Slug is read by the category and tag modes, Query by search, Year and Month by the archive.
type Listing struct {
	Mode  ListingMode
	Slug  string
	Query string
	Year  int
	Month time.Month
}

func ListAll() Listing {
	return Listing{Mode: ListingAll}
}

func ListByCategory(slug string) Listing {
	return Listing{Mode: ListingByCategory, Slug: slug}
}

func ListByTag(slug string) Listing {
	return Listing{Mode: ListingByTag, Slug: slug}
}

func ListSearch(query string) Listing {
	return Listing{Mode: ListingSearch, Query: query}
}

func ListByMonth(year int, month time.Month) Listing {
	return Listing{Mode: ListingByMonth, Year: year, Month: month}
}

// Resolution is a listing bound to the rows it selects.
// Empty means the listing names something that does not exist, the caller
// must not query at all in that case.
type Resolution struct {
	Scope    func(tx *gorm.DB) *gorm.DB
	Empty    bool
	Category *models.Category
	Tag      *models.Tag
}

type resolver func(site models.Site, in Listing) (Resolution, error)

var resolvers = map[ListingMode]resolver{
	ListingAll:        resolveAll,
	ListingByCategory: resolveByCategory,
	ListingByTag:      resolveByTag,
	ListingSearch:     resolveSearch,
	ListingByMonth:    resolveByMonth,
}

// Resolve turns a listing into a query scope for the site.
// Missing categories or tags are an empty resolution, not an error. Errors are
// reserved for the database itself failing.
func Resolve(site models.Site, in Listing) (Resolution, error) {
	fn, ok := resolvers[in.Mode]
	if !ok {
		return Resolution{}, fmt.Errorf("unknown listing mode %d", in.Mode)
	}
	return fn(site, in)
}

func siteScope(site models.Site, filters ...func(tx *gorm.DB) *gorm.DB) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = services.FilterPostWithSite(tx, site.ID)
		for _, filter := range filters {
			tx = filter(tx)
		}
		return tx
	}
}

func resolveAll(site models.Site, _ Listing) (Resolution, error) {
	return Resolution{Scope: siteScope(site)}, nil
}

func resolveByCategory(site models.Site, in Listing) (Resolution, error) {
	category, err := services.GetCategory(in.Slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Resolution{Empty: true}, nil
	} else if err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Scope: siteScope(site, func(tx *gorm.DB) *gorm.DB {
			return services.FilterPostWithCategory(tx, category.ID)
		}),
		Category: &category,
	}, nil
}

func resolveByTag(site models.Site, in Listing) (Resolution, error) {
	tag, err := services.GetTag(in.Slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Resolution{Empty: true}, nil
	} else if err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Scope: siteScope(site, func(tx *gorm.DB) *gorm.DB {
			return services.FilterPostWithTag(tx, tag.ID)
		}),
		Tag: &tag,
	}, nil
}

func resolveSearch(site models.Site, in Listing) (Resolution, error) {
	return Resolution{
		Scope: siteScope(site, func(tx *gorm.DB) *gorm.DB {
			return services.FilterPostWithFuzzySearch(tx, in.Query)
		}),
	}, nil
}

func resolveByMonth(site models.Site, in Listing) (Resolution, error) {
	if in.Month < time.January || in.Month > time.December {
		return Resolution{Empty: true}, nil
	}

	start := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return Resolution{
		Scope: siteScope(site, func(tx *gorm.DB) *gorm.DB {
			return services.FilterPostWithPublishedIn(tx, start, end)
		}),
	}, nil
}
