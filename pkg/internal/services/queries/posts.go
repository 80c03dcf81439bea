package queries

import (
	"time"

	"git.solsynth.dev/hypernet/blog/pkg/internal/database"
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"git.solsynth.dev/hypernet/blog/pkg/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const NoPostsFound = "No posts found"

type PublishDate struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Day       int    `json:"day"`
}

type CategoryEntry struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Slug        *string `json:"slug"`
	Permalink   string  `json:"permalink,omitempty"`
}

type TagEntry struct {
	Name      string  `json:"name"`
	Slug      *string `json:"slug"`
	Permalink string  `json:"permalink,omitempty"`
}

type PostEntry struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Permalink string         `json:"permalink"`
	HTML      string         `json:"html"`
	Category  *CategoryEntry `json:"category"`
	Tags      []TagEntry     `json:"tags"`
	PubDate   time.Time      `json:"pub_date"`
	Published PublishDate    `json:"published"`
}

type PostPage struct {
	services.Pagination

	Posts    []PostEntry    `json:"posts"`
	Message  string         `json:"message,omitempty"`
	Category *CategoryEntry `json:"category,omitempty"`
	Tag      *TagEntry      `json:"tag,omitempty"`
	Search   *string        `json:"search,omitempty"`
}

func NewPublishDate(t time.Time) PublishDate {
	t = t.UTC()
	return PublishDate{
		Year:      t.Year(),
		Month:     int(t.Month()),
		MonthName: t.Format("Jan"),
		Day:       t.Day(),
	}
}

func NewCategoryEntry(category models.Category) CategoryEntry {
	return CategoryEntry{
		Name:        category.Name,
		Description: category.Description,
		Slug:        category.Slug,
		Permalink:   category.Permalink(),
	}
}

func NewTagEntry(tag models.Tag) TagEntry {
	return TagEntry{
		Name:      tag.Name,
		Slug:      tag.Slug,
		Permalink: tag.Permalink(),
	}
}

// CompletePostMeta renders each post's text and flattens its relations for display.
func CompletePostMeta(in ...models.Post) []PostEntry {
	return lo.Map(in, func(item models.Post, _ int) PostEntry {
		entry := PostEntry{
			ID:        item.ID,
			Title:     item.Title,
			Slug:      item.Slug,
			Permalink: item.Permalink(),
			HTML:      services.RenderMarkupOrPlain(item.Text),
			Tags:      lo.Map(item.Tags, func(tag models.Tag, _ int) TagEntry { return NewTagEntry(tag) }),
			PubDate:   item.PubDate.UTC(),
			Published: NewPublishDate(item.PubDate),
		}
		if item.Category != nil {
			entry.Category = lo.ToPtr(NewCategoryEntry(*item.Category))
		}
		return entry
	})
}

// ListPostPage resolves the listing for the site and assembles the requested page.
// It only fails when the database does.
func ListPostPage(site models.Site, in Listing, page int) (PostPage, error) {
	out := PostPage{Posts: []PostEntry{}}
	if in.Mode == ListingSearch {
		out.Search = lo.ToPtr(in.Query)
	}

	res, err := Resolve(site, in)
	if err != nil {
		return out, err
	}
	if res.Category != nil {
		out.Category = lo.ToPtr(NewCategoryEntry(*res.Category))
	}
	if res.Tag != nil {
		out.Tag = lo.ToPtr(NewTagEntry(*res.Tag))
	}

	if res.Empty {
		out.Pagination = services.Paginate(0, services.PostPageSize, page)
		out.Message = NoPostsFound
		return out, nil
	}

	count, err := services.CountPost(database.C.Scopes(res.Scope))
	if err != nil {
		return out, err
	}
	out.Pagination = services.Paginate(count, services.PostPageSize, page)

	posts, err := services.ListPost(database.C.Scopes(res.Scope), out.PageSize, out.Offset())
	if err != nil {
		return out, err
	}
	log.Debug().Int("mode", int(in.Mode)).Int64("count", count).Int("page", out.Page).Msg("Listed posts for page...")

	out.Posts = CompletePostMeta(posts...)
	if len(out.Posts) == 0 {
		out.Message = NoPostsFound
	}

	return out, nil
}

// GetPost looks a post up by slug within the site.
func GetPost(site models.Site, slug string) (PostEntry, error) {
	post, err := services.GetPostBySlug(database.C.Scopes(siteScope(site)), slug)
	if err != nil {
		return PostEntry{}, err
	}
	return CompletePostMeta(post)[0], nil
}
