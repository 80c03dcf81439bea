package services

// PostPageSize is shared by every listing.
const PostPageSize = 5

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	Count      int64 `json:"count"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func (v Pagination) Offset() int {
	return (v.Page - 1) * v.PageSize
}

// Paginate places the requested page inside [1, TotalPages].
// An empty result still has one (empty) page, so nothing is ever out of range.
func Paginate(count int64, pageSize int, requested int) Pagination {
	if pageSize <= 0 {
		pageSize = PostPageSize
	}

	totalPages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Count:      count,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
