package service

import (
	"strings"

	"github.com/technest/technest/internal/database"
)

// Sort direction tokens accepted by listing endpoints.
// Anything else falls back to SortDescending.
const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// RecentLimit is the fixed size of the recent-blogs slice.
const RecentLimit = 6

// ListParams are the raw listing parameters of a blog listing request.
type ListParams struct {
	// SearchTitle is an optional free-text title fragment.
	SearchTitle string
	// Categories is an optional comma-separated category list.
	Categories string
	// Sort is an optional sort direction token.
	Sort string
}

// Searched reports whether the request is in search mode rather than
// browse-all mode. The response contract exposes this distinction.
func (p ListParams) Searched() bool {
	return p.title() != "" || len(p.categories()) > 0
}

// Query translates the parameters into a store query: case-insensitive
// title fragment AND category membership, sorted by creation time.
func (p ListParams) Query() database.BlogQuery {
	return database.BlogQuery{
		Title:      p.title(),
		Categories: p.categories(),
		Ascending:  p.Sort == SortAscending,
	}
}

func (p ListParams) title() string {
	return strings.TrimSpace(p.SearchTitle)
}

func (p ListParams) categories() []string {
	var categories []string
	for _, category := range strings.Split(p.Categories, ",") {
		category = strings.TrimSpace(category)
		if category == "" || category == "all" {
			continue
		}
		categories = append(categories, category)
	}
	return categories
}
