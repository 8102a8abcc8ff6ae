package service

import (
	"github.com/technest/technest/internal/model"
)

// An IDSet is a membership set of normalized blog identifiers.
// A nil IDSet means "no wishlist": membership is always false.
type IDSet map[string]struct{}

// NewIDSet builds a set from raw string identifiers.
func NewIDSet(ids []string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[model.NormalizeID(id)] = struct{}{}
	}
	return set
}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s[model.NormalizeID(id)]
	return ok
}

// WishlistIDs returns the identifier set of a wishlist record.
// A nil record yields a nil set.
func WishlistIDs(wishlist *model.Wishlist) IDSet {
	if wishlist == nil {
		return nil
	}
	return NewIDSet(wishlist.BlogIDs)
}

// AnnotateBlogs stamps the derived wishlist boolean on every record:
// true iff the record's identifier is a member of ids. Every record gets
// an explicit value, order and count are preserved.
func AnnotateBlogs(blogs []*model.Blog, ids IDSet) []*model.Blog {
	for _, blog := range blogs {
		AnnotateBlog(blog, ids)
	}
	return blogs
}

// AnnotateBlog stamps the derived wishlist boolean on a single record.
func AnnotateBlog(blog *model.Blog, ids IDSet) *model.Blog {
	blog.Wishlist = ids.Contains(blog.ID)
	return blog
}
