package service

import (
	"github.com/pkg/errors"
	"github.com/technest/technest/internal/database"
	"github.com/technest/technest/internal/model"
	"github.com/technest/technest/internal/server/session"
)

type (
	// A WishlistService owns the per-user list of saved blogs.
	WishlistService interface {
		// Listing resolves the viewer's wishlist to blog records,
		// each forced wishlist=true. Missing or empty records yield
		// an empty slice.
		Listing(viewer session.Viewer) ([]*model.Blog, error)
		// Add saves blogID into the user's wishlist.
		Add(userID, blogID string) (M, error)
		// Remove drops blogID from the user's wishlist.
		Remove(userID, blogID string) (M, error)
	}

	wishlistService struct {
		db database.Client
	}
)

// NewWishlist returns a new WishlistService.
func NewWishlist(db database.Client) WishlistService {
	return &wishlistService{db: db}
}

func (s *wishlistService) Listing(viewer session.Viewer) ([]*model.Blog, error) {
	if !viewer.Authenticated {
		return []*model.Blog{}, nil
	}

	wishlist, err := s.db.FindWishlist(viewer.Identity.UserID)
	if err != nil {
		if s.db.IsNotFound(err) {
			return []*model.Blog{}, nil
		}
		return nil, errors.Wrap(err, "could not get access to database")
	}
	if len(wishlist.BlogIDs) == 0 {
		return []*model.Blog{}, nil
	}

	blogs, err := s.db.FindBlogsByIDs(wishlist.BlogIDs)
	if err != nil {
		return nil, err
	}

	// Every record of the listing belongs to the wishlist.
	for _, blog := range blogs {
		blog.Wishlist = true
	}
	return blogs, nil
}

func (s *wishlistService) Add(userID, blogID string) (M, error) {
	wishlist, err := s.db.AddWishlistBlog(userID, blogID)
	if err != nil {
		return nil, err
	}
	return status(wishlist), nil
}

func (s *wishlistService) Remove(userID, blogID string) (M, error) {
	wishlist, err := s.db.RemoveWishlistBlog(userID, blogID)
	if err != nil {
		return nil, err
	}
	return status(wishlist), nil
}

func status(wishlist *model.Wishlist) M {
	return M{
		"acknowledged": true,
		"count":        len(wishlist.BlogIDs),
	}
}
