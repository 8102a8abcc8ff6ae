package database

import (
	"github.com/technest/technest/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool
		// IsAlreadyExists returns true if err is an already exists error.
		IsAlreadyExists(err error) bool

		BlogInteraction
		WishlistInteraction
		CurationInteraction
		CommentInteraction
	}

	// A BlogQuery narrows down a blog listing.
	// The zero value is the browse-all mode: no filter, newest first.
	BlogQuery struct {
		// Title filters on a case-insensitive title fragment when non-empty.
		Title string
		// Categories filters on category membership when non-empty.
		Categories []string
		// Ascending sorts by creation time, oldest first.
		Ascending bool
		// Limit caps the result count when greater than 0.
		Limit int
	}

	// A BlogInteraction defines all the methods used to interact with blog records.
	BlogInteraction interface {
		// FindBlog returns the blog for the given id.
		FindBlog(id string) (*model.Blog, error)
		// FindBlogsByQuery returns all the blogs matching the given query.
		FindBlogsByQuery(query BlogQuery) ([]*model.Blog, error)
		// FindBlogsByIDs returns the blogs matching the given ids.
		// Identifiers that do not resolve to a record are skipped.
		FindBlogsByIDs(ids []string) ([]*model.Blog, error)
	}

	// A WishlistInteraction defines all the methods used to interact with wishlist records.
	WishlistInteraction interface {
		// FindWishlist returns the wishlist of the given user.
		FindWishlist(userID string) (*model.Wishlist, error)
		// AddWishlistBlog saves blogID into the user's wishlist.
		// The record is created on first add and entries are not duplicated.
		AddWishlistBlog(userID, blogID string) (*model.Wishlist, error)
		// RemoveWishlistBlog removes blogID from the user's wishlist.
		// Removing from a missing record or a missing entry is a successful no-op.
		RemoveWishlistBlog(userID, blogID string) (*model.Wishlist, error)
	}

	// A CurationInteraction defines all the methods used to interact with the singleton curation records.
	CurationInteraction interface {
		// FindEditorsPick returns the editorial selection.
		FindEditorsPick() (*model.EditorsPick, error)
		// FindCategorySet returns the enumerated category names.
		FindCategorySet() (*model.CategorySet, error)
	}

	// A CommentInteraction defines all the methods used to interact with comment threads.
	CommentInteraction interface {
		// FindCommentThread returns the comment thread of the given blog.
		FindCommentThread(blogID string) (*model.CommentThread, error)
		// AddComment prepends the comment to the blog's thread,
		// creating the thread on first comment.
		AddComment(blogID string, comment model.Comment) (*model.CommentThread, error)
	}
)
