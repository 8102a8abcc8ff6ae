package service

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/technest/technest/internal/apierror"
	"github.com/technest/technest/internal/database"
	"github.com/technest/technest/internal/model"
	"github.com/technest/technest/internal/server/session"
)

type (
	// A BlogService composes listing queries with the viewer's wishlist state.
	BlogService interface {
		// List returns the blogs matching params, annotated for the viewer.
		List(params ListParams, viewer session.Viewer) ([]*model.Blog, error)
		// Recent returns the most recent blogs, annotated for the viewer.
		Recent(viewer session.Viewer) ([]*model.Blog, error)
		// EditorsPick resolves the editorial selection, annotated for the viewer.
		EditorsPick(viewer session.Viewer) ([]*model.Blog, error)
		// Detail returns one blog, annotated for the viewer.
		Detail(id string, viewer session.Viewer) (*model.Blog, error)
	}

	blogService struct {
		db database.Client
	}
)

// NewBlog returns a new BlogService.
func NewBlog(db database.Client) BlogService {
	return &blogService{db: db}
}

func (s *blogService) List(params ListParams, viewer session.Viewer) ([]*model.Blog, error) {
	blogs, err := s.db.FindBlogsByQuery(params.Query())
	if err != nil {
		return nil, err
	}
	return s.annotate(blogs, viewer)
}

func (s *blogService) Recent(viewer session.Viewer) ([]*model.Blog, error) {
	blogs, err := s.db.FindBlogsByQuery(database.BlogQuery{Limit: RecentLimit})
	if err != nil {
		return nil, err
	}
	return s.annotate(blogs, viewer)
}

func (s *blogService) EditorsPick(viewer session.Viewer) ([]*model.Blog, error) {
	pick, err := s.db.FindEditorsPick()
	if err != nil {
		if !s.db.IsNotFound(err) {
			return nil, err
		}
		// No curation record yet.
		logrus.Warn("editors pick record is missing")
		return []*model.Blog{}, nil
	}

	// Picks referencing deleted blogs are skipped by the id-set lookup.
	blogs, err := s.db.FindBlogsByIDs(pick.BlogIDs)
	if err != nil {
		return nil, err
	}
	return s.annotate(blogs, viewer)
}

func (s *blogService) Detail(id string, viewer session.Viewer) (*model.Blog, error) {
	blog, err := s.db.FindBlog(id)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, apierror.NotFound("no blog for the given id")
		}
		return nil, errors.Wrap(err, "could not get access to database")
	}

	ids, err := s.viewerWishlist(viewer)
	if err != nil {
		return nil, err
	}
	return AnnotateBlog(blog, ids), nil
}

func (s *blogService) annotate(blogs []*model.Blog, viewer session.Viewer) ([]*model.Blog, error) {
	ids, err := s.viewerWishlist(viewer)
	if err != nil {
		return nil, err
	}
	return AnnotateBlogs(blogs, ids), nil
}

// viewerWishlist returns the identifier set of the viewer's wishlist.
// Anonymous viewers never trigger a lookup. An authenticated viewer without
// a record yields a nil set, so every record is still stamped false.
func (s *blogService) viewerWishlist(viewer session.Viewer) (IDSet, error) {
	if !viewer.Authenticated {
		return nil, nil
	}

	wishlist, err := s.db.FindWishlist(viewer.Identity.UserID)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not get access to database")
	}
	return WishlistIDs(wishlist), nil
}
