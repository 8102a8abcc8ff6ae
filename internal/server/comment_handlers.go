package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/technest/technest/internal/apierror"
	"github.com/technest/technest/internal/database"
	"github.com/technest/technest/internal/model"
	"github.com/technest/technest/internal/server/serializer"
)

// comment contains all comment thread handlers.
type comment struct {
	db database.Client
}

type commentParams struct {
	BlogID       string `json:"blogId"`
	AuthorName   string `json:"userName"`
	AuthorEmail  string `json:"userEmail"`
	AuthorAvatar string `json:"userAvatar"`
	Body         string `json:"comment"`
}

///// List
////
//

// List returns the comment thread of a blog, most recent first.
func (h *comment) List(c echo.Context) error {
	id := c.Param("blog_id")
	if id == "" {
		return apierror.Validation("blog_id", "no blog id provided")
	}

	thread, err := h.db.FindCommentThread(id)
	if err != nil {
		if h.db.IsNotFound(err) {
			return c.JSON(http.StatusOK, serializer.CommentThread(id, nil))
		}
		return errors.Wrap(err, "could not get access to database")
	}
	return c.JSON(http.StatusOK, serializer.CommentThread(id, thread))
}

///// Add
////
//

// Add prepends a comment to a blog's thread, creating it on first comment.
func (h *comment) Add(c echo.Context) error {
	var params commentParams
	if err := c.Bind(&params); err != nil {
		return apierror.Validation("body", "could not get comment fields")
	}

	if params.BlogID == "" {
		return apierror.Validation("blogId", "no blog id provided")
	}
	if params.Body == "" {
		return apierror.Validation("comment", "no comment provided")
	}

	// A comment signed with somebody else's address is rejected.
	if params.AuthorEmail != "" && !currentViewer(c).Matches("", params.AuthorEmail) {
		return apierror.Unauthorized()
	}

	thread, err := h.db.AddComment(params.BlogID, model.Comment{
		AuthorName:   params.AuthorName,
		AuthorEmail:  params.AuthorEmail,
		AuthorAvatar: params.AuthorAvatar,
		Body:         params.Body,
		PostedAt:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serializer.CommentThread(params.BlogID, thread))
}
