package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/technest/technest/internal/apierror"
	"github.com/technest/technest/internal/database"
	"github.com/technest/technest/internal/model"
	"github.com/technest/technest/internal/server/serializer"
	"github.com/technest/technest/internal/server/service"
)

// blog contains all blog listing and mutation handlers.
type blog struct {
	db    database.Client
	blogs service.BlogService
}

type blogParams struct {
	Title            string `json:"title"`
	Category         string `json:"category"`
	BannerURL        string `json:"bannerUrl"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
}

///// All
////
//

// All lists blogs in browse or search mode, annotated for the viewer.
func (h *blog) All(c echo.Context) error {
	params := service.ListParams{
		SearchTitle: c.QueryParam("searchTitle"),
		Categories:  c.QueryParam("categories"),
		Sort:        c.QueryParam("sort_Date"),
	}

	blogs, err := h.blogs.List(params, currentViewer(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.BlogListing(params.Searched(), blogs))
}

///// Recent
////
//

// Recent lists the six most recent blogs, annotated for the viewer.
func (h *blog) Recent(c echo.Context) error {
	blogs, err := h.blogs.Recent(currentViewer(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

///// EditorsPick
////
//

// EditorsPick lists the curated selection, annotated for the viewer.
func (h *blog) EditorsPick(c echo.Context) error {
	blogs, err := h.blogs.EditorsPick(currentViewer(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

///// Details
////
//

// Details returns a single blog, annotated for the viewer.
func (h *blog) Details(c echo.Context) error {
	id := c.Param("blog_id")
	if id == "" {
		return apierror.Validation("blog_id", "no blog id provided")
	}

	blog, err := h.blogs.Detail(id, currentViewer(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

///// Add
////
//

// Add inserts a new blog.
func (h *blog) Add(c echo.Context) error {
	var params blogParams
	if err := c.Bind(&params); err != nil {
		return apierror.Validation("body", "could not get blog fields")
	}

	if params.Title == "" {
		return apierror.Validation("title", "no title provided")
	}
	if params.Category == "" {
		return apierror.Validation("category", "no category provided")
	}

	blog := &model.Blog{
		Title:            params.Title,
		Category:         params.Category,
		BannerURL:        params.BannerURL,
		ShortDescription: params.ShortDescription,
		LongDescription:  params.LongDescription,
	}

	if err := h.db.Save(blog); err != nil {
		return errors.Wrap(err, "could not save blog")
	}
	return c.JSON(http.StatusOK, blog)
}

///// Update
////
//

// Update replaces the five editable fields of an existing blog.
func (h *blog) Update(c echo.Context) error {
	id := c.Param("blog_id")
	if id == "" {
		return apierror.Validation("blog_id", "no blog id provided")
	}

	var params blogParams
	if err := c.Bind(&params); err != nil {
		return apierror.Validation("body", "could not get blog fields")
	}

	blog, err := h.db.FindBlog(id)
	if err != nil {
		if h.db.IsNotFound(err) {
			return apierror.NotFound("no blog for the given id")
		}
		return errors.Wrap(err, "could not get access to database")
	}

	blog.EditableFields(&model.Blog{
		Title:            params.Title,
		Category:         params.Category,
		BannerURL:        params.BannerURL,
		ShortDescription: params.ShortDescription,
		LongDescription:  params.LongDescription,
	})

	if err := h.db.Save(blog); err != nil {
		return errors.Wrap(err, "could not update blog")
	}
	return c.JSON(http.StatusOK, blog)
}
