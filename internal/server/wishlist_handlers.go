package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/technest/technest/internal/apierror"
	"github.com/technest/technest/internal/server/service"
)

// wishlist contains all wishlist handlers. Every route is behind the
// required session gate.
type wishlist struct {
	wishlists service.WishlistService
}

type wishlistParams struct {
	UserID string `json:"userId"`
	BlogID string `json:"blogId"`
}

///// Listing
////
//

// Listing resolves the viewer's wishlist to blog records.
func (h *wishlist) Listing(c echo.Context) error {
	viewer := currentViewer(c)

	// The legacy front end passes the user id along. When present it must
	// belong to the session's identity.
	if userID := c.QueryParam("userid"); userID != "" && !viewer.Matches(userID, "") {
		return apierror.Unauthorized()
	}

	blogs, err := h.wishlists.Listing(viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

///// Add
////
//

// Add saves a blog into the viewer's wishlist.
func (h *wishlist) Add(c echo.Context) error {
	params, err := h.params(c)
	if err != nil {
		return err
	}

	render, err := h.wishlists.Add(currentViewer(c).Identity.UserID, params.BlogID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, render)
}

///// Remove
////
//

// Remove drops a blog from the viewer's wishlist.
func (h *wishlist) Remove(c echo.Context) error {
	params, err := h.params(c)
	if err != nil {
		return err
	}

	render, err := h.wishlists.Remove(currentViewer(c).Identity.UserID, params.BlogID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, render)
}

func (h *wishlist) params(c echo.Context) (wishlistParams, error) {
	var params wishlistParams
	if err := c.Bind(&params); err != nil {
		return params, apierror.Validation("body", "could not get wishlist fields")
	}

	if params.BlogID == "" {
		return params, apierror.Validation("blogId", "no blog id provided")
	}
	if params.UserID == "" {
		return params, apierror.Validation("userId", "no user id provided")
	}

	// The payload claims an identity. It must be the session's one.
	if !currentViewer(c).Matches(params.UserID, "") {
		return params, apierror.Unauthorized()
	}
	return params, nil
}
