package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/technest/technest/internal/database"
)

// category contains the category taxonomy handlers.
type category struct {
	db database.Client
}

// Names returns the enumerated list of valid category names.
func (h *category) Names(c echo.Context) error {
	categories, err := h.db.FindCategorySet()
	if err != nil {
		if h.db.IsNotFound(err) {
			return c.JSON(http.StatusOK, []string{})
		}
		return errors.Wrap(err, "could not get access to database")
	}
	return c.JSON(http.StatusOK, categories.Names)
}
