package apierror_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/technest/technest/internal/apierror"
)

func TestError(t *testing.T) {
	err := apierror.New("some message")
	assert.Equal(t, "some message", err.Error())

	assert.Equal(t, http.StatusNotFound, apierror.StatusCode(apierror.NotFound("no blog for the given id")))
	assert.Equal(t, http.StatusInternalServerError, apierror.StatusCode(assert.AnError))
}

func TestUnauthorized(t *testing.T) {
	err := apierror.Unauthorized()

	assert.Equal(t, http.StatusUnauthorized, apierror.StatusCode(err))
	assert.Equal(t, "unauthorized", err.Error())
}

func TestValidation(t *testing.T) {
	err := apierror.Validation("blogId", "no blog id provided")

	assert.Equal(t, http.StatusBadRequest, apierror.StatusCode(err))
	assert.Equal(t, "no blog id provided", err.Error())
}
