package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/technest/technest/internal/model"
)

func TestEqualID(t *testing.T) {
	assert.True(t, model.EqualID("b2", "b2"))
	assert.True(t, model.EqualID(" b2 ", "b2"))
	assert.True(t, model.EqualID("ABC42", "abc42"))
	assert.False(t, model.EqualID("b2", "b5"))
}

func TestWishlistContains(t *testing.T) {
	w := &model.Wishlist{
		UserID:  "u1",
		BlogIDs: []string{"b2", "B5 "},
	}

	assert.True(t, w.Contains("b2"))
	assert.True(t, w.Contains("b5"))
	assert.False(t, w.Contains("b1"))

	empty := &model.Wishlist{UserID: "u2"}
	assert.False(t, empty.Contains("b2"))
}
