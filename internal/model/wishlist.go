package model

// A Wishlist represents a database record holding the blogs saved by a user.
// It is created lazily on the first add.
type Wishlist struct {
	Base `msgpack:",inline" storm:"inline"`

	UserID  string   `json:"userId"    msgpack:"user_id" storm:"unique"`
	BlogIDs []string `json:"wishLists" msgpack:"blog_ids"`
}

// Contains reports whether blogID is part of the wishlist.
// Entries are raw string identifiers so the comparison must
// go through EqualID rather than rely on the slice's element type.
func (w *Wishlist) Contains(blogID string) bool {
	for _, id := range w.BlogIDs {
		if EqualID(id, blogID) {
			return true
		}
	}
	return false
}
