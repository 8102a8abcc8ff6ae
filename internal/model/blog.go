package model

// A Blog represents a published post and its rendered API response.
type Blog struct {
	Base `msgpack:",inline" storm:"inline"`

	Title            string `json:"title"            msgpack:"title"              storm:"index"`
	Category         string `json:"category"         msgpack:"category"           storm:"index"`
	BannerURL        string `json:"bannerUrl"        msgpack:"banner_url"`
	ShortDescription string `json:"shortDescription" msgpack:"short_description"`
	LongDescription  string `json:"longDescription"  msgpack:"long_description"`

	// Wishlist is derived per request for the current viewer.
	// It is never persisted.
	Wishlist bool `json:"wishlist" msgpack:"-"`
}

// EditableFields replaces the five fields a blog update is allowed to touch.
func (b *Blog) EditableFields(src *Blog) {
	b.Title = src.Title
	b.Category = src.Category
	b.BannerURL = src.BannerURL
	b.ShortDescription = src.ShortDescription
	b.LongDescription = src.LongDescription
}
