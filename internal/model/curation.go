package model

// EditorsPickID is the identifier of the singleton curation record.
const EditorsPickID = "editors-pick"

// CategorySetID is the identifier of the singleton category record.
const CategorySetID = "category-names"

// An EditorsPick represents the singleton database record holding the
// ordered editorial selection of blog identifiers.
// Entries may reference blogs that have been deleted since curation.
type EditorsPick struct {
	Base `msgpack:",inline" storm:"inline"`

	BlogIDs []string `json:"editorsPick_postId" msgpack:"blog_ids"`
}

// A CategorySet represents the singleton database record holding the
// enumerated list of valid category names.
type CategorySet struct {
	Base `msgpack:",inline" storm:"inline"`

	Names []string `json:"categoryNames" msgpack:"names"`
}
