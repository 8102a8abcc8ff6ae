package model

import "time"

// A Comment is a single entry of a blog's comment thread.
type Comment struct {
	AuthorName   string    `json:"userName"   msgpack:"author_name"`
	AuthorEmail  string    `json:"userEmail"  msgpack:"author_email"`
	AuthorAvatar string    `json:"userAvatar" msgpack:"author_avatar"`
	Body         string    `json:"comment"    msgpack:"body"`
	PostedAt     time.Time `json:"postedAt"   msgpack:"posted_at"`
}

// A CommentThread represents a database record holding the comments of one
// blog, most recent first. It is created lazily on the first comment.
type CommentThread struct {
	Base `msgpack:",inline" storm:"inline"`

	BlogID   string    `json:"blogId"   msgpack:"blog_id" storm:"unique"`
	Comments []Comment `json:"comments" msgpack:"comments"`
}

// Prepend inserts a comment at the head of the thread.
func (t *CommentThread) Prepend(c Comment) {
	t.Comments = append([]Comment{c}, t.Comments...)
}
