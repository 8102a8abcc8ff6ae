package serializer

import "github.com/technest/technest/internal/model"

// BlogListing wraps the all-blogs response with its resolved mode:
// searchedBlogs is true when the listing was filtered rather than browsed.
func BlogListing(searched bool, blogs []*model.Blog) map[string]interface{} {
	return map[string]interface{}{
		"searchedBlogs": searched,
		"allBlogs":      blogs,
	}
}

// CommentThread renders a thread, substituting an empty one when the blog
// has no comments yet.
func CommentThread(blogID string, thread *model.CommentThread) map[string]interface{} {
	if thread == nil {
		return map[string]interface{}{
			"blogId":   blogID,
			"comments": []model.Comment{},
		}
	}
	return map[string]interface{}{
		"blogId":   thread.BlogID,
		"comments": thread.Comments,
	}
}
