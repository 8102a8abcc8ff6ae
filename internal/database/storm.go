package database

import (
	"regexp"
	"sync"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/technest/technest/internal/model"
)

type strm struct {
	db *storm.DB

	// Wishlist and comment thread updates are two round trips (read current
	// record, write new list) without transactional isolation, so concurrent
	// updates for the same record are serialized behind a per-key lock.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	for _, m := range []any{
		&model.Blog{},
		&model.Wishlist{},
		&model.EditorsPick{},
		&model.CommentThread{},
		&model.CategorySet{},
	} {
		if err := db.Init(m); err != nil {
			return errors.Wrap(err, "could not init index")
		}
	}
	return nil
}

// StormReIndex reindex Storm database.
func StormReIndex(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	for _, m := range []any{
		&model.Blog{},
		&model.Wishlist{},
		&model.EditorsPick{},
		&model.CommentThread{},
		&model.CategorySet{},
	} {
		if err := db.ReIndex(m); err != nil {
			return errors.Wrap(err, "could not reindex")
		}
	}
	return nil
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db:    db,
		locks: map[string]*sync.Mutex{},
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
	}
	if m.GetCreatedAt() == nil {
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// IsAlreadyExists returns true if err is an already exists error.
func (c *strm) IsAlreadyExists(err error) bool {
	return errors.Cause(err) == storm.ErrAlreadyExists
}

// FindBlog returns the blog for the given id.
func (c *strm) FindBlog(id string) (*model.Blog, error) {
	var blog model.Blog
	if err := c.db.One("ID", model.NormalizeID(id), &blog); err != nil {
		return nil, errors.Wrap(err, "find blog by id")
	}
	return &blog, nil
}

// FindBlogsByQuery returns all the blogs matching the given query.
func (c *strm) FindBlogsByQuery(query BlogQuery) ([]*model.Blog, error) {
	matchers := []q.Matcher{}

	if query.Title != "" {
		matchers = append(matchers, q.Re("Title", "(?i)"+regexp.QuoteMeta(query.Title)))
	}
	if len(query.Categories) > 0 {
		matchers = append(matchers, q.In("Category", query.Categories))
	}

	stmt := c.db.Select(matchers...).OrderBy("CreatedAt")
	if !query.Ascending {
		stmt = stmt.Reverse()
	}
	if query.Limit > 0 {
		stmt = stmt.Limit(query.Limit)
	}

	blogs := make([]*model.Blog, 0)
	err := stmt.Find(&blogs)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find blogs")
	}
	return blogs, nil
}

// FindBlogsByIDs returns the blogs matching the given ids.
func (c *strm) FindBlogsByIDs(ids []string) ([]*model.Blog, error) {
	if len(ids) == 0 {
		return []*model.Blog{}, nil
	}

	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		normalized = append(normalized, model.NormalizeID(id))
	}

	blogs := make([]*model.Blog, 0)
	err := c.db.Select(q.In("ID", normalized)).OrderBy("CreatedAt").Reverse().Find(&blogs)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find blogs by ids")
	}
	return blogs, nil
}

// FindWishlist returns the wishlist of the given user.
func (c *strm) FindWishlist(userID string) (*model.Wishlist, error) {
	var wishlist model.Wishlist
	if err := c.db.One("UserID", userID, &wishlist); err != nil {
		return nil, errors.Wrap(err, "find wishlist by user id")
	}
	return &wishlist, nil
}

// AddWishlistBlog saves blogID into the user's wishlist.
func (c *strm) AddWishlistBlog(userID, blogID string) (*model.Wishlist, error) {
	lock := c.recordLock(userID)
	lock.Lock()
	defer lock.Unlock()

	wishlist, err := c.FindWishlist(userID)
	if err != nil {
		if !c.IsNotFound(err) {
			return nil, err
		}
		wishlist = &model.Wishlist{
			UserID:  userID,
			BlogIDs: []string{blogID},
		}
		return wishlist, c.Save(wishlist)
	}

	if wishlist.Contains(blogID) {
		return wishlist, nil
	}

	wishlist.BlogIDs = append(wishlist.BlogIDs, blogID)
	return wishlist, c.Save(wishlist)
}

// RemoveWishlistBlog removes blogID from the user's wishlist.
func (c *strm) RemoveWishlistBlog(userID, blogID string) (*model.Wishlist, error) {
	lock := c.recordLock(userID)
	lock.Lock()
	defer lock.Unlock()

	wishlist, err := c.FindWishlist(userID)
	if err != nil {
		if c.IsNotFound(err) {
			// Nothing to remove.
			return &model.Wishlist{UserID: userID, BlogIDs: []string{}}, nil
		}
		return nil, err
	}

	if !wishlist.Contains(blogID) {
		return wishlist, nil
	}

	kept := make([]string, 0, len(wishlist.BlogIDs))
	for _, id := range wishlist.BlogIDs {
		if !model.EqualID(id, blogID) {
			kept = append(kept, id)
		}
	}
	wishlist.BlogIDs = kept

	return wishlist, c.Save(wishlist)
}

// FindEditorsPick returns the editorial selection.
func (c *strm) FindEditorsPick() (*model.EditorsPick, error) {
	var pick model.EditorsPick
	if err := c.db.One("ID", model.EditorsPickID, &pick); err != nil {
		return nil, errors.Wrap(err, "find editors pick")
	}
	return &pick, nil
}

// FindCategorySet returns the enumerated category names.
func (c *strm) FindCategorySet() (*model.CategorySet, error) {
	var categories model.CategorySet
	if err := c.db.One("ID", model.CategorySetID, &categories); err != nil {
		return nil, errors.Wrap(err, "find category set")
	}
	return &categories, nil
}

// FindCommentThread returns the comment thread of the given blog.
func (c *strm) FindCommentThread(blogID string) (*model.CommentThread, error) {
	var thread model.CommentThread
	if err := c.db.One("BlogID", model.NormalizeID(blogID), &thread); err != nil {
		return nil, errors.Wrap(err, "find comment thread by blog id")
	}
	return &thread, nil
}

// AddComment prepends the comment to the blog's thread.
func (c *strm) AddComment(blogID string, comment model.Comment) (*model.CommentThread, error) {
	blogID = model.NormalizeID(blogID)

	lock := c.recordLock("thread:" + blogID)
	lock.Lock()
	defer lock.Unlock()

	thread, err := c.FindCommentThread(blogID)
	if err != nil {
		if !c.IsNotFound(err) {
			return nil, err
		}
		thread = &model.CommentThread{BlogID: blogID}
	}

	thread.Prepend(comment)
	return thread, c.Save(thread)
}

func (c *strm) recordLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[key] = lock
	}
	return lock
}
