package server_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/appleboy/gofight/v2"
	"github.com/stretchr/testify/assert"
	"github.com/technest/technest/internal/database"
	"github.com/technest/technest/internal/model"
	"github.com/valyala/fastjson"
)

func TestRequestRecentBlogsEmpty(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/recent-blogs").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `[]`, r.Body.String())
	})
}

func TestRequestRecentBlogsLimit(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	now := time.Now().UTC()
	titles := []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6"}
	for i, title := range titles {
		createBlog(ctrl, title, "go", now.Add(-time.Duration(i)*time.Hour))
	}

	r.GET("/recent-blogs").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)

		blogs := v.GetArray()
		assert.Len(t, blogs, 6)
		for i, blog := range blogs {
			// Most recent first, the oldest blog p6 is dropped.
			assert.Equal(t, titles[i], string(blog.GetStringBytes("title")))
			assert.False(t, blog.GetBool("wishlist"))
		}
	})
}

func TestRequestAllBlogsAnnotated(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	now := time.Now().UTC()
	blogs := make([]*model.Blog, 0, 5)
	for i, title := range []string{"b1", "b2", "b3", "b4", "b5"} {
		blogs = append(blogs, createBlog(ctrl, title, "go", now.Add(-time.Duration(i)*time.Hour)))
	}

	wishlisted := map[string]bool{}
	for _, i := range []int{1, 4} { // b2 and b5
		if _, err := ctrl.Database.AddWishlistBlog("u1", blogs[i].ID); err != nil {
			panic(err)
		}
		wishlisted[blogs[i].ID] = true
	}

	cookie := sessionCookie(ctrl, george())
	r.GET("/allblogs").SetCookie(cookie).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)
		assert.False(t, v.GetBool("searchedBlogs"))

		list := v.GetArray("allBlogs")
		assert.Len(t, list, 5)
		for _, blog := range list {
			id := string(blog.GetStringBytes("_id"))
			assert.Equal(t, wishlisted[id], blog.GetBool("wishlist"))
		}
	})
}

func TestRequestAllBlogsAnonymous(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	blog := createBlog(ctrl, "b1", "go", time.Now().UTC())
	if _, err := ctrl.Database.AddWishlistBlog("u1", blog.ID); err != nil {
		panic(err)
	}

	// No session cookie: no wishlist lookup, every record is stamped false.
	r.GET("/allblogs").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)

		list := v.GetArray("allBlogs")
		assert.Len(t, list, 1)
		assert.False(t, list[0].GetBool("wishlist"))
	})
}

func TestRequestAllBlogsGarbageCookieDegradesToAnonymous(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	createBlog(ctrl, "b1", "go", time.Now().UTC())

	cookie := gofight.H{ctrl.CookieName: "not-a-token"}
	r.GET("/allblogs").SetCookie(cookie).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)
		assert.Len(t, v.GetArray("allBlogs"), 1)
	})
}

func TestRequestAllBlogsSearch(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	now := time.Now().UTC()
	createBlog(ctrl, "Foo in production", "go", now.Add(-3*time.Hour))
	createBlog(ctrl, "Bar in production", "go", now.Add(-2*time.Hour))
	createBlog(ctrl, "More FOO content", "tech", now.Add(-time.Hour))
	createBlog(ctrl, "Foo again", "food", now)

	r.GET("/allblogs?searchTitle=foo&categories=tech,go").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)
		assert.True(t, v.GetBool("searchedBlogs"))

		list := v.GetArray("allBlogs")
		assert.Len(t, list, 2)
		assert.Equal(t, "More FOO content", string(list[0].GetStringBytes("title")))
		assert.Equal(t, "Foo in production", string(list[1].GetStringBytes("title")))
	})
}

func TestRequestAllBlogsSortAscending(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	now := time.Now().UTC()
	createBlog(ctrl, "older", "go", now.Add(-2*time.Hour))
	createBlog(ctrl, "newer", "go", now.Add(-time.Hour))

	r.GET("/allblogs?sort_Date=ascending").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)

		list := v.GetArray("allBlogs")
		assert.Len(t, list, 2)
		assert.Equal(t, "older", string(list[0].GetStringBytes("title")))
		assert.Equal(t, "newer", string(list[1].GetStringBytes("title")))
	})
}

func TestRequestEditorsPick(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	// No curation record yet.
	r.GET("/editors-pick").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `[]`, r.Body.String())
	})

	now := time.Now().UTC()
	picked := createBlog(ctrl, "picked", "go", now.Add(-time.Hour))
	createBlog(ctrl, "not picked", "go", now)

	pick := &model.EditorsPick{BlogIDs: []string{picked.ID, "deleted-blog-id"}}
	pick.ID = model.EditorsPickID
	if err := ctrl.Database.Save(pick); err != nil {
		panic(err)
	}

	// Picks referencing deleted blogs are skipped without error.
	r.GET("/editors-pick").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)

		list := v.GetArray()
		assert.Len(t, list, 1)
		assert.Equal(t, "picked", string(list[0].GetStringBytes("title")))
	})
}

func TestRequestBlogDetails(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	r.GET("/blogDetails/nonexistent-id").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.JSONEq(t, `{"error":{"tag":"not-found","message":"no blog for the given id"}}`, r.Body.String())
	})

	blog := createBlog(ctrl, "b1", "go", time.Now().UTC())
	if _, err := ctrl.Database.AddWishlistBlog("u1", blog.ID); err != nil {
		panic(err)
	}

	// Anonymous: explicit false.
	r.GET("/blogDetails/"+blog.ID).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)
		assert.Equal(t, blog.ID, string(v.GetStringBytes("_id")))
		assert.False(t, v.GetBool("wishlist"))
	})

	// Authenticated with the blog wishlisted.
	cookie := sessionCookie(ctrl, george())
	r.GET("/blogDetails/"+blog.ID).SetCookie(cookie).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)
		assert.True(t, v.GetBool("wishlist"))
	})
}

func TestRequestAddBlogUnauthorized(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	params := gofight.D{"title": "b1", "category": "go"}
	r.POST("/addBlog").SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.JSONEq(t, `{"error":{"tag":"unauthorized","message":"unauthorized"}}`, r.Body.String())
	})

	// Store untouched.
	blogs, err := ctrl.Database.FindBlogsByQuery(database.BlogQuery{})
	assert.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestRequestAddBlog(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	cookie := sessionCookie(ctrl, george())

	params := gofight.D{"title": "b1"}
	r.POST("/addBlog").SetCookie(cookie).SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.JSONEq(t, `{"error":{"tag":"validation","field":"category","message":"no category provided"}}`, r.Body.String())
	})

	params = gofight.D{
		"title":            "b1",
		"category":         "go",
		"bannerUrl":        "https://cdn.nowhere.lan/b1.png",
		"shortDescription": "short",
		"longDescription":  "long",
	}
	r.POST("/addBlog").SetCookie(cookie).SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)

		id := string(v.GetStringBytes("_id"))
		assert.NotEmpty(t, id)

		blog, err := ctrl.Database.FindBlog(id)
		assert.NoError(t, err)
		assert.Equal(t, "b1", blog.Title)
		assert.Equal(t, "go", blog.Category)
	})
}

func TestRequestUpdateBlog(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	cookie := sessionCookie(ctrl, george())
	params := gofight.D{
		"title":            "updated",
		"category":         "tech",
		"bannerUrl":        "https://cdn.nowhere.lan/updated.png",
		"shortDescription": "new short",
		"longDescription":  "new long",
	}

	r.PUT("/updateBlog/nonexistent-id").SetCookie(cookie).SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
	})

	blog := createBlog(ctrl, "b1", "go", time.Now().UTC())
	r.PUT("/updateBlog/"+blog.ID).SetCookie(cookie).SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		updated, err := ctrl.Database.FindBlog(blog.ID)
		assert.NoError(t, err)
		assert.Equal(t, "updated", updated.Title)
		assert.Equal(t, "tech", updated.Category)
		assert.Equal(t, "new short", updated.ShortDescription)
		// Identity and creation time survive the replace.
		assert.Equal(t, blog.ID, updated.ID)
		assert.Equal(t, blog.CreatedAt.Unix(), updated.CreatedAt.Unix())
	})
}
