package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/technest/technest/internal/database"
	"github.com/technest/technest/internal/server/middlewares"
	"github.com/technest/technest/internal/server/service"
	"github.com/technest/technest/internal/server/session"
)

// A Controller is an Inversion Of Control pattern used to init the server package.
type Controller struct {
	Version  string
	Database database.Client
	// JWT params
	SigningKey []byte
	// Cookie params
	CookieName  string
	Production  bool
	CORSOrigins []string
}

// EchoEngine instantiates the web server.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     ctrl.CORSOrigins,
		AllowCredentials: true,
	}))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	////////////
	// Router //
	////////////

	sessions := session.NewManager(ctrl.SigningKey, ctrl.CookieName, ctrl.Production)

	router := engine.Group("")
	browse := router.Group("")
	browse.Use(middlewares.OptionalSession(sessions))
	restricted := router.Group("")
	restricted.Use(middlewares.RequireSession(sessions))

	//
	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// auth handlers
	//
	auth := &auth{
		sessions: sessions,
	}
	router.POST("/authenticate", auth.Authenticate)
	router.POST("/logout", auth.Logout)

	//
	// blog handlers
	//
	blog := &blog{
		db:    ctrl.Database,
		blogs: service.NewBlog(ctrl.Database),
	}
	browse.GET("/allblogs", blog.All)
	browse.GET("/recent-blogs", blog.Recent)
	browse.GET("/editors-pick", blog.EditorsPick)
	browse.GET("/blogDetails/:blog_id", blog.Details)
	restricted.POST("/addBlog", blog.Add)
	restricted.PUT("/updateBlog/:blog_id", blog.Update)

	//
	// wishlist handlers
	//
	wishlist := &wishlist{
		wishlists: service.NewWishlist(ctrl.Database),
	}
	restricted.GET("/wishlist", wishlist.Listing)
	restricted.PATCH("/addWishlist", wishlist.Add)
	restricted.PATCH("/removeWishlist", wishlist.Remove)

	//
	// comment handlers
	//
	comment := &comment{
		db: ctrl.Database,
	}
	router.GET("/comment-list/:blog_id", comment.List)
	restricted.POST("/comment", comment.Add)

	//
	// category handlers
	//
	category := &category{
		db: ctrl.Database,
	}
	router.GET("/category-names", category.Names)

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}

func currentViewer(c echo.Context) session.Viewer {
	viewer, ok := c.Get(middlewares.CurrentViewerContextKey).(session.Viewer)
	if ok {
		return viewer
	}
	return session.Anonymous()
}
