package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/stpnv0/Activities/web"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListActivities(c *ginext.Context)
	Signup(c *ginext.Context)
	Unregister(c *ginext.Context)
}

type PageHandler interface {
	Index(c *ginext.Context)
	Signup(c *ginext.Context)
	Unregister(c *ginext.Context)
}

func InitRouter(mode string, h Handler, p PageHandler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	// activity names may contain escaped slashes
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(mw...)
	router.Use(cors.Default())

	api := router.Group("/activities")
	{
		api.GET("", h.ListActivities)
		api.POST("/:name/signup", h.Signup)
		api.POST("/:name/unregister", h.Unregister)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", http.FS(web.Static()))

	router.GET("/", p.Index)
	router.POST("/signup", p.Signup)
	router.POST("/unregister", p.Unregister)

	return router
}

