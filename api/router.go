package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// api routes
	RenderURL          = "/render"
	DiagnosticsURL     = "/diagnostics"
	WikiPageURL        = "/wiki/*page"
	WikiBrokenPagesURL = "/wiki-admin/broken"
	ForumPostsURL      = "/forum/posts"
	ForumPostURL       = "/forum/posts/:post_id"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// the viewer is optional everywhere, it only changes the visible conditionals
	public := router.Group("/").Use(viewerMiddleware(service.tokenMaker))
	public.POST(RenderURL, service.render)
	public.POST(DiagnosticsURL, service.diagnostics)
	public.GET(WikiPageURL, service.getWikiPage)
	public.GET(ForumPostURL, postIDMiddleware(), service.getForumPost)

	// protected routes
	authGroup := router.Group("/").Use(authMiddleware(service.tokenMaker))
	authGroup.POST(WikiPageURL, service.createWikiRevision)
	authGroup.GET(WikiBrokenPagesURL, service.listBrokenPages)
	authGroup.POST(ForumPostsURL, service.createForumPost)

	server.Handler = router
	service.router = router
}
