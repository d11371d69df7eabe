package router

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/lazybook/internal/api/handler"
	"github.com/d60-Lab/lazybook/internal/api/middleware"
	"github.com/d60-Lab/lazybook/internal/config"
	"github.com/d60-Lab/lazybook/pkg/response"
	"github.com/d60-Lab/lazybook/pkg/token"
)

// New assembles the gin engine: shared middleware, the public auth routes,
// the authenticated API group, the realtime chat endpoint and the static
// uploads mount.
func New(cfg *config.Config, h *handler.Handler, tokens *token.Manager) *gin.Engine {
	if !cfg.Server.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("lazybook"))
	if cfg.Observability.SentryDSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)

	auth := r.Group("/api/auth")
	auth.Use(middleware.RateLimit(cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	api := r.Group("/api")
	api.Use(middleware.Auth(tokens))
	{
		api.GET("/account", h.GetAccount)
		api.PUT("/account", h.UpdateAccount)
		api.POST("/account/picture", h.UploadPicture)

		api.GET("/feeds/home", h.HomeFeed)
		api.GET("/feeds/explore", h.ExploreFeed)

		api.POST("/posts", h.CreatePost)
		api.GET("/posts/:id", h.GetPost)

		api.GET("/profiles/search", h.SearchProfiles)
		api.GET("/profiles/:username", h.GetProfile)
		api.POST("/profiles/:username/follow", h.Follow)
		api.DELETE("/profiles/:username/follow", h.Unfollow)
		api.GET("/profiles/:username/followers", h.ListFollowers)
		api.GET("/profiles/:username/following", h.ListFollowing)
		api.GET("/profiles/:username/posts", h.ListUserPosts)

		api.GET("/messages/:username", h.GetConversation)
	}

	// The websocket endpoint authenticates before the upgrade, so an invalid
	// credential is refused while the connection is still plain HTTP.
	r.GET("/chat", middleware.Auth(tokens), h.Chat)

	return r
}
