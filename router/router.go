// api/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/shop/api/controller"
	"github.com/dev-mohitbeniwal/shop/api/middleware"
)

type Options struct {
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitDuration time.Duration
}

func SetupRouter(
	controllers *controller.Controllers,
	resolver *middleware.TokenResolver,
	opts Options,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	if opts.RateLimitEnabled {
		router.Use(middleware.RateLimiter(opts.RateLimitRequests, opts.RateLimitDuration))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.ActorAuth(resolver))

	controllers.Client.RegisterRoutes(api)
	controllers.Audit.RegisterRoutes(api)

	return router
}
