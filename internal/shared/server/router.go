package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-feedback/internal/services/health"
	"resume-feedback/internal/shared/config"
	"resume-feedback/internal/shared/metrics"
	"resume-feedback/internal/shared/server/middleware"
	"resume-feedback/internal/shared/server/respond"
	"resume-feedback/internal/web"
)

// RouterDeps are the handlers mounted by NewRouter.
type RouterDeps struct {
	Config      config.Config
	Health      *health.Service
	PageHandler *web.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Session(middleware.SessionOptions{
			CookieName: deps.Config.SessionCookie,
			Secure:     deps.Config.SessionSecure,
		}),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status, ok := deps.Health.Status(c.Request.Context())
		if !ok {
			respond.JSON(c, http.StatusServiceUnavailable, status)
			return
		}
		respond.JSON(c, http.StatusOK, status)
	})

	if deps.PageHandler != nil {
		deps.PageHandler.RegisterRoutes(r)
		deps.PageHandler.RegisterAPI(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
