package api

import (
	"net/http"

	"github.com/beka-birhanu/vinom-treasure/api/i"
	"github.com/gin-gonic/gin"
)

const apiVersion = "/v1"

// Router owns the gin engine that serves every controller under
// <BaseURL>/v1.
type Router struct {
	addr                    string
	baseURL                 string
	controllers             []i.Controller
	authorizationMiddleware gin.HandlerFunc
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr                    string // Address to listen on
	BaseURL                 string // Prefix in front of the version segment, e.g. /api
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:                    config.Addr,
		baseURL:                 config.BaseURL,
		controllers:             config.Controllers,
		authorizationMiddleware: config.AuthorizationMiddleware,
	}
}

// Engine builds the gin engine. Public routes need no token; protected
// routes run the authorization middleware first. Unknown routes answer with
// the same {"error": ...} body the controllers use.
func (r *Router) Engine() *gin.Engine {
	engine := gin.Default()
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	versioned := engine.Group(r.baseURL + apiVersion)

	public := versioned.Group("")
	for _, c := range r.controllers {
		c.RegisterPublic(public)
	}

	protected := versioned.Group("")
	if r.authorizationMiddleware != nil {
		protected.Use(r.authorizationMiddleware)
	}
	for _, c := range r.controllers {
		c.RegisterProtected(protected)
	}

	return engine
}

// Run serves the engine on the configured address until it fails.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Engine().Run(r.addr)
}
