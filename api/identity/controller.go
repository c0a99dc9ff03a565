package identity

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer serves registration, login and the explorer profile.
type IdentityServer struct {
	authService i.Authenticator
}

// NewIdentityServer creates a new IdentityServer.
func NewIdentityServer(a i.Authenticator) *IdentityServer {
	return &IdentityServer{
		authService: a,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/register", c.registerExplorer)
		auth.POST("/login", c.login)
	}
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/explorers/me", c.profile)
}

// registerExplorer handles explorer registration.
func (c *IdentityServer) registerExplorer(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.authService.Register(request.Username, request.Password); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dmn.ErrUsernameConflict) {
			status = http.StatusConflict
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Explorer registered successfully"})
}

// login handles explorer login.
func (c *IdentityServer) login(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	explorer, token, err := c.authService.SignIn(request.Username, request.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &AuthResponse{
		Profile: toProfile(explorer),
		Token:   token,
	})
}

// profile returns the explorer behind the bearer token.
func (c *IdentityServer) profile(ctx *gin.Context) {
	id, ok := ExplorerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing explorer identity"})
		return
	}

	explorer, err := c.authService.Profile(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dmn.ErrExplorerNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toProfile(explorer))
}
