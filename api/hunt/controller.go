package huntapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-treasure/api/identity"
	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/game/maze"
	"github.com/beka-birhanu/vinom-treasure/knapsack"
	"github.com/beka-birhanu/vinom-treasure/service"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	csvFormat = "csv"
)

// HuntController serves hunts, appraisals and the leaderboard.
type HuntController struct {
	huntService i.HuntService
	logger      i.Logger
}

// NewHuntController initializes a HuntController.
func NewHuntController(hs i.HuntService, logger i.Logger) (*HuntController, error) {
	if hs == nil {
		return nil, errors.New("hunt service is required")
	}
	return &HuntController{
		huntService: hs,
		logger:      logger,
	}, nil
}

// RegisterPublic registers public routes.
func (hc *HuntController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", hc.leaderboard)
}

// RegisterProtected registers protected routes.
func (hc *HuntController) RegisterProtected(route *gin.RouterGroup) {
	hunts := route.Group("/hunts")
	{
		hunts.POST("", hc.hunt)
		hunts.GET("", hc.history)
		hunts.GET("/:ID", hc.huntInfo)
	}
	route.POST("/appraisals", hc.appraise)
}

// hunt runs a new hunt for the caller.
func (hc *HuntController) hunt(ctx *gin.Context) {
	explorerID, ok := identity.ExplorerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request HuntRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hunt, err := hc.huntService.Hunt(ctx.Request.Context(), explorerID, request.toDomain())
	if err != nil {
		hc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, huntResponse(hunt))
}

// history lists the caller's hunts.
func (hc *HuntController) history(ctx *gin.Context) {
	explorerID, ok := identity.ExplorerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}
	limit, err := queryLimit(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hunts, err := hc.huntService.ByExplorer(ctx.Request.Context(), explorerID, limit)
	if err != nil {
		hc.fail(ctx, err)
		return
	}

	response := make([]HuntSummary, 0, len(hunts))
	for _, h := range hunts {
		response = append(response, huntSummary(h))
	}
	ctx.JSON(http.StatusOK, response)
}

// huntInfo returns one of the caller's hunts. Other explorers' hunts are reported as missing.
func (hc *HuntController) huntInfo(ctx *gin.Context) {
	explorerID, ok := identity.ExplorerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid hunt ID"})
		return
	}

	hunt, err := hc.huntService.ByID(ctx.Request.Context(), id)
	if err != nil {
		hc.fail(ctx, err)
		return
	}
	if hunt.ExplorerID != explorerID {
		hc.fail(ctx, dmn.ErrHuntNotFound)
		return
	}
	ctx.JSON(http.StatusOK, huntResponse(hunt))
}

// appraise packs the best knapsack over a whole maze. With ?format=csv the
// DP table is returned instead.
func (hc *HuntController) appraise(ctx *gin.Context) {
	var request AppraisalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appraisal, err := hc.huntService.Appraise(ctx.Request.Context(), request.toDomain())
	if err != nil {
		hc.fail(ctx, err)
		return
	}

	if ctx.Query("format") != csvFormat {
		ctx.JSON(http.StatusOK, appraisal)
		return
	}
	if appraisal.Solution.Table == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "csv export needs the dynamic solver"})
		return
	}
	ctx.Header("Content-Type", "text/csv")
	ctx.Status(http.StatusOK)
	if err := appraisal.Solution.Table.WriteCSV(ctx.Writer); err != nil && hc.logger != nil {
		hc.logger.Error("Writing appraisal table: " + err.Error())
	}
}

// leaderboard lists the best explorers.
func (hc *HuntController) leaderboard(ctx *gin.Context) {
	limit, err := queryLimit(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	standings, err := hc.huntService.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		hc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, standings)
}

func (hc *HuntController) fail(ctx *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError && hc.logger != nil {
		hc.logger.Error(err.Error())
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, dmn.ErrInvalidRequest),
		errors.Is(err, knapsack.ErrInvalidSolver),
		errors.Is(err, knapsack.ErrNegativeInput),
		errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrInvalidTreasureModel),
		errors.Is(err, service.ErrTooManyItems):
		return http.StatusBadRequest
	case errors.Is(err, dmn.ErrHuntNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func queryLimit(ctx *gin.Context) (int, error) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	return limit, nil
}
