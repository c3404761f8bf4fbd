package mazesapi

import (
	"errors"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/maze-registry/domain"
	"github.com/beka-birhanu/maze-registry/service"

	"github.com/beka-birhanu/maze-registry/api/identity"
	"github.com/beka-birhanu/maze-registry/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultTopAmount = 10

// CatalogController manages maze catalog operations.
type CatalogController struct {
	catalog i.Catalog
}

// NewCatalogController initializes a CatalogController.
func NewCatalogController(catalog i.Catalog) (*CatalogController, error) {
	if catalog == nil {
		return nil, errors.New("nil catalog")
	}
	return &CatalogController{catalog: catalog}, nil
}

// RegisterPublic registers public routes.
func (cc *CatalogController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", cc.list)
		mazes.GET("/:ID", cc.get)
		mazes.GET("/:ID/file", cc.download)
	}
	route.GET("/leaderboard/mazes", cc.top)
}

// RegisterProtected registers protected routes.
func (cc *CatalogController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", cc.upload)
		mazes.POST("/generate", cc.generate)
		mazes.DELETE("/:ID", cc.remove)
	}
}

// list returns every stored maze without its file content.
func (cc *CatalogController) list(ctx *gin.Context) {
	mazes, err := cc.catalog.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing mazes"})
		return
	}

	responses := make([]MazeResponse, 0, len(mazes))
	for _, maze := range mazes {
		responses = append(responses, toResponse(maze, false))
	}
	ctx.JSON(http.StatusOK, responses)
}

// get returns a single maze including its file content.
func (cc *CatalogController) get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	maze, err := cc.catalog.Get(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(maze, true))
}

// download serves the canonical maze file as plain text.
func (cc *CatalogController) download(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	content, err := cc.catalog.FetchFile(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="maze.txt"`)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

// top returns the most downloaded mazes.
func (cc *CatalogController) top(ctx *gin.Context) {
	amount := int64(defaultTopAmount)
	if raw := ctx.Query("amount"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
			return
		}
		amount = parsed
	}

	entries, err := cc.catalog.Top(ctx, amount)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while ranking mazes"})
		return
	}

	responses := make([]RankedMazeResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, RankedMazeResponse{
			MazeID:    entry.MazeID.String(),
			Downloads: entry.Downloads,
		})
	}
	ctx.JSON(http.StatusOK, responses)
}

// upload handles a maze file submission.
func (cc *CatalogController) upload(ctx *gin.Context) {
	ownerID, err := identity.CurrentUserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request UploadRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maze, err := cc.catalog.Submit(ctx, ownerID, request.Name, []byte(request.Content))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(maze, false))
}

// generate handles server-side maze generation.
func (cc *CatalogController) generate(ctx *gin.Context) {
	ownerID, err := identity.CurrentUserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maze, err := cc.catalog.Generate(ctx, ownerID, request.Name, request.Columns, request.Rows)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(maze, true))
}

// remove deletes one of the requester's mazes.
func (cc *CatalogController) remove(ctx *gin.Context) {
	requesterID, err := identity.CurrentUserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	if err := cc.catalog.Remove(ctx, id, requesterID); err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// toResponse maps a domain maze to its API shape.
func toResponse(maze *dmn.Maze, withContent bool) MazeResponse {
	response := MazeResponse{
		ID:        maze.ID.String(),
		Name:      maze.Name,
		OwnerID:   maze.OwnerID.String(),
		Columns:   maze.Columns,
		Rows:      maze.Rows,
		CreatedAt: maze.CreatedAt,
	}
	if withContent {
		response.Content = maze.Content
	}
	return response
}
