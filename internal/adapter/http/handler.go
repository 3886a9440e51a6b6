package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/catalogadmin"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/chunk"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/explore"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/status"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const defaultWorldID = "default"

type Handler struct {
	ExploreUC           explore.UseCase
	ChunkUC             chunk.UseCase
	StatusUC            status.UseCase
	RegisterItemUC      catalogadmin.RegisterItemUseCase
	RegisterStructureUC catalogadmin.RegisterStructureUseCase
	ListCatalogUC       catalogadmin.ListUseCase
	SetEnabledUC        catalogadmin.SetEnabledUseCase
	KPI                 kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	world := s.Group("/api/world")
	world.POST("/explore", h.explore)
	world.POST("/chunk", h.chunk)
	world.GET("/status", h.status)

	cat := s.Group("/api/catalog")
	cat.GET("", h.listCatalog)
	cat.POST("/items", h.registerItem)
	cat.POST("/structures", h.registerStructure)
	cat.PUT("/:kind/:id/enabled", h.setEnabled)

	s.GET("/ops/kpi", h.kpi)
}

type exploreRequest struct {
	WorldID string `json:"world_id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Radius  int    `json:"radius"`
}

type chunkRequest struct {
	WorldID string `json:"world_id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

type setEnabledRequest struct {
	Enabled *bool `json:"enabled"`
}

func (h Handler) explore(c context.Context, ctx *app.RequestContext) {
	var body exploreRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ExploreUC.Execute(c, explore.Request{
		WorldID: worldOrDefault(body.WorldID),
		X:       body.X,
		Y:       body.Y,
		Radius:  body.Radius,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) chunk(c context.Context, ctx *app.RequestContext) {
	var body chunkRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ChunkUC.Execute(c, chunk.Request{
		WorldID: worldOrDefault(body.WorldID),
		X:       body.X,
		Y:       body.Y,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{
		WorldID: worldOrDefault(string(ctx.Query("world_id"))),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) registerItem(c context.Context, ctx *app.RequestContext) {
	var item catalog.CustomItem
	if err := decodeJSON(ctx, &item); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.RegisterItemUC.Execute(c, catalogadmin.RegisterItemRequest{Item: item})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) registerStructure(c context.Context, ctx *app.RequestContext) {
	var structure catalog.CustomStructure
	if err := decodeJSON(ctx, &structure); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.RegisterStructureUC.Execute(c, catalogadmin.RegisterStructureRequest{Structure: structure})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) listCatalog(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ListCatalogUC.Execute(c, catalogadmin.ListRequest{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) setEnabled(c context.Context, ctx *app.RequestContext) {
	var body setEnabledRequest
	if err := decodeJSON(ctx, &body); err != nil || body.Enabled == nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "body must carry an enabled flag")
		return
	}
	resp, err := h.SetEnabledUC.Execute(c, catalogadmin.SetEnabledRequest{
		ID:      string(ctx.Param("id")),
		Kind:    strings.TrimSuffix(string(ctx.Param("kind")), "s"),
		Enabled: *body.Enabled,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func worldOrDefault(id string) string {
	if strings.TrimSpace(id) == "" {
		return defaultWorldID
	}
	return id
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, explore.ErrInvalidRequest),
		errors.Is(err, chunk.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, catalogadmin.ErrInvalidRequest),
		errors.Is(err, catalogadmin.ErrUnknownKind):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
