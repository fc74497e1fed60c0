package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/sainikartavya76-gif/aidconnect-now/api/transport"
	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/httpcontext"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
	dispatchUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/dispatch"
	matchingUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/matching"
)

type MatchingHandler struct {
	baseHandler
	engine     *matchingUC.Engine
	dispatch   *dispatchUC.UseCase
	volunteers repository.VolunteerRepository
}

func NewMatchingHandler(engine *matchingUC.Engine, dispatch *dispatchUC.UseCase, volunteers repository.VolunteerRepository, adapter *httpcontext.Adapter, logger *zap.Logger) *MatchingHandler {
	return &MatchingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		engine:      engine,
		dispatch:    dispatch,
		volunteers:  volunteers,
	}
}

// @Summary Ranked volunteer matches for an emergency
// @Tags matching
// @Router /api/v1/emergencies/{id}/matches [get]
func (h *MatchingHandler) Matches(ctx *fasthttp.RequestCtx) {
	id := h.pathParam(ctx, "id")
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing emergency id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	candidates, err := h.engine.Match(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	// an empty candidate list with a non-empty pool means "no match",
	// an empty pool means there is nobody to match against at all
	pool, err := h.volunteers.List(stdCtx, repository.VolunteerFilter{})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	meta := map[string]interface{}{"total_volunteers": len(pool)}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(candidates, meta))
}

// @Summary Assign a volunteer to an emergency
// @Tags matching
// @Router /api/v1/emergencies/{id}/assign [post]
func (h *MatchingHandler) Assign(ctx *fasthttp.RequestCtx) {
	id := h.pathParam(ctx, "id")
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing emergency id", nil))
		return
	}

	var req transport.AssignRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.VolunteerID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing volunteer id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.dispatch.Assign(stdCtx, id, req.VolunteerID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, task)
}
