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
	registryUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/registry"
)

type EmergencyHandler struct {
	baseHandler
	registry *registryUC.UseCase
	dispatch *dispatchUC.UseCase
}

func NewEmergencyHandler(registry *registryUC.UseCase, dispatch *dispatchUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *EmergencyHandler {
	return &EmergencyHandler{
		baseHandler: newBaseHandler(adapter, logger),
		registry:    registry,
		dispatch:    dispatch,
	}
}

// @Summary List emergencies
// @Tags emergencies
// @Router /api/v1/emergencies [get]
func (h *EmergencyHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.EmergencyFilter{
		Status: domain.EmergencyStatus(ctx.QueryArgs().Peek("status")),
		Type:   string(ctx.QueryArgs().Peek("type")),
		Skill:  string(ctx.QueryArgs().Peek("skill")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	emergencies, err := h.registry.ListEmergencies(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, emergencies)
}

// @Summary Submit emergency request
// @Tags emergencies
// @Router /api/v1/emergencies [post]
func (h *EmergencyHandler) Submit(ctx *fasthttp.RequestCtx) {
	var req transport.EmergencyRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.registry.SubmitEmergency(stdCtx, registryUC.EmergencyInput{
		Type:        req.Type,
		TypeLabel:   req.TypeLabel,
		Location:    req.Location,
		Skill:       req.Skill,
		Urgency:     domain.Urgency(req.Urgency),
		Description: req.Description,
		Coordinates: req.Coordinates,
		ReportedBy:  req.ReportedBy,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Resolve an assigned emergency
// @Tags emergencies
// @Router /api/v1/emergencies/{id}/resolve [post]
func (h *EmergencyHandler) Resolve(ctx *fasthttp.RequestCtx) {
	id := h.pathParam(ctx, "id")
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing emergency id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	emergency, err := h.dispatch.ResolveEmergency(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, emergency)
}
