package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/sainikartavya76-gif/aidconnect-now/api/transport"
	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/httpcontext"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
	registryUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/registry"
)

type VolunteerHandler struct {
	baseHandler
	uc *registryUC.UseCase
}

func NewVolunteerHandler(uc *registryUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *VolunteerHandler {
	return &VolunteerHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List volunteers
// @Tags volunteers
// @Router /api/v1/volunteers [get]
func (h *VolunteerHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.VolunteerFilter{
		Skill: string(ctx.QueryArgs().Peek("skill")),
		City:  string(ctx.QueryArgs().Peek("city")),
	}
	if raw := string(ctx.QueryArgs().Peek("available")); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			filter.Available = &available
		}
	}
	if raw := string(ctx.QueryArgs().Peek("verified")); raw != "" {
		if verified, err := strconv.ParseBool(raw); err == nil {
			filter.Verified = &verified
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	volunteers, err := h.uc.ListVolunteers(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, volunteers)
}

// @Summary Register volunteer
// @Tags volunteers
// @Router /api/v1/volunteers [post]
func (h *VolunteerHandler) Register(ctx *fasthttp.RequestCtx) {
	var req transport.VolunteerRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.RegisterVolunteer(stdCtx, registryUC.VolunteerInput{
		Name:        req.Name,
		City:        req.City,
		Skills:      req.Skills,
		Phone:       req.Phone,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Set volunteer availability
// @Tags volunteers
// @Router /api/v1/volunteers/{id}/availability [patch]
func (h *VolunteerHandler) SetAvailability(ctx *fasthttp.RequestCtx) {
	id := h.pathParam(ctx, "id")
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing volunteer id", nil))
		return
	}

	var req transport.AvailabilityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	volunteer, err := h.uc.SetAvailability(stdCtx, id, req.Available)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, volunteer)
}

// @Summary Verify volunteer credentials
// @Tags volunteers
// @Router /api/v1/volunteers/{id}/verify [post]
func (h *VolunteerHandler) Verify(ctx *fasthttp.RequestCtx) {
	id := h.pathParam(ctx, "id")
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing volunteer id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	volunteer, err := h.uc.VerifyVolunteer(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, volunteer)
}
