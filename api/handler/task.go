package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/sainikartavya76-gif/aidconnect-now/api/transport"
	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/httpcontext"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
	dispatchUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/dispatch"
)

type TaskHandler struct {
	baseHandler
	uc *dispatchUC.UseCase
}

func NewTaskHandler(uc *dispatchUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.TaskFilter{
		VolunteerID: string(ctx.QueryArgs().Peek("volunteer_id")),
		EmergencyID: string(ctx.QueryArgs().Peek("emergency_id")),
		Status:      domain.TaskStatus(ctx.QueryArgs().Peek("status")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary Advance a task to its next lifecycle status
// @Tags tasks
// @Router /api/v1/tasks/{id}/advance [post]
func (h *TaskHandler) Advance(ctx *fasthttp.RequestCtx) {
	id := h.pathParam(ctx, "id")
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.AdvanceTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}
