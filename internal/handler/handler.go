package handler

import (
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"payroll-engine/internal/engine"
	"payroll-engine/internal/model"
)

var log = logrus.WithField("module", "handler")

type Handler struct {
	engine  *engine.Engine
	metrics fasthttp.RequestHandler
}

func New(eng *engine.Engine) *Handler {
	return &Handler{
		engine:  eng,
		metrics: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Serve routes requests by path.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculation":
		h.HandleCalculation(ctx)
	case "/metrics":
		h.metrics(ctx)
	case "/healthz":
		ctx.SetContentType("text/plain")
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.CalculationInstructions.Calculations) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one calculation is required")
		return
	}

	resp := h.engine.Process(ctx, &req)

	body, err := json.Marshal(resp)
	if err != nil {
		log.WithError(err).Error("encode calculation response")
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
