package handler

import (
	"errors"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"tax-engine/internal/engine"
	"tax-engine/internal/model"
)

const distributionPath = "/api/distribution"

// Handler routes incoming requests: the distribution API on one path,
// static web assets everywhere else.
type Handler struct {
	log    *logrus.Logger
	static fasthttp.RequestHandler
}

func New(log *logrus.Logger, staticDir string) *Handler {
	fs := &fasthttp.FS{
		Root:               staticDir,
		IndexNames:         []string{"index.html"},
		Compress:           true,
		AcceptByteRange:    true,
		GenerateIndexPages: false,
	}
	return &Handler{
		log:    log,
		static: fs.NewRequestHandler(),
	}
}

func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	requestID := uuid.NewString()
	ctx.Response.Header.Set("X-Request-ID", requestID)

	if string(ctx.Path()) == distributionPath {
		h.handleDistribution(ctx, requestID)
		return
	}

	h.static(ctx)
}

func (h *Handler) handleDistribution(ctx *fasthttp.RequestCtx, requestID string) {
	if !ctx.IsGet() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	gross, grossErr := parseAmount(ctx.QueryArgs().Peek("grossSalary"))
	net, netErr := parseAmount(ctx.QueryArgs().Peek("netSalary"))
	if grossErr != nil || netErr != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid salary values")
		return
	}

	report, err := engine.Compute(gross, net)
	if err != nil {
		var invalid *engine.InvalidInputError
		if errors.As(err, &invalid) {
			h.writeError(ctx, fasthttp.StatusBadRequest, invalid.Reason)
			return
		}
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Calculation failed")
		return
	}

	h.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"gross":      gross,
		"net":        net,
		"income_tax": report.PersonalIncomeTax,
	}).Info("distribution computed")

	body, err := json.Marshal(report)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{Error: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func parseAmount(raw []byte) (float64, error) {
	if len(raw) == 0 {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(string(raw), 64)
}
