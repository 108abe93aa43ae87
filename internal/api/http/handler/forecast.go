package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/cardioai/internal/service/forecast"
	"github.com/Alijeyrad/cardioai/pkg/reqctx"
)

type ForecastHandler struct {
	svc forecast.Service
}

func NewForecastHandler(svc forecast.Service) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

func mapForecastError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, forecast.ErrNoPatient):
		return conflict(c, err.Error())
	case errors.Is(err, forecast.ErrReference):
		slog.ErrorContext(c.Context(), "reference dataset", append(reqctx.LogAttrs(c.Context()), "error", err)...)
		return serverError(c, forecast.ErrReference.Error())
	default:
		slog.ErrorContext(c.Context(), "forecast failed", append(reqctx.LogAttrs(c.Context()), "error", err)...)
		return internalError(c)
	}
}

// POST /forecast/complications
func (h *ForecastHandler) Complications(c fiber.Ctx) error {
	return ok(c, h.svc.Complications(c.Context()))
}

// POST /forecast/fatal-outcome
func (h *ForecastHandler) FatalOutcome(c fiber.Ctx) error {
	res, err := h.svc.FatalOutcome(c.Context())
	if err != nil {
		return mapForecastError(c, err)
	}
	return ok(c, res)
}
