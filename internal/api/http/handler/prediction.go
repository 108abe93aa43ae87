package handler

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/cardioai/internal/classifier"
	"github.com/Alijeyrad/cardioai/internal/service/prediction"
	"github.com/Alijeyrad/cardioai/pkg/reqctx"
)

type PredictionHandler struct {
	svc prediction.Service
}

func NewPredictionHandler(svc prediction.Service) *PredictionHandler {
	return &PredictionHandler{svc: svc}
}

func mapPredictionError(c fiber.Ctx, err error) error {
	var verr *prediction.ValidationError
	switch {
	case errors.As(err, &verr):
		return unprocessable(c, verr.Details)
	case errors.Is(err, classifier.ErrFeatureCount):
		return unprocessable(c, []prediction.FieldError{{
			Loc:  []any{"body", "data"},
			Msg:  err.Error(),
			Type: "value_error",
		}})
	case errors.Is(err, prediction.ErrInvalidInput):
		return badRequest(c, err.Error())
	default:
		slog.ErrorContext(c.Context(), "prediction failed", append(reqctx.LogAttrs(c.Context()), "error", err)...)
		return serverError(c, err.Error())
	}
}

// POST /v1/miokard/predict
func (h *PredictionHandler) Predict(c fiber.Ctx) error {
	var req prediction.Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return unprocessable(c, []prediction.FieldError{decodeError(err)})
	}

	res, err := h.svc.Predict(c.Context(), req)
	if err != nil {
		return mapPredictionError(c, err)
	}
	return c.JSON(res)
}

func decodeError(err error) prediction.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return prediction.FieldError{
			Loc:  []any{"body", "data"},
			Msg:  "value is not a valid float",
			Type: "type_error.float",
		}
	}
	return prediction.FieldError{
		Loc:  []any{"body"},
		Msg:  err.Error(),
		Type: "value_error.jsondecode",
	}
}
