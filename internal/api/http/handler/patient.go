package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/cardioai/internal/service/patient"
	"github.com/Alijeyrad/cardioai/pkg/reqctx"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrInvalidSubmission):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrNoPatients):
		return conflict(c, err.Error())
	default:
		slog.ErrorContext(c.Context(), "patient request failed", append(reqctx.LogAttrs(c.Context()), "error", err)...)
		return internalError(c)
	}
}

// GET /fields
func (h *PatientHandler) Fields(c fiber.Ctx) error {
	return ok(c, h.svc.Fields(c.Context()))
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	return ok(c, h.svc.List(c.Context()))
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Add(c.Context(), body)
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, res)
}

// POST /patients/export
func (h *PatientHandler) Export(c fiber.Ctx) error {
	res, err := h.svc.Export(c.Context())
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, res)
}

// GET /patients/export.xlsx
func (h *PatientHandler) ExportSpreadsheet(c fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.svc.WriteSpreadsheet(c.Context(), &buf); err != nil {
		return mapPatientError(c, err)
	}
	c.Attachment("patients.xlsx")
	return c.Send(buf.Bytes())
}
