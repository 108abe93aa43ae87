package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/cardioai/internal/service/prediction"
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func conflict(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": msg})
}

// unprocessable mirrors the validation body clients of the prediction API
// already parse: {"detail": [{"loc": [...], "msg": ..., "type": ...}]}.
func unprocessable(c fiber.Ctx, details []prediction.FieldError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": details})
}

func internalError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func serverError(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
}
