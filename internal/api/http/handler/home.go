package handler

import "github.com/gofiber/fiber/v3"

// HomeHandler answers the greeting endpoints of the prediction API.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

// GET /
func (h *HomeHandler) Hello(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello!"})
}

// GET /bye
func (h *HomeHandler) Bye(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Bye!"})
}
