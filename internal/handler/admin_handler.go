package handler

import (
	"padhobadho/internal/middleware"
	"padhobadho/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes admin-only question maintenance.
type AdminHandler struct {
	questionAdmin service.QuestionAdminService
}

func NewAdminHandler(questionAdmin service.QuestionAdminService) *AdminHandler {
	return &AdminHandler{questionAdmin: questionAdmin}
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Deletes the question with its history, attempts and mock results
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/questions/{id} [delete]
func (h *AdminHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.ValidatedIDKey).(string)
	if id == "" {
		id = c.Params("id")
	}
	if err := h.questionAdmin.DeleteQuestion(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
