package handler

import (
	"padhobadho/internal/middleware"
	"padhobadho/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetMyProgress godoc
// @Summary Get the current user's progress
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProgressResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me/progress [get]
func (h *ProgressHandler) GetMyProgress(c *fiber.Ctx) error {
	resp, err := h.progressService.GetProgress(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
