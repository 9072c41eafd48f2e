package handler

import (
	"padhobadho/internal/domain"
	"padhobadho/internal/dto"
	"padhobadho/internal/middleware"
	"padhobadho/internal/service"
	"padhobadho/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MockTestHandler handles timed mock test HTTP requests
type MockTestHandler struct {
	mockTestService service.MockTestService
	scoringService  service.ScoringService
	validator       *validation.Validator
}

func NewMockTestHandler(mockTestService service.MockTestService, scoringService service.ScoringService) *MockTestHandler {
	return &MockTestHandler{
		mockTestService: mockTestService,
		scoringService:  scoringService,
		validator:       validation.NewValidator(),
	}
}

// StartMockTest godoc
// @Summary Start a mock test
// @Description Draws a random paper for the subject with a 2700 second budget
// @Tags mock-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartMockTestRequest true "Subject"
// @Success 200 {object} dto.StartMockTestResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "No questions available"
// @Router /mock-tests [post]
func (h *MockTestHandler) StartMockTest(c *fiber.Ctx) error {
	var req dto.StartMockTestRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateID("subject_id", req.SubjectID, true); len(errs) > 0 {
		return errs
	}

	resp, err := h.mockTestService.StartMockTest(c.UserContext(), middleware.CurrentUserID(c), req.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitMockTest godoc
// @Summary Submit a mock test
// @Description Grades the sheet with +5 per correct and -1 per incorrect answer
// @Tags mock-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitMockTestRequest true "Answer sheet"
// @Success 201 {object} dto.MockTestResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /mock-tests/submit [post]
func (h *MockTestHandler) SubmitMockTest(c *fiber.Ctx) error {
	var req dto.SubmitMockTestRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSubmitMockTest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.scoringService.GradeAndRecord(c.UserContext(), middleware.CurrentUserID(c), domain.MockSubmission{
		SubjectID:        req.SubjectID,
		Answers:          req.Answers,
		SecondsRemaining: *req.SecondsRemaining,
		TotalQuestions:   req.TotalQuestions,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
