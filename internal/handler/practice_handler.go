package handler

import (
	"padhobadho/internal/domain"
	"padhobadho/internal/dto"
	"padhobadho/internal/middleware"
	"padhobadho/internal/service"
	"padhobadho/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PracticeHandler handles practice-session HTTP requests
type PracticeHandler struct {
	practiceService service.PracticeService
	progressService service.ProgressService
	validator       *validation.Validator
}

func NewPracticeHandler(practiceService service.PracticeService, progressService service.ProgressService) *PracticeHandler {
	return &PracticeHandler{
		practiceService: practiceService,
		progressService: progressService,
		validator:       validation.NewValidator(),
	}
}

// StartPractice godoc
// @Summary Start a practice session
// @Description Samples up to 15 questions the user has never answered correctly
// @Tags practice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartPracticeRequest false "Optional subject"
// @Success 201 {object} dto.StartPracticeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "No questions available"
// @Router /practice/sessions [post]
func (h *PracticeHandler) StartPractice(c *fiber.Ctx) error {
	var req dto.StartPracticeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
	}
	if errs := h.validator.ValidateID("subject_id", req.SubjectID, false); len(errs) > 0 {
		return errs
	}

	resp, err := h.practiceService.StartPractice(c.UserContext(), middleware.CurrentUserID(c), req.SubjectID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit a practice answer
// @Description Records the answer, awards XP and advances the daily streak
// @Tags practice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /practice/answers [post]
func (h *PracticeHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSubmitAnswer(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.progressService.RecordAnswer(c.UserContext(), domain.AnswerSubmission{
		UserID:           middleware.CurrentUserID(c),
		SessionID:        req.SessionID,
		QuestionID:       req.QuestionID,
		ChosenOption:     *req.ChosenOption,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
