package validation

import (
	"regexp"
	"strings"

	"padhobadho/internal/domain"
	"padhobadho/internal/dto"
)

const (
	maxOptionIndex      = 25
	maxTimeSpentSeconds = 86400
	maxSheetSize        = 200
)

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks a ULID identifier. An empty value passes when required is false.
func (v *Validator) ValidateID(field, id string, required bool) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		if required {
			errors = append(errors, domain.NewMissingFieldError(field))
		}
		return errors
	}
	if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}
	return errors
}

// ValidateSubmitAnswer validates a practice answer.
func (v *Validator) ValidateSubmitAnswer(req *dto.SubmitAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateID("session_id", req.SessionID, true)...)
	errors = append(errors, v.ValidateID("question_id", req.QuestionID, true)...)

	if req.ChosenOption == nil {
		errors = append(errors, domain.NewMissingFieldError("chosen_option"))
	} else if *req.ChosenOption < 0 || *req.ChosenOption > maxOptionIndex {
		errors = append(errors, domain.NewOutOfRangeError("chosen_option", *req.ChosenOption, 0, maxOptionIndex))
	}

	if req.TimeSpentSeconds != nil && (*req.TimeSpentSeconds < 0 || *req.TimeSpentSeconds > maxTimeSpentSeconds) {
		errors = append(errors, domain.NewOutOfRangeError("time_spent_seconds", *req.TimeSpentSeconds, 0, maxTimeSpentSeconds))
	}

	return errors
}

// ValidateSubmitMockTest validates a mock test answer sheet.
func (v *Validator) ValidateSubmitMockTest(req *dto.SubmitMockTestRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateID("subject_id", req.SubjectID, true)...)

	if req.SecondsRemaining == nil {
		errors = append(errors, domain.NewMissingFieldError("seconds_remaining"))
	} else if *req.SecondsRemaining < 0 || *req.SecondsRemaining > domain.MockTestDurationSeconds {
		errors = append(errors, domain.NewOutOfRangeError("seconds_remaining", *req.SecondsRemaining, 0, domain.MockTestDurationSeconds))
	}

	if req.TotalQuestions < 0 || req.TotalQuestions > maxSheetSize {
		errors = append(errors, domain.NewOutOfRangeError("total_questions", req.TotalQuestions, 0, maxSheetSize))
	}

	if len(req.Answers) > maxSheetSize {
		errors = append(errors, domain.NewOutOfRangeError("answers", len(req.Answers), 0, maxSheetSize))
		return errors
	}
	for questionID, chosen := range req.Answers {
		if !isValidULID(questionID) {
			errors = append(errors, domain.NewInvalidFormatError("answers", questionID))
			continue
		}
		if chosen < 0 || chosen > maxOptionIndex {
			errors = append(errors, domain.NewOutOfRangeError("answers."+questionID, chosen, 0, maxOptionIndex))
		}
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return len(s) == 26 && validULID.MatchString(s)
}
