package dto

// StartMockTestRequest draws a mock test for a subject.
type StartMockTestRequest struct {
	SubjectID string `json:"subject_id"`
}

// StartMockTestResponse carries the mock test questions and the time budget.
// @Description Mock test paper
type StartMockTestResponse struct {
	SubjectID        string         `json:"subject_id"`
	TimeLimitSeconds int            `json:"time_limit_seconds"`
	Questions        []QuestionView `json:"questions"`
}

// SubmitMockTestRequest is a full answer sheet. Answers maps question id to the chosen option.
type SubmitMockTestRequest struct {
	SubjectID        string         `json:"subject_id"`
	Answers          map[string]int `json:"answers"`
	SecondsRemaining *int           `json:"seconds_remaining"`
	TotalQuestions   int            `json:"total_questions"`
}

// MockTestResultResponse is the graded marksheet.
// @Description Mock test result
type MockTestResultResponse struct {
	SessionID        string `json:"session_id"`
	Score            int    `json:"score"`
	Correct          int    `json:"correct"`
	Incorrect        int    `json:"incorrect"`
	Unattempted      int    `json:"unattempted"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}
