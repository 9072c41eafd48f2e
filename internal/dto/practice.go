package dto

// QuestionView is a question as shown to a student. The correct option is withheld.
// @Description Question without its answer
type QuestionView struct {
	ID         string   `json:"id"`
	SubjectID  string   `json:"subject_id,omitempty"`
	Topic      string   `json:"topic,omitempty"`
	Content    string   `json:"content"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
	SourceYear int      `json:"source_year,omitempty"`
}

// StartPracticeRequest opens a practice session. An empty subject spans every subject.
type StartPracticeRequest struct {
	SubjectID string `json:"subject_id"`
}

// StartPracticeResponse carries the sampled practice questions.
// @Description Practice session with its questions
type StartPracticeResponse struct {
	SessionID string         `json:"session_id"`
	SubjectID string         `json:"subject_id,omitempty"`
	Questions []QuestionView `json:"questions"`
}

// SubmitAnswerRequest is one practice answer.
type SubmitAnswerRequest struct {
	SessionID        string `json:"session_id"`
	QuestionID       string `json:"question_id"`
	ChosenOption     *int   `json:"chosen_option"`
	TimeSpentSeconds *int   `json:"time_spent_seconds,omitempty"`
}

// SubmitAnswerResponse reveals the answer and the resulting progress.
// @Description Outcome of one practice answer
type SubmitAnswerResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectOption int    `json:"correct_option"`
	Explanation   string `json:"explanation,omitempty"`
	XPAwarded     int    `json:"xp_awarded"`
	XP            int    `json:"xp"`
	Level         int    `json:"level"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}
