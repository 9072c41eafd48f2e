package domain

import "time"

const (
	// MockTestDurationSeconds is the fixed 45 minute mock test budget.
	MockTestDurationSeconds = 2700
	// MarksPerCorrect and MarksPerIncorrect form the +5/-1 marking scheme.
	MarksPerCorrect   = 5
	MarksPerIncorrect = -1
)

// PracticeSession is a bounded practice run, optionally scoped to a subject.
type PracticeSession struct {
	ID        string
	UserID    string
	SubjectID string
	CreatedAt time.Time
}

// PracticeAttempt is an immutable answer to one question within a practice session.
type PracticeAttempt struct {
	ID           string
	SessionID    string
	UserID       string
	QuestionID   string
	ChosenOption int
	IsCorrect    bool
	TimeSpent    *int
	AttemptedAt  time.Time
}

// MockSession is one sitting of a timed mock test. Score is signed.
type MockSession struct {
	ID             string
	UserID         string
	SubjectID      string
	Score          int
	TimeSpent      int
	TimeLimit      int
	TotalQuestions int
	CreatedAt      time.Time
}

// MockSessionQuestion is the graded result for one answered question of a mock session.
type MockSessionQuestion struct {
	ID           string
	SessionID    string
	QuestionID   string
	ChosenOption int
	IsCorrect    bool
}

// MockSubmission is a student's full answer sheet for one sitting.
// TotalQuestions is the number of questions that were presented.
type MockSubmission struct {
	SubjectID        string
	Answers          map[string]int
	SecondsRemaining int
	TotalQuestions   int
}

// AnswerSubmission is one practice answer.
type AnswerSubmission struct {
	UserID           string
	SessionID        string
	QuestionID       string
	ChosenOption     int
	TimeSpentSeconds *int
}

// Marksheet is the outcome of grading an answer sheet.
type Marksheet struct {
	Score     int
	Correct   int
	Incorrect int
	Results   []MockSessionQuestion
}

// Attempted is the number of graded answers.
func (m Marksheet) Attempted() int {
	return m.Correct + m.Incorrect
}

// Unattempted is a display value: presented questions minus graded answers, never negative.
func (m Marksheet) Unattempted(totalQuestions int) int {
	if u := totalQuestions - m.Attempted(); u > 0 {
		return u
	}
	return 0
}

// ElapsedSeconds derives time spent from the seconds left on the mock test clock.
func ElapsedSeconds(secondsRemaining int) int {
	spent := MockTestDurationSeconds - secondsRemaining
	if spent < 0 {
		return 0
	}
	if spent > MockTestDurationSeconds {
		return MockTestDurationSeconds
	}
	return spent
}

// GradeAnswers applies the marking scheme to the answered questions. Answers whose
// question is absent from questions are skipped and do not count.
func GradeAnswers(sessionID string, questions []*Question, answers map[string]int) Marksheet {
	var sheet Marksheet
	for _, q := range questions {
		if q == nil {
			continue
		}
		chosen, ok := answers[q.ID]
		if !ok {
			continue
		}
		correct := q.IsCorrect(chosen)
		if correct {
			sheet.Score += MarksPerCorrect
			sheet.Correct++
		} else {
			sheet.Score += MarksPerIncorrect
			sheet.Incorrect++
		}
		sheet.Results = append(sheet.Results, MockSessionQuestion{
			SessionID:    sessionID,
			QuestionID:   q.ID,
			ChosenOption: chosen,
			IsCorrect:    correct,
		})
	}
	return sheet
}
