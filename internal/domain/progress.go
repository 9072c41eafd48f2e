package domain

import (
	"context"
	"math"
	"time"
)

const (
	// BaseAnswerXP is awarded for every answered practice question.
	BaseAnswerXP = 10
	// CorrectAnswerBonusXP is added on top of BaseAnswerXP for a correct answer.
	CorrectAnswerBonusXP = 15
	// XPPerLevel is the XP width of one level.
	XPPerLevel = 1000
)

// UserProgress holds the gamification fields of a user.
type UserProgress struct {
	UserID         string
	XP             int
	Level          int
	CurrentStreak  int
	LongestStreak  int
	LastActiveDate *time.Time
}

// UserQuestionHistory is the per-user, per-question memory. IsCorrect reflects
// only the most recent attempt, never "ever correct".
type UserQuestionHistory struct {
	ID              string
	UserID          string
	QuestionID      string
	LastAttemptedAt time.Time
	IsCorrect       bool
	Occurrence      int
}

// PerformanceSummary is the per-user, per-subject rollup.
type PerformanceSummary struct {
	ID             string
	UserID         string
	SubjectID      string
	TotalAttempted int
	TotalCorrect   int
	Accuracy       float64
	UpdatedAt      time.Time
}

// LevelForXP derives the level from xp: floor(xp/1000) + 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPForAnswer returns the XP earned by one practice answer.
func XPForAnswer(correct bool) int {
	if correct {
		return BaseAnswerXP + CorrectAnswerBonusXP
	}
	return BaseAnswerXP
}

// civilDate is a calendar day independent of the instant its midnight falls on.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateIn(t time.Time, loc *time.Location) civilDate {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return civilDate{y, m, d}
}

// previous uses noon so days that begin with a DST jump still resolve to the right date.
func (c civilDate) previous(loc *time.Location) civilDate {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := time.Date(c.year, c.month, c.day-1, 12, 0, 0, 0, loc).Date()
	return civilDate{y, m, d}
}

// NextStreak evaluates streak continuation on calendar days in loc.
// Same day keeps the streak, the previous day extends it by one, anything else restarts at 1.
func NextStreak(current int, lastActive *time.Time, now time.Time, loc *time.Location) int {
	if lastActive == nil || lastActive.IsZero() {
		return 1
	}
	today := dateIn(now, loc)
	last := dateIn(*lastActive, loc)

	switch last {
	case today:
		return current
	case today.previous(loc):
		return current + 1
	default:
		return 1
	}
}

// ApplyAnswer computes the next progress state after one answered question and the XP it awarded.
func ApplyAnswer(p UserProgress, correct bool, now time.Time, loc *time.Location) (UserProgress, int) {
	awarded := XPForAnswer(correct)
	streak := NextStreak(p.CurrentStreak, p.LastActiveDate, now, loc)

	next := p
	next.XP = p.XP + awarded
	next.Level = LevelForXP(next.XP)
	next.CurrentStreak = streak
	next.LongestStreak = max(p.LongestStreak, streak)
	activeAt := now
	next.LastActiveDate = &activeAt
	return next, awarded
}

// CalculateAccuracy returns correct/attempted as a percentage rounded to two decimals.
// Zero attempts is an invalid aggregate and must not be written.
func CalculateAccuracy(correct, attempted int) (float64, error) {
	if attempted <= 0 {
		return 0, NewInvalidAggregateError("accuracy is undefined for zero attempts")
	}
	ratio := float64(correct) / float64(attempted) * 100
	return math.Round(ratio*100) / 100, nil
}

// AchievementNotifier triggers achievement evaluation after primary writes commit.
type AchievementNotifier interface {
	Notify(ctx context.Context, userID string) error
}

// AchievementEvaluator evaluates and unlocks achievements for a user.
type AchievementEvaluator interface {
	Evaluate(ctx context.Context, userID string) error
}
