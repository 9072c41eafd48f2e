package domain

import "time"

// AchievementCode identifies an unlockable achievement.
type AchievementCode string

const (
	AchievementFirstCorrect  AchievementCode = "FIRST_CORRECT"
	AchievementCorrect100    AchievementCode = "CORRECT_100"
	AchievementStreak3       AchievementCode = "STREAK_3"
	AchievementStreak7       AchievementCode = "STREAK_7"
	AchievementStreak30      AchievementCode = "STREAK_30"
	AchievementLevel5        AchievementCode = "LEVEL_5"
	AchievementFirstMockTest AchievementCode = "FIRST_MOCK_TEST"
	AchievementSubjectExpert AchievementCode = "SUBJECT_EXPERT"
)

const (
	subjectExpertMinAttempts = 50
	subjectExpertMinAccuracy = 80.0
)

// UserAchievement is an unlocked achievement.
type UserAchievement struct {
	UserID     string
	Code       AchievementCode
	UnlockedAt time.Time
}

// AchievementStats are the committed counters achievement rules are evaluated against.
type AchievementStats struct {
	TotalCorrect          int
	LongestStreak         int
	Level                 int
	MockSessionsCompleted int
	Summaries             []PerformanceSummary
}

// AchievementRule pairs an achievement with its unlock condition.
type AchievementRule struct {
	Code        AchievementCode
	Title       string
	Description string
	Earned      func(AchievementStats) bool
}

// AchievementRules is the ordered catalogue of achievements.
var AchievementRules = []AchievementRule{
	{
		Code:        AchievementFirstCorrect,
		Title:       "First Blood",
		Description: "Answer your first question correctly",
		Earned:      func(s AchievementStats) bool { return s.TotalCorrect >= 1 },
	},
	{
		Code:        AchievementCorrect100,
		Title:       "Centurion",
		Description: "Answer 100 questions correctly",
		Earned:      func(s AchievementStats) bool { return s.TotalCorrect >= 100 },
	},
	{
		Code:        AchievementStreak3,
		Title:       "Warming Up",
		Description: "Practice 3 days in a row",
		Earned:      func(s AchievementStats) bool { return s.LongestStreak >= 3 },
	},
	{
		Code:        AchievementStreak7,
		Title:       "Week Warrior",
		Description: "Practice 7 days in a row",
		Earned:      func(s AchievementStats) bool { return s.LongestStreak >= 7 },
	},
	{
		Code:        AchievementStreak30,
		Title:       "Unstoppable",
		Description: "Practice 30 days in a row",
		Earned:      func(s AchievementStats) bool { return s.LongestStreak >= 30 },
	},
	{
		Code:        AchievementLevel5,
		Title:       "Rising Star",
		Description: "Reach level 5",
		Earned:      func(s AchievementStats) bool { return s.Level >= 5 },
	},
	{
		Code:        AchievementFirstMockTest,
		Title:       "Exam Ready",
		Description: "Complete your first mock test",
		Earned:      func(s AchievementStats) bool { return s.MockSessionsCompleted >= 1 },
	},
	{
		Code:        AchievementSubjectExpert,
		Title:       "Subject Expert",
		Description: "Reach 80% accuracy over at least 50 questions in a subject",
		Earned: func(s AchievementStats) bool {
			for _, summary := range s.Summaries {
				if summary.TotalAttempted >= subjectExpertMinAttempts && summary.Accuracy >= subjectExpertMinAccuracy {
					return true
				}
			}
			return false
		},
	},
}

// NewlyEarned returns the codes earned by stats that are not in unlocked.
func NewlyEarned(stats AchievementStats, unlocked []AchievementCode) []AchievementCode {
	have := make(map[AchievementCode]struct{}, len(unlocked))
	for _, c := range unlocked {
		have[c] = struct{}{}
	}
	var earned []AchievementCode
	for _, rule := range AchievementRules {
		if _, ok := have[rule.Code]; ok {
			continue
		}
		if rule.Earned(stats) {
			earned = append(earned, rule.Code)
		}
	}
	return earned
}

// FindAchievementRule looks up a rule by code.
func FindAchievementRule(code AchievementCode) (AchievementRule, bool) {
	for _, rule := range AchievementRules {
		if rule.Code == code {
			return rule, true
		}
	}
	return AchievementRule{}, false
}
