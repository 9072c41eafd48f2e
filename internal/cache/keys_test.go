package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "question",
			objectType:  "detail",
			identifier:  "01HX",
			expectedKey: "padhobadho:question:detail:01HX",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "question",
			objectType:  "detail",
			identifier:  "01HX",
			paramsKey:   []string{},
			expectedKey: "padhobadho:question:detail:01HX",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "practice",
			objectType:  "pool",
			identifier:  "user1",
			paramsKey:   []string{"physics", "hard"},
			expectedKey: "padhobadho:practice:pool:user1:physics_hard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestQuestionKey(t *testing.T) {
	assert.Equal(t, "padhobadho:question:detail:q1", QuestionKey("q1"))
}

func TestAchievementQueueKey(t *testing.T) {
	assert.Equal(t, "padhobadho:achievement:queue", AchievementQueueKey())
}
