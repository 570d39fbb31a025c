package topics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllTopicsLoad(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	require.Len(t, all, 5)

	for i, topic := range all {
		require.Equal(t, i+1, topic.ID, "topics must be ordered by id")
		require.NotEmpty(t, topic.Title)
		require.NotEmpty(t, topic.Description)
		require.NotEmpty(t, topic.KeyPoints)
		require.Len(t, topic.Exercise.Options, 4)
		require.GreaterOrEqual(t, topic.Exercise.CorrectAnswer, 1)
		require.LessOrEqual(t, topic.Exercise.CorrectAnswer, 4)
		require.NotEmpty(t, topic.Exercise.Explanation)
	}
}

func TestByID(t *testing.T) {
	topic, err := ByID(1)
	require.NoError(t, err)
	require.NotNil(t, topic)
	require.Equal(t, "Business Model Canvas", topic.Title)

	missing, err := ByID(99)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestExerciseIsCorrect(t *testing.T) {
	ex := Exercise{CorrectAnswer: 3}

	tests := []struct {
		answer int
		want   bool
	}{
		{1, false},
		{2, false},
		{3, true},
		{4, false},
	}
	for _, tt := range tests {
		if got := ex.IsCorrect(tt.answer); got != tt.want {
			t.Errorf("IsCorrect(%d) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestValidateRejectsBadFixture(t *testing.T) {
	bad := []byte(`{"topics":[{"id":1,"title":"t","description":"d","key_points":["k"],
		"exercise":{"question":"q","options":["a","b"],"correct_answer":5,"explanation":"e"}}]}`)
	require.Error(t, validate(bad))
}
