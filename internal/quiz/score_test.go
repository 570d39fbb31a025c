package quiz

import (
	"testing"

	"github.com/igire/igire/internal/store"
)

func questionsABC() []store.Question {
	return []store.Question{
		{Text: "q1", CorrectOption: "A"},
		{Text: "q2", CorrectOption: "B"},
		{Text: "q3", CorrectOption: "C"},
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name        string
		answers     []string
		wantCorrect int
	}{
		{"all correct mixed case", []string{"a", "b", "c"}, 3},
		{"all correct upper", []string{"A", "B", "C"}, 3},
		{"one correct", []string{"A", "A", "A"}, 1},
		{"none correct", []string{"C", "A", "B"}, 0},
		{"missing answers count wrong", []string{"A"}, 1},
		{"whitespace tolerated", []string{" a ", "B ", " C"}, 3},
		{"no answers", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Grade(questionsABC(), tt.answers)
			if r.Correct != tt.wantCorrect {
				t.Errorf("Correct = %d, want %d", r.Correct, tt.wantCorrect)
			}
			if r.Total != 3 {
				t.Errorf("Total = %d, want 3", r.Total)
			}
		})
	}
}

func TestResultFraction(t *testing.T) {
	r := Result{Correct: 2, Total: 3}
	if got := r.Fraction(); got != "2/3" {
		t.Errorf("Fraction() = %q, want 2/3", got)
	}
}

func TestResultPercent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{3, 3, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 3, 0},
		{0, 0, 0},
		{1, 2, 50},
	}

	for _, tt := range tests {
		r := Result{Correct: tt.correct, Total: tt.total}
		if got := r.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
