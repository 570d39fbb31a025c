// Package quiz grades multiple-choice answers against their correct
// option labels. There is no partial credit, negative marking, or time
// limit.
package quiz

import (
	"fmt"
	"strings"

	"github.com/igire/igire/internal/store"
)

// Result is the outcome of grading one quiz attempt.
type Result struct {
	Correct int
	Total   int
}

// Fraction formats the result as "correct/total".
func (r Result) Fraction() string {
	return fmt.Sprintf("%d/%d", r.Correct, r.Total)
}

// Percent returns the score scaled to 0-100, rounded to the nearest
// integer. An empty quiz scores 0.
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return (r.Correct*100 + r.Total/2) / r.Total
}

// Grade compares answers to questions positionally. An answer matches
// when it equals the question's correct option label, case-insensitively.
// Missing answers count as wrong.
func Grade(questions []store.Question, answers []string) Result {
	r := Result{Total: len(questions)}
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if Matches(q, answers[i]) {
			r.Correct++
		}
	}
	return r
}

// Matches reports whether answer selects the question's correct option.
func Matches(q store.Question, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), q.CorrectOption)
}
