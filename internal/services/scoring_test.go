package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

func newQuestion(category types.QuestionCategory, weights ...int) *types.Question {
	q := &types.Question{ID: uuid.New(), Text: "q", Category: category}
	for _, w := range weights {
		q.Options = append(q.Options, types.QuestionOption{
			ID:         uuid.New(),
			QuestionID: q.ID,
			Text:       "opt",
			Weight:     w,
		})
	}
	return q
}

func answer(answers map[uuid.UUID]uuid.UUID, q *types.Question, optionIdx int) {
	answers[q.ID] = q.Options[optionIdx].ID
}

func TestScoreAnswersPerCategory(t *testing.T) {
	anxiety := newQuestion(types.CategoryAnxiety, 0, 1, 2, 3)
	depression := newQuestion(types.CategoryDepression, 0, 1, 2, 3)
	stress := newQuestion(types.CategoryStress, 0, 2, 4)
	general := newQuestion(types.CategoryGeneral, 0, 1, 2)

	answers := map[uuid.UUID]uuid.UUID{}
	answer(answers, anxiety, 3)    // 3
	answer(answers, depression, 1) // 1
	answer(answers, stress, 2)     // 4
	answer(answers, general, 2)    // 2

	got := ScoreAnswers([]*types.Question{anxiety, depression, stress, general}, answers)

	if got.Anxiety != 3 || got.Depression != 1 || got.Stress != 4 || got.General != 2 {
		t.Fatalf("unexpected subscores: %+v", got)
	}
	if got.Total != 10 {
		t.Fatalf("Total = %d, want 10", got.Total)
	}
	if sum := got.Anxiety + got.Depression + got.Stress + got.General; sum != got.Total {
		t.Fatalf("subscores sum to %d, total is %d", sum, got.Total)
	}
	if got.AnsweredQuestions != 4 {
		t.Fatalf("AnsweredQuestions = %d, want 4", got.AnsweredQuestions)
	}
}

func TestScoreAnswersUnknownCategoryScoresAsGeneral(t *testing.T) {
	q := newQuestion(types.QuestionCategory("wellbeing"), 0, 1, 2)
	answers := map[uuid.UUID]uuid.UUID{}
	answer(answers, q, 2)

	got := ScoreAnswers([]*types.Question{q}, answers)
	if got.General != 2 || got.Total != 2 {
		t.Fatalf("expected unknown category to feed general, got %+v", got)
	}
}

func TestScoreAnswersSkipsUnansweredAndStale(t *testing.T) {
	answered := newQuestion(types.CategoryAnxiety, 0, 1, 2, 3)
	unanswered := newQuestion(types.CategoryStress, 0, 1, 2, 3)
	staleTarget := newQuestion(types.CategoryDepression, 0, 1, 2, 3)

	answers := map[uuid.UUID]uuid.UUID{}
	answer(answers, answered, 2)
	// Option id from a different question: a stale form submission.
	answers[staleTarget.ID] = answered.Options[3].ID

	got := ScoreAnswers([]*types.Question{answered, unanswered, staleTarget}, answers)

	if got.AnsweredQuestions != 1 {
		t.Fatalf("AnsweredQuestions = %d, want 1 (stale and unanswered skipped)", got.AnsweredQuestions)
	}
	if got.Total != 2 || got.Depression != 0 {
		t.Fatalf("stale answer leaked into scores: %+v", got)
	}
}

func TestScoreResultPercentage(t *testing.T) {
	cases := []struct {
		name string
		r    ScoreResult
		want float64
	}{
		{"zero answered", ScoreResult{}, 0},
		{"half", ScoreResult{Total: 4, AnsweredQuestions: 2}, 50},
		{"full", ScoreResult{Total: 8, AnsweredQuestions: 2}, 100},
		{"over ceiling weight", ScoreResult{Total: 10, AnsweredQuestions: 2}, 125},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Percentage(); got != tc.want {
				t.Fatalf("Percentage() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifySeverityBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		want       types.SeverityCategory
	}{
		{0, types.SeverityLow},
		{24.9, types.SeverityLow},
		{25, types.SeverityMild},
		{49.9, types.SeverityMild},
		{50, types.SeverityModerate},
		{74.9, types.SeverityModerate},
		{75, types.SeveritySevere},
		{100, types.SeveritySevere},
		{125, types.SeveritySevere},
	}
	for _, tc := range cases {
		if got := ClassifySeverity(tc.percentage); got != tc.want {
			t.Fatalf("ClassifySeverity(%v) = %q, want %q", tc.percentage, got, tc.want)
		}
	}
}

// The worked example: one anxiety question answered with weight 3 and one
// stress question answered with weight 1 scores 4/8 = 50% = moderate.
func TestScoreAnswersWorkedExample(t *testing.T) {
	anxiety := newQuestion(types.CategoryAnxiety, 0, 1, 2, 3)
	stress := newQuestion(types.CategoryStress, 0, 1, 2, 3)

	answers := map[uuid.UUID]uuid.UUID{}
	answer(answers, anxiety, 3)
	answer(answers, stress, 1)

	got := ScoreAnswers([]*types.Question{anxiety, stress}, answers)
	if got.Total != 4 || got.Anxiety != 3 || got.Stress != 1 || got.AnsweredQuestions != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if pct := got.Percentage(); pct != 50 {
		t.Fatalf("Percentage() = %v, want 50", pct)
	}
	if got := ClassifySeverity(got.Percentage()); got != types.SeverityModerate {
		t.Fatalf("classification = %q, want moderate", got)
	}
}
