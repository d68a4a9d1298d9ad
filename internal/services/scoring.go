package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/ankitsingh13022003-code/MindCare/internal/pkg/errors"
	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/repos"
	"github.com/ankitsingh13022003-code/MindCare/internal/requestdata"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

// maxOptionWeight is the per-question score ceiling used to normalize totals.
// It is a domain constant, not derived from the options actually configured:
// an option with weight above it pushes the percentage past 100 and lands in
// severe, which is the intended behavior.
const maxOptionWeight = 4

// ScoreResult is the aggregate of one pass over the catalog with a set of
// submitted answers.
type ScoreResult struct {
	Total             int
	Anxiety           int
	Depression        int
	Stress            int
	General           int
	AnsweredQuestions int
}

// Percentage normalizes the total against the best possible score for the
// questions actually answered.
func (r ScoreResult) Percentage() float64 {
	if r.AnsweredQuestions == 0 {
		return 0
	}
	maxPossible := r.AnsweredQuestions * maxOptionWeight
	return float64(r.Total) / float64(maxPossible) * 100
}

// ScoreAnswers resolves each submitted answer against the catalog and
// accumulates the total and per-category scores. Questions with no submitted
// answer are skipped; so are answers whose option id does not belong to the
// question, which tolerates forms rendered before an admin edit.
func ScoreAnswers(questions []*types.Question, answers map[uuid.UUID]uuid.UUID) ScoreResult {
	var result ScoreResult
	for _, question := range questions {
		optionID, ok := answers[question.ID]
		if !ok {
			continue
		}
		weight, ok := resolveWeight(question, optionID)
		if !ok {
			continue
		}
		result.Total += weight
		switch types.NormalizeCategory(question.Category) {
		case types.CategoryAnxiety:
			result.Anxiety += weight
		case types.CategoryDepression:
			result.Depression += weight
		case types.CategoryStress:
			result.Stress += weight
		default:
			result.General += weight
		}
		result.AnsweredQuestions++
	}
	return result
}

func resolveWeight(question *types.Question, optionID uuid.UUID) (int, bool) {
	for _, option := range question.Options {
		if option.ID == optionID {
			return option.Weight, true
		}
	}
	return 0, false
}

// ClassifySeverity maps a percentage onto a severity band. Bands are
// inclusive-low/exclusive-high; everything from 75 up is severe.
func ClassifySeverity(percentage float64) types.SeverityCategory {
	switch {
	case percentage < 25:
		return types.SeverityLow
	case percentage < 50:
		return types.SeverityMild
	case percentage < 75:
		return types.SeverityModerate
	default:
		return types.SeveritySevere
	}
}

type ScoringService interface {
	// SubmitAnswers scores a quiz submission for the context user and
	// persists the resulting assessment. answers maps question id to the
	// selected option id.
	SubmitAnswers(ctx context.Context, answers map[uuid.UUID]uuid.UUID) (*types.Assessment, error)
}

type scoringService struct {
	db             *gorm.DB
	log            *logger.Logger
	questionRepo   repos.QuestionRepo
	assessmentRepo repos.AssessmentRepo
}

func NewScoringService(db *gorm.DB, log *logger.Logger, questionRepo repos.QuestionRepo, assessmentRepo repos.AssessmentRepo) ScoringService {
	return &scoringService{
		db:             db,
		log:            log.With("service", "ScoringService"),
		questionRepo:   questionRepo,
		assessmentRepo: assessmentRepo,
	}
}

func (ss *scoringService) SubmitAnswers(ctx context.Context, answers map[uuid.UUID]uuid.UUID) (*types.Assessment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}

	var assessment *types.Assessment
	if err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questions, err := ss.questionRepo.ListAll(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to load question catalog: %w", err)
		}

		result := ScoreAnswers(questions, answers)
		if result.AnsweredQuestions == 0 {
			return pkgerrors.ErrNoAnswers
		}
		category := ClassifySeverity(result.Percentage())

		created, err := ss.assessmentRepo.Create(ctx, tx, []*types.Assessment{
			{
				ID:              uuid.New(),
				UserID:          rd.UserID,
				TotalScore:      result.Total,
				AnxietyScore:    result.Anxiety,
				DepressionScore: result.Depression,
				StressScore:     result.Stress,
				GeneralScore:    result.General,
				OverallCategory: category,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create assessment: %w", err)
		}
		assessment = created[0]
		return nil
	}); err != nil {
		return nil, err
	}

	ss.log.Info("Assessment created",
		"user_id", rd.UserID,
		"total_score", assessment.TotalScore,
		"overall_category", assessment.OverallCategory,
	)
	return assessment, nil
}
