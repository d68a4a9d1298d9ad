package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/ankitsingh13022003-code/MindCare/internal/pkg/errors"
	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/repos"
	"github.com/ankitsingh13022003-code/MindCare/internal/requestdata"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

// historyPageSize bounds the dashboard history query.
const historyPageSize = 10

// DashboardStats summarizes a user's assessment history.
type DashboardStats struct {
	Assessments      []*types.Assessment   `json:"assessments"`
	TotalAssessments int64                 `json:"total_assessments"`
	AverageScore     float64               `json:"avg_score"`
	Latest           *types.Assessment     `json:"latest_assessment,omitempty"`
	CategoryCounts   []repos.CategoryCount `json:"category_counts"`
}

type AssessmentService interface {
	ListForUser(ctx context.Context) ([]*types.Assessment, error)
	// GetForUser fetches one assessment scoped to the context user. Rows
	// owned by other users surface as ErrNotFound.
	GetForUser(ctx context.Context, assessmentID uuid.UUID) (*types.Assessment, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	assessmentRepo repos.AssessmentRepo
}

func NewAssessmentService(db *gorm.DB, log *logger.Logger, assessmentRepo repos.AssessmentRepo) AssessmentService {
	return &assessmentService{
		db:             db,
		log:            log.With("service", "AssessmentService"),
		assessmentRepo: assessmentRepo,
	}
}

func (as *assessmentService) ListForUser(ctx context.Context) ([]*types.Assessment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	assessments, err := as.assessmentRepo.ListByUserID(ctx, nil, rd.UserID, historyPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

func (as *assessmentService) GetForUser(ctx context.Context, assessmentID uuid.UUID) (*types.Assessment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	assessment, err := as.assessmentRepo.GetByIDForUser(ctx, nil, assessmentID, rd.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	return assessment, nil
}

func (as *assessmentService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}

	assessments, err := as.ListForUser(ctx)
	if err != nil {
		return nil, err
	}
	count, err := as.assessmentRepo.CountByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}
	stats := &DashboardStats{
		Assessments:      assessments,
		TotalAssessments: count,
		CategoryCounts:   []repos.CategoryCount{},
	}
	if count == 0 {
		return stats, nil
	}

	avg, err := as.assessmentRepo.AverageTotalScoreByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to average assessments: %w", err)
	}
	stats.AverageScore = math.Round(avg*10) / 10
	// The count and the history list are separate reads; a submission
	// committing between them can make them disagree, so the latest row
	// comes from the list, not the count.
	if len(assessments) > 0 {
		stats.Latest = assessments[0]
	}

	counts, err := as.assessmentRepo.CategoryCountsByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category distribution: %w", err)
	}
	stats.CategoryCounts = counts
	return stats, nil
}
