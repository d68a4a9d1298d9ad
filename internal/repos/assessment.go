package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

// CategoryCount is one bucket of a user's severity distribution.
type CategoryCount struct {
	OverallCategory types.SeverityCategory `json:"overall_category"`
	Count           int64                  `json:"count"`
}

// AssessmentRepo is append-only: assessments are created once per quiz
// submission and never updated. Rows disappear only through the user cascade.
type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assessments []*types.Assessment) ([]*types.Assessment, error)
	// GetByIDForUser scopes the lookup to the owning user. A row owned by
	// someone else behaves exactly like a missing row.
	GetByIDForUser(ctx context.Context, tx *gorm.DB, assessmentID, userID uuid.UUID) (*types.Assessment, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Assessment, error)
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	AverageTotalScoreByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (float64, error)
	CategoryCountsByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]CategoryCount, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (r *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessments []*types.Assessment) ([]*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(assessments) == 0 {
		return []*types.Assessment{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, assessmentID, userID uuid.UUID) (*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Assessment
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", assessmentID, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *assessmentRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Assessment
	q := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *assessmentRepo) AverageTotalScoreByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var avg *float64
	if err := transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Where("user_id = ?", userID).
		Select("AVG(total_score)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *assessmentRepo) CategoryCountsByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]CategoryCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []CategoryCount
	if err := transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Where("user_id = ?", userID).
		Select("overall_category, COUNT(id) AS count").
		Group("overall_category").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
