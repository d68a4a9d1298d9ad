package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

type QuestionOptionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, options []*types.QuestionOption) ([]*types.QuestionOption, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, optionIDs []uuid.UUID) ([]*types.QuestionOption, error)
	GetByQuestionIDs(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) ([]*types.QuestionOption, error)
	FullDeleteByQuestionIDs(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) error
}

type questionOptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionOptionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionOptionRepo {
	return &questionOptionRepo{db: db, log: baseLog.With("repo", "QuestionOptionRepo")}
}

func (r *questionOptionRepo) Create(ctx context.Context, tx *gorm.DB, options []*types.QuestionOption) ([]*types.QuestionOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(options) == 0 {
		return []*types.QuestionOption{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *questionOptionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, optionIDs []uuid.UUID) ([]*types.QuestionOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuestionOption
	if len(optionIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", optionIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *questionOptionRepo) GetByQuestionIDs(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) ([]*types.QuestionOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuestionOption
	if len(questionIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("question_id IN ?", questionIDs).
		Order("question_id, weight ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *questionOptionRepo) FullDeleteByQuestionIDs(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(questionIDs) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).
		Where("question_id IN ?", questionIDs).
		Delete(&types.QuestionOption{}).Error; err != nil {
		return err
	}
	return nil
}
