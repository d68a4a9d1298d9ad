package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

type ContactMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, messages []*types.ContactMessage) ([]*types.ContactMessage, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, messageIDs []uuid.UUID) ([]*types.ContactMessage, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ContactMessage, error)
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, messageIDs []uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type contactMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactMessageRepo(db *gorm.DB, baseLog *logger.Logger) ContactMessageRepo {
	return &contactMessageRepo{db: db, log: baseLog.With("repo", "ContactMessageRepo")}
}

func (r *contactMessageRepo) Create(ctx context.Context, tx *gorm.DB, messages []*types.ContactMessage) ([]*types.ContactMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(messages) == 0 {
		return []*types.ContactMessage{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactMessageRepo) GetByIDs(ctx context.Context, tx *gorm.DB, messageIDs []uuid.UUID) ([]*types.ContactMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ContactMessage
	if len(messageIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", messageIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contactMessageRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ContactMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ContactMessage
	q := transaction.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contactMessageRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, messageIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(messageIDs) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", messageIDs).
		Delete(&types.ContactMessage{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *contactMessageRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ContactMessage{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
