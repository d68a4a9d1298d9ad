package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, text string, category types.QuestionCategory, weights ...int) *types.Question {
	tb.Helper()
	q := &types.Question{
		ID:       uuid.New(),
		Text:     text,
		Category: category,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	for _, w := range weights {
		opt := &types.QuestionOption{
			ID:         uuid.New(),
			QuestionID: q.ID,
			Text:       "option",
			Weight:     w,
		}
		if err := tx.WithContext(ctx).Create(opt).Error; err != nil {
			tb.Fatalf("seed option: %v", err)
		}
		q.Options = append(q.Options, *opt)
	}
	return q
}

func SeedAssessment(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, total int, category types.SeverityCategory) *types.Assessment {
	tb.Helper()
	a := &types.Assessment{
		ID:              uuid.New(),
		UserID:          userID,
		TotalScore:      total,
		OverallCategory: category,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return a
}
