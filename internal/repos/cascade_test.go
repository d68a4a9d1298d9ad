package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ankitsingh13022003-code/MindCare/internal/repos/testutil"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

// The FK chains are plain DDL, so they only get coverage by deleting parent
// rows and checking the dependents are gone.
func TestDeleteUserCascadesTokensAndAssessments(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "cascade-user@example.com")
	tokenRepo := NewUserTokenRepo(db, testutil.Logger(t))
	if _, err := tokenRepo.Create(ctx, tx, []*types.UserToken{
		{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  "access-" + uuid.NewString(),
			RefreshToken: "refresh-" + uuid.NewString(),
			ExpiresAt:    time.Now().Add(time.Hour),
		},
	}); err != nil {
		t.Fatalf("create token: %v", err)
	}
	testutil.SeedAssessment(t, ctx, tx, user.ID, 5, types.SeverityMild)

	if err := tx.Where("id = ?", user.ID).Delete(&types.User{}).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var tokenCount int64
	if err := tx.Model(&types.UserToken{}).Where("user_id = ?", user.ID).Count(&tokenCount).Error; err != nil {
		t.Fatalf("count tokens: %v", err)
	}
	if tokenCount != 0 {
		t.Fatalf("expected tokens to cascade with user delete, %d remain", tokenCount)
	}

	var assessmentCount int64
	if err := tx.Model(&types.Assessment{}).Where("user_id = ?", user.ID).Count(&assessmentCount).Error; err != nil {
		t.Fatalf("count assessments: %v", err)
	}
	if assessmentCount != 0 {
		t.Fatalf("expected assessments to cascade with user delete, %d remain", assessmentCount)
	}
}

func TestDeleteQuestionCascadesOptions(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	question := testutil.SeedQuestion(t, ctx, tx, "cascade question", types.CategoryGeneral, 0, 1, 2)

	if err := tx.Where("id = ?", question.ID).Delete(&types.Question{}).Error; err != nil {
		t.Fatalf("delete question: %v", err)
	}

	var optionCount int64
	if err := tx.Model(&types.QuestionOption{}).Where("question_id = ?", question.ID).Count(&optionCount).Error; err != nil {
		t.Fatalf("count options: %v", err)
	}
	if optionCount != 0 {
		t.Fatalf("expected options to cascade with question delete, %d remain", optionCount)
	}
}
