package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/ankitsingh13022003-code/MindCare/internal/repos/testutil"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

func TestQuestionOptionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewQuestionOptionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	question := testutil.SeedQuestion(t, ctx, tx, "option repo question", types.CategoryGeneral, 0, 1, 2)

	byQuestion, err := repo.GetByQuestionIDs(ctx, tx, []uuid.UUID{question.ID})
	if err != nil {
		t.Fatalf("GetByQuestionIDs: %v", err)
	}
	if len(byQuestion) != 3 {
		t.Fatalf("GetByQuestionIDs: expected 3 options, got %d", len(byQuestion))
	}

	byID, err := repo.GetByIDs(ctx, tx, []uuid.UUID{byQuestion[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(byID) != 1 || byID[0].QuestionID != question.ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", byID)
	}

	if err := repo.FullDeleteByQuestionIDs(ctx, tx, []uuid.UUID{question.ID}); err != nil {
		t.Fatalf("FullDeleteByQuestionIDs: %v", err)
	}
	byQuestion, err = repo.GetByQuestionIDs(ctx, tx, []uuid.UUID{question.ID})
	if err != nil {
		t.Fatalf("GetByQuestionIDs after delete: %v", err)
	}
	if len(byQuestion) != 0 {
		t.Fatalf("expected no options after delete, got %d", len(byQuestion))
	}
}
