package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ankitsingh13022003-code/MindCare/internal/repos/testutil"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

func TestUserTokenRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserTokenRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "tokenrepo@example.com")

	created, err := repo.Create(ctx, tx, []*types.UserToken{
		{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  "access-" + uuid.NewString(),
			RefreshToken: "refresh-" + uuid.NewString(),
			ExpiresAt:    time.Now().Add(time.Hour),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	token := created[0]

	byUser, err := repo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != token.ID {
		t.Fatalf("GetByUserIDs: unexpected result: %+v", byUser)
	}

	byRefresh, err := repo.GetByRefreshTokens(ctx, tx, []string{token.RefreshToken})
	if err != nil {
		t.Fatalf("GetByRefreshTokens: %v", err)
	}
	if len(byRefresh) != 1 || byRefresh[0].UserID != user.ID {
		t.Fatalf("GetByRefreshTokens: unexpected result: %+v", byRefresh)
	}

	if err := repo.FullDeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); err != nil {
		t.Fatalf("FullDeleteByUserIDs: %v", err)
	}
	byUser, err = repo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs after delete: %v", err)
	}
	if len(byUser) != 0 {
		t.Fatalf("expected no tokens after delete, got %d", len(byUser))
	}
}
