package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/ankitsingh13022003-code/MindCare/internal/pkg/errors"
	"github.com/ankitsingh13022003-code/MindCare/internal/repos"
	"github.com/ankitsingh13022003-code/MindCare/internal/repos/testutil"
	"github.com/ankitsingh13022003-code/MindCare/internal/requestdata"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

// Service-level tests commit real transactions, so each test seeds its own
// rows and removes them afterwards.

func seedServiceUser(t *testing.T, db *gorm.DB, email string) *types.User {
	t.Helper()
	u := &types.User{ID: uuid.New(), Email: email, Password: "pw"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() {
		db.Where("user_id = ?", u.ID).Delete(&types.Assessment{})
		db.Where("user_id = ?", u.ID).Delete(&types.UserToken{})
		db.Where("id = ?", u.ID).Delete(&types.User{})
	})
	return u
}

func seedServiceQuestion(t *testing.T, db *gorm.DB, category types.QuestionCategory, weights ...int) *types.Question {
	t.Helper()
	q := &types.Question{ID: uuid.New(), Text: "q-" + uuid.NewString(), Category: category}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	for _, w := range weights {
		opt := types.QuestionOption{ID: uuid.New(), QuestionID: q.ID, Text: "opt", Weight: w}
		if err := db.Create(&opt).Error; err != nil {
			t.Fatalf("seed option: %v", err)
		}
		q.Options = append(q.Options, opt)
	}
	t.Cleanup(func() {
		db.Where("question_id = ?", q.ID).Delete(&types.QuestionOption{})
		db.Where("id = ?", q.ID).Delete(&types.Question{})
	})
	return q
}

func userCtx(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

func TestScoringServiceSubmitAnswers(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)

	questionRepo := repos.NewQuestionRepo(db, log)
	assessmentRepo := repos.NewAssessmentRepo(db, log)
	svc := NewScoringService(db, log, questionRepo, assessmentRepo)

	user := seedServiceUser(t, db, "scoring-svc@example.com")
	anxiety := seedServiceQuestion(t, db, types.CategoryAnxiety, 0, 1, 2, 3)
	stress := seedServiceQuestion(t, db, types.CategoryStress, 0, 1, 2, 3)

	ctx := userCtx(user.ID)
	assessment, err := svc.SubmitAnswers(ctx, map[uuid.UUID]uuid.UUID{
		anxiety.ID: anxiety.Options[3].ID,
		stress.ID:  stress.Options[1].ID,
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if assessment.TotalScore != 4 || assessment.AnxietyScore != 3 || assessment.StressScore != 1 {
		t.Fatalf("unexpected scores: %+v", assessment)
	}
	if assessment.OverallCategory != types.SeverityModerate {
		t.Fatalf("OverallCategory = %q, want moderate", assessment.OverallCategory)
	}

	stored, err := assessmentRepo.GetByIDForUser(ctx, nil, assessment.ID, user.ID)
	if err != nil {
		t.Fatalf("assessment was not persisted: %v", err)
	}
	if stored.TotalScore != 4 {
		t.Fatalf("persisted TotalScore = %d, want 4", stored.TotalScore)
	}
}

func TestScoringServiceZeroAnswersPersistsNothing(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)

	questionRepo := repos.NewQuestionRepo(db, log)
	assessmentRepo := repos.NewAssessmentRepo(db, log)
	svc := NewScoringService(db, log, questionRepo, assessmentRepo)

	user := seedServiceUser(t, db, "scoring-empty@example.com")
	q := seedServiceQuestion(t, db, types.CategoryGeneral, 0, 1, 2)

	ctx := userCtx(user.ID)
	// A stale option id is the only submission: skipped, so zero answered.
	_, err := svc.SubmitAnswers(ctx, map[uuid.UUID]uuid.UUID{q.ID: uuid.New()})
	if !errors.Is(err, pkgerrors.ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}

	count, err := assessmentRepo.CountByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("CountByUserID: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no assessment rows, got %d", count)
	}
}

func TestCatalogServiceRejectedEditChangesNothing(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)

	questionRepo := repos.NewQuestionRepo(db, log)
	optionRepo := repos.NewQuestionOptionRepo(db, log)
	svc := NewCatalogService(db, log, questionRepo, optionRepo)

	ctx := context.Background()
	created, err := svc.CreateQuestion(ctx, QuestionUpsertRequest{
		Text:     "How well do you sleep?",
		Category: types.CategoryGeneral,
		Options: []QuestionOptionInput{
			{Text: "Well", Weight: 0},
			{Text: "Poorly", Weight: 3},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	t.Cleanup(func() {
		db.Where("question_id = ?", created.ID).Delete(&types.QuestionOption{})
		db.Where("id = ?", created.ID).Delete(&types.Question{})
	})

	_, err = svc.UpdateQuestion(ctx, created.ID, QuestionUpsertRequest{
		Text:    "changed text",
		Options: []QuestionOptionInput{{Text: "Only", Weight: 0}},
	})
	if !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	reloaded, err := questionRepo.GetByIDs(ctx, nil, []uuid.UUID{created.ID})
	if err != nil || len(reloaded) != 1 {
		t.Fatalf("reload question: %v (%d rows)", err, len(reloaded))
	}
	if reloaded[0].Text != "How well do you sleep?" {
		t.Fatalf("rejected edit changed question text to %q", reloaded[0].Text)
	}
	if len(reloaded[0].Options) != 2 {
		t.Fatalf("rejected edit changed option set: %d options", len(reloaded[0].Options))
	}
}

// txScopedQuestionRepo only serves reads through an explicit transaction
// handle, the way a question visible inside an open transaction but already
// deleted by a concurrent writer would behave after commit.
type txScopedQuestionRepo struct {
	question *types.Question
}

func (r *txScopedQuestionRepo) Create(ctx context.Context, tx *gorm.DB, questions []*types.Question) ([]*types.Question, error) {
	r.question = questions[0]
	return questions, nil
}

func (r *txScopedQuestionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) ([]*types.Question, error) {
	if tx == nil || r.question == nil {
		return nil, nil
	}
	return []*types.Question{r.question}, nil
}

func (r *txScopedQuestionRepo) GetByTexts(ctx context.Context, tx *gorm.DB, texts []string) ([]*types.Question, error) {
	return nil, nil
}

func (r *txScopedQuestionRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Question, error) {
	return nil, nil
}

func (r *txScopedQuestionRepo) UpdateTextAndCategory(ctx context.Context, tx *gorm.DB, questionID uuid.UUID, text string, category types.QuestionCategory) error {
	return nil
}

func (r *txScopedQuestionRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) error {
	return nil
}

func (r *txScopedQuestionRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return 0, nil
}

type noopOptionRepo struct{}

func (noopOptionRepo) Create(ctx context.Context, tx *gorm.DB, options []*types.QuestionOption) ([]*types.QuestionOption, error) {
	return options, nil
}

func (noopOptionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, optionIDs []uuid.UUID) ([]*types.QuestionOption, error) {
	return nil, nil
}

func (noopOptionRepo) GetByQuestionIDs(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) ([]*types.QuestionOption, error) {
	return nil, nil
}

func (noopOptionRepo) FullDeleteByQuestionIDs(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) error {
	return nil
}

// The post-write read-back must run inside the write transaction: a create
// must return the new question even when it is not visible to reads outside
// that transaction.
func TestCatalogServiceCreateReadsBackInsideTransaction(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)

	qRepo := &txScopedQuestionRepo{}
	svc := NewCatalogService(db, log, qRepo, noopOptionRepo{})

	created, err := svc.CreateQuestion(context.Background(), QuestionUpsertRequest{
		Text:     "Read-back question",
		Category: types.CategoryGeneral,
		Options: []QuestionOptionInput{
			{Text: "A", Weight: 0},
			{Text: "B", Weight: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if created == nil || created.ID != qRepo.question.ID {
		t.Fatalf("CreateQuestion returned %+v, want the row just written", created)
	}
}

func TestAssessmentServiceOwnershipBoundary(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)

	assessmentRepo := repos.NewAssessmentRepo(db, log)
	svc := NewAssessmentService(db, log, assessmentRepo)

	owner := seedServiceUser(t, db, "owner-svc@example.com")
	other := seedServiceUser(t, db, "other-svc@example.com")

	a := &types.Assessment{ID: uuid.New(), UserID: owner.ID, TotalScore: 5, OverallCategory: types.SeverityMild}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	got, err := svc.GetForUser(userCtx(owner.ID), a.ID)
	if err != nil {
		t.Fatalf("GetForUser (owner): %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("GetForUser (owner): unexpected assessment %+v", got)
	}

	if _, err := svc.GetForUser(userCtx(other.ID), a.ID); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("GetForUser (not owner): expected ErrNotFound, got %v", err)
	}
}
