package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/ankitsingh13022003-code/MindCare/internal/pkg/errors"
	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/repos"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

// QuestionOptionInput is one (text, weight) row of a question's option set.
// The 0-4 range is the admin-form convention; scoring itself does not clamp.
type QuestionOptionInput struct {
	Text   string `json:"text" validate:"required"`
	Weight int    `json:"weight" validate:"gte=0,lte=4"`
}

// QuestionUpsertRequest replaces a question and its full option set as one
// unit. Fewer than two options rejects the whole edit.
type QuestionUpsertRequest struct {
	Text     string                 `json:"text" validate:"required"`
	Category types.QuestionCategory `json:"category"`
	Options  []QuestionOptionInput  `json:"options" validate:"min=2,dive"`
}

type CatalogService interface {
	ListQuestions(ctx context.Context) ([]*types.Question, error)
	CreateQuestion(ctx context.Context, req QuestionUpsertRequest) (*types.Question, error)
	UpdateQuestion(ctx context.Context, questionID uuid.UUID, req QuestionUpsertRequest) (*types.Question, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error
}

type catalogService struct {
	db         *gorm.DB
	log        *logger.Logger
	validate   *validator.Validate
	qRepo      repos.QuestionRepo
	optionRepo repos.QuestionOptionRepo
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, qRepo repos.QuestionRepo, optionRepo repos.QuestionOptionRepo) CatalogService {
	return &catalogService{
		db:         db,
		log:        log.With("service", "CatalogService"),
		validate:   validator.New(),
		qRepo:      qRepo,
		optionRepo: optionRepo,
	}
}

func (cs *catalogService) ListQuestions(ctx context.Context) ([]*types.Question, error) {
	questions, err := cs.qRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (cs *catalogService) CreateQuestion(ctx context.Context, req QuestionUpsertRequest) (*types.Question, error) {
	if err := cs.validateRequest(&req); err != nil {
		return nil, err
	}

	question := &types.Question{
		ID:       uuid.New(),
		Text:     req.Text,
		Category: types.NormalizeCategory(req.Category),
	}
	var created *types.Question
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.qRepo.Create(ctx, tx, []*types.Question{question}); err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
		if _, err := cs.optionRepo.Create(ctx, tx, buildOptions(question.ID, req.Options)); err != nil {
			return fmt.Errorf("failed to create question options: %w", err)
		}
		loaded, err := cs.reload(ctx, tx, question.ID)
		if err != nil {
			return err
		}
		created = loaded
		return nil
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateQuestion rewrites the question row and swaps the whole option set in
// one transaction, so a rejected edit leaves both untouched.
func (cs *catalogService) UpdateQuestion(ctx context.Context, questionID uuid.UUID, req QuestionUpsertRequest) (*types.Question, error) {
	if err := cs.validateRequest(&req); err != nil {
		return nil, err
	}

	var updated *types.Question
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cs.qRepo.UpdateTextAndCategory(ctx, tx, questionID, req.Text, types.NormalizeCategory(req.Category)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.ErrNotFound
			}
			return fmt.Errorf("failed to update question: %w", err)
		}
		if err := cs.optionRepo.FullDeleteByQuestionIDs(ctx, tx, []uuid.UUID{questionID}); err != nil {
			return fmt.Errorf("failed to clear question options: %w", err)
		}
		if _, err := cs.optionRepo.Create(ctx, tx, buildOptions(questionID, req.Options)); err != nil {
			return fmt.Errorf("failed to recreate question options: %w", err)
		}
		loaded, err := cs.reload(ctx, tx, questionID)
		if err != nil {
			return err
		}
		updated = loaded
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (cs *catalogService) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := cs.qRepo.GetByIDs(ctx, tx, []uuid.UUID{questionID})
		if err != nil {
			return fmt.Errorf("failed to load question: %w", err)
		}
		if len(found) == 0 {
			return pkgerrors.ErrNotFound
		}
		if err := cs.optionRepo.FullDeleteByQuestionIDs(ctx, tx, []uuid.UUID{questionID}); err != nil {
			return fmt.Errorf("failed to delete question options: %w", err)
		}
		if err := cs.qRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{questionID}); err != nil {
			return fmt.Errorf("failed to delete question: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	return nil
}

func (cs *catalogService) validateRequest(req *QuestionUpsertRequest) error {
	req.Text = strings.TrimSpace(req.Text)
	for i := range req.Options {
		req.Options[i].Text = strings.TrimSpace(req.Options[i].Text)
	}
	if err := cs.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", pkgerrors.ErrInvalidArgument, err.Error())
	}
	return nil
}

// reload reads the question back with its options in write order. It runs
// inside the caller's transaction so the read cannot miss the rows just
// written, or observe a concurrent delete that lands after commit.
func (cs *catalogService) reload(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) (*types.Question, error) {
	found, err := cs.qRepo.GetByIDs(ctx, tx, []uuid.UUID{questionID})
	if err != nil {
		return nil, fmt.Errorf("failed to reload question: %w", err)
	}
	if len(found) == 0 {
		return nil, pkgerrors.ErrNotFound
	}
	return found[0], nil
}

func buildOptions(questionID uuid.UUID, inputs []QuestionOptionInput) []*types.QuestionOption {
	options := make([]*types.QuestionOption, 0, len(inputs))
	for _, input := range inputs {
		options = append(options, &types.QuestionOption{
			ID:         uuid.New(),
			QuestionID: questionID,
			Text:       input.Text,
			Weight:     input.Weight,
		})
	}
	return options
}
