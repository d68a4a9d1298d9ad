package services

import (
	"context"
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

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ContactService interface {
	Submit(ctx context.Context, req ContactRequest) (*types.ContactMessage, error)
	List(ctx context.Context) ([]*types.ContactMessage, error)
	Get(ctx context.Context, messageID uuid.UUID) (*types.ContactMessage, error)
	Delete(ctx context.Context, messageID uuid.UUID) error
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	validate    *validator.Validate
	messageRepo repos.ContactMessageRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, messageRepo repos.ContactMessageRepo) ContactService {
	return &contactService{
		db:          db,
		log:         log.With("service", "ContactService"),
		validate:    validator.New(),
		messageRepo: messageRepo,
	}
}

func (cs *contactService) Submit(ctx context.Context, req ContactRequest) (*types.ContactMessage, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Message = strings.TrimSpace(req.Message)
	if err := cs.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %s", pkgerrors.ErrInvalidArgument, err.Error())
	}

	created, err := cs.messageRepo.Create(ctx, nil, []*types.ContactMessage{
		{
			ID:      uuid.New(),
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	cs.log.Info("Contact message received", "message_id", created[0].ID)
	return created[0], nil
}

func (cs *contactService) List(ctx context.Context) ([]*types.ContactMessage, error) {
	messages, err := cs.messageRepo.List(ctx, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (cs *contactService) Get(ctx context.Context, messageID uuid.UUID) (*types.ContactMessage, error) {
	found, err := cs.messageRepo.GetByIDs(ctx, nil, []uuid.UUID{messageID})
	if err != nil {
		return nil, fmt.Errorf("failed to load contact message: %w", err)
	}
	if len(found) == 0 {
		return nil, pkgerrors.ErrNotFound
	}
	return found[0], nil
}

func (cs *contactService) Delete(ctx context.Context, messageID uuid.UUID) error {
	found, err := cs.messageRepo.GetByIDs(ctx, nil, []uuid.UUID{messageID})
	if err != nil {
		return fmt.Errorf("failed to load contact message: %w", err)
	}
	if len(found) == 0 {
		return pkgerrors.ErrNotFound
	}
	return cs.messageRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{messageID})
}
