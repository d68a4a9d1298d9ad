package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/repos"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

// recentMessageLimit bounds the overview's message preview.
const recentMessageLimit = 5

type AdminOverview struct {
	TotalQuestions   int64                   `json:"total_questions"`
	TotalAssessments int64                   `json:"total_assessments"`
	TotalMessages    int64                   `json:"total_messages"`
	RecentMessages   []*types.ContactMessage `json:"recent_messages"`
}

type AdminService interface {
	Overview(ctx context.Context) (*AdminOverview, error)
}

type adminService struct {
	db          *gorm.DB
	log         *logger.Logger
	qRepo       repos.QuestionRepo
	aRepo       repos.AssessmentRepo
	messageRepo repos.ContactMessageRepo
}

func NewAdminService(db *gorm.DB, log *logger.Logger, qRepo repos.QuestionRepo, aRepo repos.AssessmentRepo, messageRepo repos.ContactMessageRepo) AdminService {
	return &adminService{
		db:          db,
		log:         log.With("service", "AdminService"),
		qRepo:       qRepo,
		aRepo:       aRepo,
		messageRepo: messageRepo,
	}
}

func (s *adminService) Overview(ctx context.Context) (*AdminOverview, error) {
	overview := &AdminOverview{}
	var err error
	if overview.TotalQuestions, err = s.qRepo.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	if overview.TotalAssessments, err = s.aRepo.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}
	if overview.TotalMessages, err = s.messageRepo.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	if overview.RecentMessages, err = s.messageRepo.List(ctx, nil, recentMessageLimit); err != nil {
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}
	return overview, nil
}
