package types

import (
	"time"

	"github.com/google/uuid"
)

// SeverityCategory classifies an overall assessment result.
type SeverityCategory string

const (
	SeverityLow      SeverityCategory = "low"
	SeverityMild     SeverityCategory = "mild"
	SeverityModerate SeverityCategory = "moderate"
	SeveritySevere   SeverityCategory = "severe"
)

// Assessment is a snapshot of one quiz submission. Scores are copied at
// submission time and never recomputed from live question data; rows are
// created once and never updated.
type Assessment struct {
	ID              uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;index;not null" json:"user_id"`
	User            *User            `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	TotalScore      int              `gorm:"not null;column:total_score" json:"total_score"`
	AnxietyScore    int              `gorm:"not null;default:0;column:anxiety_score" json:"anxiety_score"`
	DepressionScore int              `gorm:"not null;default:0;column:depression_score" json:"depression_score"`
	StressScore     int              `gorm:"not null;default:0;column:stress_score" json:"stress_score"`
	GeneralScore    int              `gorm:"not null;default:0;column:general_score" json:"general_score"`
	OverallCategory SeverityCategory `gorm:"not null;column:overall_category" json:"overall_category"`
	CreatedAt       time.Time        `gorm:"not null;default:now()" json:"created_at"`
}

func (Assessment) TableName() string { return "assessment" }
