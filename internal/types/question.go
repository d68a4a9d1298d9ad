package types

import (
	"time"

	"github.com/google/uuid"
)

// QuestionCategory partitions questions for per-category subscoring.
type QuestionCategory string

const (
	CategoryAnxiety    QuestionCategory = "anxiety"
	CategoryDepression QuestionCategory = "depression"
	CategoryStress     QuestionCategory = "stress"
	CategoryGeneral    QuestionCategory = "general"
)

// NormalizeCategory maps any category value onto one of the four known
// variants. Anything outside anxiety/depression/stress scores as general.
func NormalizeCategory(c QuestionCategory) QuestionCategory {
	switch c {
	case CategoryAnxiety, CategoryDepression, CategoryStress:
		return c
	default:
		return CategoryGeneral
	}
}

type Question struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Text      string           `gorm:"type:text;not null;column:text" json:"text"`
	Category  QuestionCategory `gorm:"not null;default:'general';column:category" json:"category"`
	Options   []QuestionOption `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuestionID;references:ID" json:"options"`
	CreatedAt time.Time        `gorm:"not null;default:now()" json:"created_at"`
}

func (Question) TableName() string { return "question" }
