package types

import (
	"github.com/google/uuid"
)

// QuestionOption is one selectable answer for a question. Weight is the score
// contribution of selecting it; the admin form keeps it in [0,4] but the data
// layer does not enforce the range.
type QuestionOption struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;index;not null" json:"question_id"`
	Text       string    `gorm:"not null;column:text" json:"text"`
	Weight     int       `gorm:"not null;column:weight" json:"weight"`
}

func (QuestionOption) TableName() string { return "question_option" }
