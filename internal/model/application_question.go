package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type QuestionType string

const (
	QuestionTypeFileUpload     QuestionType = "FILE_UPLOAD"
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeMultipleSelect QuestionType = "MULTIPLE_SELECT"
	QuestionTypeTextField      QuestionType = "TEXT_FIELD"
	QuestionTypeTextInput      QuestionType = "TEXT_INPUT"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeFileUpload, QuestionTypeMultipleChoice, QuestionTypeMultipleSelect,
		QuestionTypeTextField, QuestionTypeTextInput:
		return true
	}
	return false
}

// NeedsChoices reports whether the question type renders from a fixed
// choice list and therefore requires non-empty answer choices.
func (t QuestionType) NeedsChoices() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeMultipleSelect
}

type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	return json.Unmarshal(bytes, s)
}

type ApplicationQuestion struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	ApplicationID uint         `gorm:"not null;index:idx_application_id" json:"application_id"`
	OrderNumber   int          `gorm:"not null" json:"order_number"`
	Question      string       `gorm:"type:text;not null" json:"question"`
	Type          QuestionType `gorm:"type:varchar(20);not null" json:"type"`
	Required      bool         `gorm:"not null" json:"required"`
	AnswerChoices StringList   `gorm:"type:json" json:"answer_choices"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (ApplicationQuestion) TableName() string { return "application_questions" }
