package model

import "time"

type MemberType string

const (
	MemberTypeAdmin     MemberType = "ADMIN"
	MemberTypeEvaluator MemberType = "EVALUATOR"
)

type Member struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProjectID uint       `gorm:"not null;uniqueIndex:uk_project_user" json:"project_id"`
	UserID    uint       `gorm:"not null;uniqueIndex:uk_project_user;index:idx_members_user_id" json:"user_id"`
	Type      MemberType `gorm:"type:varchar(10);not null" json:"type"`
	JoinedAt  time.Time  `gorm:"autoCreateTime" json:"joined_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Member) TableName() string { return "members" }
