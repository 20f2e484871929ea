package service

import (
	"fmt"
	"time"

	"github.com/SWEConnect/backend/internal/model"
	"github.com/SWEConnect/backend/pkg/idp"
	jwtpkg "github.com/SWEConnect/backend/pkg/jwt"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	oauth     *idp.OAuthClient
	jwtSecret string
	jwtExpire int
}

func NewAuthService(db *gorm.DB, oauth *idp.OAuthClient, jwtSecret string, jwtExpire int) *AuthService {
	return &AuthService{
		db:        db,
		oauth:     oauth,
		jwtSecret: jwtSecret,
		jwtExpire: jwtExpire,
	}
}

func (s *AuthService) GetAuthURL(state string) string {
	return s.oauth.AuthURL(state)
}

// HandleCallback finishes the identity provider login: exchanges the code,
// upserts the user by IdP subject and issues a session token.
func (s *AuthService) HandleCallback(code string) (*model.User, string, time.Time, bool, error) {
	accessToken, err := s.oauth.ExchangeCode(code)
	if err != nil {
		return nil, "", time.Time{}, false, fmt.Errorf("idp auth: %w", err)
	}
	userInfo, err := s.oauth.GetUserInfo(accessToken)
	if err != nil {
		return nil, "", time.Time{}, false, fmt.Errorf("idp userinfo: %w", err)
	}

	var user model.User
	isNew := false

	result := s.db.Where("subject = ?", userInfo.Subject).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			isNew = true
			user = model.User{
				Subject: userInfo.Subject,
				Name:    userInfo.Name,
				Avatar:  userInfo.Avatar,
				Email:   userInfo.Email,
				Status:  1,
			}
			if err := s.db.Create(&user).Error; err != nil {
				return nil, "", time.Time{}, false, fmt.Errorf("create user: %w", err)
			}
		} else {
			return nil, "", time.Time{}, false, result.Error
		}
	}

	now := time.Now()
	s.db.Model(&user).Updates(map[string]interface{}{
		"name":          userInfo.Name,
		"avatar":        userInfo.Avatar,
		"email":         userInfo.Email,
		"last_login_at": &now,
	})

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID, s.jwtExpire)
	if err != nil {
		return nil, "", time.Time{}, false, fmt.Errorf("generate token: %w", err)
	}

	return &user, token, expireAt, isNew, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) RefreshToken(userID uint) (string, time.Time, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return "", time.Time{}, err
	}
	return jwtpkg.GenerateToken(s.jwtSecret, user.ID, s.jwtExpire)
}

// SearchUsers matches users by name or email for the member picker.
func (s *AuthService) SearchUsers(keyword string, limit int) ([]model.UserBrief, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	var users []model.User
	query := s.db.Model(&model.User{}).Where("status = 1")
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if err := query.Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	briefs := make([]model.UserBrief, 0, len(users))
	for i := range users {
		briefs = append(briefs, users[i].Brief())
	}
	return briefs, nil
}
