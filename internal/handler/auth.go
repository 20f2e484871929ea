package handler

import (
	"github.com/SWEConnect/backend/internal/middleware"
	"github.com/SWEConnect/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// GET /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	state := c.Query("state")
	Success(c, gin.H{
		"auth_url": h.authService.GetAuthURL(state),
	})
}

// GET /auth/callback
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		BadRequest(c, 40001, "缺少授权码")
		return
	}

	user, token, expireAt, isNew, err := h.authService.HandleCallback(code)
	if err != nil {
		Unauthorized(c, 40103, "登录失败: "+err.Error())
		return
	}

	Success(c, gin.H{
		"token":     token,
		"expire_at": expireAt,
		"is_new":    isNew,
		"user":      user.Brief(),
	})
}

// GET /auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, 40103, "未登录")
		return
	}
	Success(c, user.Brief())
}

// POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	token, expireAt, err := h.authService.RefreshToken(userID)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{
		"token":     token,
		"expire_at": expireAt,
	})
}

// GET /users/search
func (h *AuthHandler) SearchUsers(c *gin.Context) {
	keyword := c.Query("keyword")
	users, err := h.authService.SearchUsers(keyword, 20)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, users)
}
