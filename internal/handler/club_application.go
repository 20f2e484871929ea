package handler

import (
	"github.com/SWEConnect/backend/internal/model"
	"github.com/SWEConnect/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Club-level application questions are gated only by authentication,
// unlike project-level questions which require a project admin. That
// asymmetry mirrors the product today; do not tighten it here without
// a product decision.
type ClubApplicationHandler struct {
	clubService *service.ClubApplicationService
}

func NewClubApplicationHandler(clubService *service.ClubApplicationService) *ClubApplicationHandler {
	return &ClubApplicationHandler{clubService: clubService}
}

// POST /club-applications
func (h *ClubApplicationHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,max=128"`
		Description string `json:"description" binding:"max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}

	app, err := h.clubService.Create(req.Name, req.Description)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, app)
}

// GET /club-applications
func (h *ClubApplicationHandler) List(c *gin.Context) {
	apps, err := h.clubService.List()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, apps)
}

// POST /club-applications/:id/questions
func (h *ClubApplicationHandler) CreateQuestion(c *gin.Context) {
	clubAppID := parseID(c.Param("id"))

	var req struct {
		OrderNumber int                `json:"order_number"`
		Question    string             `json:"question" binding:"required"`
		Type        model.QuestionType `json:"type" binding:"required"`
		Required    bool               `json:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}
	if !req.Type.Valid() {
		BadRequest(c, 40001, "问题类型无效")
		return
	}

	q, err := h.clubService.CreateQuestion(clubAppID, req.OrderNumber, req.Question, req.Type, req.Required)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, q)
}

// PUT /club-application-questions/:id
func (h *ClubApplicationHandler) UpdateQuestion(c *gin.Context) {
	questionID := parseID(c.Param("id"))

	var req struct {
		OrderNumber int                `json:"order_number"`
		Question    string             `json:"question" binding:"required"`
		Type        model.QuestionType `json:"type" binding:"required"`
		Required    bool               `json:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}
	if !req.Type.Valid() {
		BadRequest(c, 40001, "问题类型无效")
		return
	}

	q, err := h.clubService.UpdateQuestion(questionID, req.OrderNumber, req.Question, req.Type, req.Required)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, q)
}

// DELETE /club-applications/:id/questions
func (h *ClubApplicationHandler) DeleteAllQuestions(c *gin.Context) {
	clubAppID := parseID(c.Param("id"))

	if err := h.clubService.DeleteAllQuestions(clubAppID); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}
