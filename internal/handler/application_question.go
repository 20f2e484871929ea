package handler

import (
	"github.com/SWEConnect/backend/internal/model"
	"github.com/SWEConnect/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ApplicationQuestionHandler struct {
	questionService *service.ApplicationQuestionService
}

func NewApplicationQuestionHandler(questionService *service.ApplicationQuestionService) *ApplicationQuestionHandler {
	return &ApplicationQuestionHandler{questionService: questionService}
}

// POST /projects/:id/applications/:app_id/questions
func (h *ApplicationQuestionHandler) Create(c *gin.Context) {
	appID := parseID(c.Param("app_id"))

	var req struct {
		OrderNumber   int                `json:"order_number"`
		Question      string             `json:"question" binding:"required"`
		Type          model.QuestionType `json:"type" binding:"required"`
		Required      bool               `json:"required"`
		AnswerChoices []string           `json:"answer_choices"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}
	if !req.Type.Valid() {
		BadRequest(c, 40001, "问题类型无效")
		return
	}

	q, err := h.questionService.Create(appID, req.OrderNumber, req.Question, req.Type, req.Required, req.AnswerChoices)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, q)
}

// DELETE /projects/:id/applications/:app_id/questions
func (h *ApplicationQuestionHandler) DeleteByApplication(c *gin.Context) {
	appID := parseID(c.Param("app_id"))

	if err := h.questionService.DeleteByApplicationID(appID); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}
