package handler

import (
	"github.com/SWEConnect/backend/internal/middleware"
	"github.com/SWEConnect/backend/internal/model"
	"github.com/SWEConnect/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ApplicationSubmissionHandler struct {
	submissionService *service.ApplicationSubmissionService
}

func NewApplicationSubmissionHandler(submissionService *service.ApplicationSubmissionService) *ApplicationSubmissionHandler {
	return &ApplicationSubmissionHandler{submissionService: submissionService}
}

// PUT /application-submissions
//
// Create-or-update branch is explicit: an absent application_submission_id
// means create, a present one means update. No sentinel values.
func (h *ApplicationSubmissionHandler) Upsert(c *gin.Context) {
	var req struct {
		ApplicationSubmissionID *uint                  `json:"application_submission_id"`
		ApplicationID           uint                   `json:"application_id" binding:"required"`
		Status                  model.SubmissionStatus `json:"status" binding:"required"`
		Answers                 []service.AnswerInput  `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}
	if !req.Status.Valid() {
		BadRequest(c, 40001, "提交状态无效")
		return
	}

	userID := middleware.GetCurrentUserID(c)
	submission, err := h.submissionService.Upsert(userID, req.ApplicationSubmissionID, req.ApplicationID, req.Status, req.Answers)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, submission)
}

// GET /application-submissions
func (h *ApplicationSubmissionHandler) ListForUser(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	submissions, err := h.submissionService.ListForUser(userID)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, submissions)
}

// GET /applications/:app_id/submission
func (h *ApplicationSubmissionHandler) GetByApplicationID(c *gin.Context) {
	appID := parseID(c.Param("app_id"))
	userID := middleware.GetCurrentUserID(c)

	submission, err := h.submissionService.GetByApplicationID(userID, appID)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	// No submission yet is a normal answer, not an error.
	Success(c, submission)
}

// DELETE /application-submissions/:id
func (h *ApplicationSubmissionHandler) Withdraw(c *gin.Context) {
	submissionID := parseID(c.Param("id"))
	userID := middleware.GetCurrentUserID(c)

	if err := h.submissionService.Withdraw(userID, submissionID); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}

// GET /projects/:id/application-submissions/:sid
func (h *ApplicationSubmissionHandler) GetByIDForEvaluator(c *gin.Context) {
	submissionID := parseID(c.Param("sid"))

	submission, err := h.submissionService.GetByIDForEvaluator(submissionID)
	if err != nil {
		ServiceError(c, err)
		return
	}

	data := gin.H{
		"id":             submission.ID,
		"application_id": submission.ApplicationID,
		"status":         submission.Status,
		"answers":        submission.Answers,
		"application":    submission.Application,
		"evaluation":     submission.Evaluation,
		"created_at":     submission.CreatedAt,
		"updated_at":     submission.UpdatedAt,
	}
	if submission.User != nil {
		data["submitter"] = submission.User.Brief()
	}
	Success(c, data)
}

// PUT /projects/:id/application-submissions/:sid/evaluation
func (h *ApplicationSubmissionHandler) UpsertEvaluation(c *gin.Context) {
	submissionID := parseID(c.Param("sid"))
	evaluatorID := middleware.GetCurrentUserID(c)

	var req struct {
		Decision model.EvaluationDecision `json:"decision" binding:"required"`
		Notes    string                   `json:"notes" binding:"max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}
	if !req.Decision.Valid() {
		BadRequest(c, 40001, "评审结论无效")
		return
	}

	evaluation, err := h.submissionService.UpsertEvaluation(evaluatorID, submissionID, req.Decision, req.Notes)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, evaluation)
}
