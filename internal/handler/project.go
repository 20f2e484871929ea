package handler

import (
	"github.com/SWEConnect/backend/internal/middleware"
	"github.com/SWEConnect/backend/internal/model"
	"github.com/SWEConnect/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,max=128"`
		Description string `json:"description" binding:"max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.Create(req.Name, req.Description, userID)
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, gin.H{
		"id":          project.ID,
		"name":        project.Name,
		"description": project.Description,
		"created_at":  project.CreatedAt,
	})
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	userID := middleware.GetCurrentUserID(c)
	keyword := c.Query("keyword")

	projects, total, err := h.projectService.List(userID, keyword, page, pageSize)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		list = append(list, gin.H{
			"id":                p.ID,
			"name":              p.Name,
			"description":       p.Description,
			"member_count":      h.projectService.GetMemberCount(p.ID),
			"application_count": h.projectService.GetApplicationCount(p.ID),
			"created_at":        p.CreatedAt,
			"updated_at":        p.UpdatedAt,
		})
	}
	SuccessPaged(c, list, total, page, pageSize)
}

// GET /projects/:id
func (h *ProjectHandler) GetDetail(c *gin.Context) {
	id := parseID(c.Param("id"))
	userID := middleware.GetCurrentUserID(c)

	if !h.projectService.IsMember(id, userID) {
		Forbidden(c, 40302, "非项目成员，无权查看")
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		NotFound(c, 40402, "项目不存在")
		return
	}

	members := make([]gin.H, 0)
	for _, m := range project.Members {
		item := gin.H{
			"id":        m.UserID,
			"type":      m.Type,
			"joined_at": m.JoinedAt,
		}
		if m.User != nil {
			item["name"] = m.User.Name
			item["avatar"] = m.User.Avatar
		}
		members = append(members, item)
	}

	Success(c, gin.H{
		"id":          project.ID,
		"name":        project.Name,
		"description": project.Description,
		"members":     members,
		"created_at":  project.CreatedAt,
		"updated_at":  project.UpdatedAt,
	})
}

// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id := parseID(c.Param("id"))

	var req struct {
		Name        *string `json:"name" binding:"omitempty,max=128"`
		Description *string `json:"description" binding:"omitempty,max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		BadRequest(c, 40001, "没有需要更新的字段")
		return
	}

	project, err := h.projectService.Update(id, updates)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, project)
}

// POST /projects/:id/members
func (h *ProjectHandler) AddMembers(c *gin.Context) {
	id := parseID(c.Param("id"))

	var req struct {
		UserIDs []uint           `json:"user_ids" binding:"required,min=1"`
		Type    model.MemberType `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}
	if req.Type != model.MemberTypeAdmin && req.Type != model.MemberTypeEvaluator {
		BadRequest(c, 40001, "成员类型必须为 ADMIN 或 EVALUATOR")
		return
	}

	added, skipped, err := h.projectService.AddMembers(id, req.UserIDs, req.Type)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"added":   added,
		"skipped": skipped,
	})
}

// DELETE /projects/:id/members/:user_id
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	id := parseID(c.Param("id"))
	targetID := parseID(c.Param("user_id"))
	callerID := middleware.GetCurrentUserID(c)

	if err := h.projectService.RemoveMember(id, targetID, callerID); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}

// PUT /projects/:id/members/:user_id
func (h *ProjectHandler) UpdateMemberType(c *gin.Context) {
	id := parseID(c.Param("id"))
	targetID := parseID(c.Param("user_id"))
	callerID := middleware.GetCurrentUserID(c)

	var req struct {
		Type model.MemberType `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}
	if req.Type != model.MemberTypeAdmin && req.Type != model.MemberTypeEvaluator {
		BadRequest(c, 40001, "成员类型必须为 ADMIN 或 EVALUATOR")
		return
	}

	if err := h.projectService.UpdateMemberType(id, targetID, callerID, req.Type); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}
