package handler

import (
	"time"

	"github.com/SWEConnect/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appService *service.ApplicationService
}

func NewApplicationHandler(appService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// POST /projects/:id/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	projectID := parseID(c.Param("id"))

	var req struct {
		Name        string     `json:"name" binding:"required,max=128"`
		Description string     `json:"description" binding:"max=5000"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "参数校验失败: "+err.Error())
		return
	}

	app, err := h.appService.Create(projectID, req.Name, req.Description, req.Deadline)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, app)
}

// GET /projects/:id/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	projectID := parseID(c.Param("id"))

	apps, err := h.appService.ListByProject(projectID)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, apps)
}

// GET /projects/:id/applications/:app_id
func (h *ApplicationHandler) GetDetail(c *gin.Context) {
	appID := parseID(c.Param("app_id"))

	app, err := h.appService.GetByID(appID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, app)
}

// PUT /projects/:id/applications/:app_id
func (h *ApplicationHandler) Update(c *gin.Context) {
	appID := parseID(c.Param("app_id"))

	var req struct {
		Name        *string    `json:"name" binding:"omitempty,max=128"`
		Description *string    `json:"description" binding:"omitempty,max=5000"`
		Deadline    *time.Time `json:"deadline"`
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
	if req.Deadline != nil {
		updates["deadline"] = req.Deadline
	}
	if len(updates) == 0 {
		BadRequest(c, 40001, "没有需要更新的字段")
		return
	}

	app, err := h.appService.Update(appID, updates)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, app)
}

// PUT /projects/:id/applications/:app_id/publish
func (h *ApplicationHandler) Publish(c *gin.Context) {
	appID := parseID(c.Param("app_id"))

	app, err := h.appService.Publish(appID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, app)
}

// PUT /projects/:id/applications/:app_id/close
func (h *ApplicationHandler) Close(c *gin.Context) {
	appID := parseID(c.Param("app_id"))

	app, err := h.appService.Close(appID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, app)
}
