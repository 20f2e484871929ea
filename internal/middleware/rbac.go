package middleware

import (
	"net/http"
	"strconv"

	"github.com/SWEConnect/backend/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireProjectRole gates a route on the caller holding a membership of
// one of the given types in the project named by the :id path param.
// The matched membership type is stashed in the context.
func RequireProjectRole(db *gorm.DB, types ...model.MemberType) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || projectID == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    40001,
				"message": "项目 ID 无效",
				"data":    nil,
			})
			return
		}

		userID := GetCurrentUserID(c)
		var member model.Member
		if err := db.Where("project_id = ? AND user_id = ?", projectID, userID).
			First(&member).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    40301,
				"message": "权限不足",
				"data":    nil,
			})
			return
		}

		for _, t := range types {
			if member.Type == t {
				c.Set("memberType", member.Type)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    40301,
			"message": "权限不足",
			"data":    nil,
		})
	}
}

// RequireProjectAdmin restricts a route to project admins.
func RequireProjectAdmin(db *gorm.DB) gin.HandlerFunc {
	return RequireProjectRole(db, model.MemberTypeAdmin)
}

// RequireProjectEvaluator admits evaluators and admins alike.
func RequireProjectEvaluator(db *gorm.DB) gin.HandlerFunc {
	return RequireProjectRole(db, model.MemberTypeAdmin, model.MemberTypeEvaluator)
}

func GetCurrentMemberType(c *gin.Context) model.MemberType {
	v, exists := c.Get("memberType")
	if !exists {
		return ""
	}
	return v.(model.MemberType)
}
