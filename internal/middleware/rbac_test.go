package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SWEConnect/backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRBACTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Project{}, &model.Member{}))
	return db
}

func rbacRequest(t *testing.T, db *gorm.DB, mw gin.HandlerFunc, userID uint, projectID uint) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/projects/:id/probe", func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}, mw, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d/probe", projectID), nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRequireProjectRole(t *testing.T) {
	db := newRBACTestDB(t)

	admin := model.User{Subject: "s-admin", Name: "admin", Status: 1}
	evaluator := model.User{Subject: "s-eval", Name: "eval", Status: 1}
	outsider := model.User{Subject: "s-out", Name: "out", Status: 1}
	require.NoError(t, db.Create(&admin).Error)
	require.NoError(t, db.Create(&evaluator).Error)
	require.NoError(t, db.Create(&outsider).Error)

	project := model.Project{Name: "swec"}
	require.NoError(t, db.Create(&project).Error)
	require.NoError(t, db.Create(&model.Member{ProjectID: project.ID, UserID: admin.ID, Type: model.MemberTypeAdmin}).Error)
	require.NoError(t, db.Create(&model.Member{ProjectID: project.ID, UserID: evaluator.ID, Type: model.MemberTypeEvaluator}).Error)

	// Admin-gated route
	assert.Equal(t, http.StatusOK, rbacRequest(t, db, RequireProjectAdmin(db), admin.ID, project.ID))
	assert.Equal(t, http.StatusForbidden, rbacRequest(t, db, RequireProjectAdmin(db), evaluator.ID, project.ID))
	assert.Equal(t, http.StatusForbidden, rbacRequest(t, db, RequireProjectAdmin(db), outsider.ID, project.ID))

	// Evaluator-gated route admits admins too
	assert.Equal(t, http.StatusOK, rbacRequest(t, db, RequireProjectEvaluator(db), admin.ID, project.ID))
	assert.Equal(t, http.StatusOK, rbacRequest(t, db, RequireProjectEvaluator(db), evaluator.ID, project.ID))
	assert.Equal(t, http.StatusForbidden, rbacRequest(t, db, RequireProjectEvaluator(db), outsider.ID, project.ID))

	// A membership in one project grants nothing in another
	other := model.Project{Name: "other"}
	require.NoError(t, db.Create(&other).Error)
	assert.Equal(t, http.StatusForbidden, rbacRequest(t, db, RequireProjectAdmin(db), admin.ID, other.ID))
}

func TestRequireProjectRoleBadProjectID(t *testing.T) {
	db := newRBACTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/projects/:id/probe", func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Next()
	}, RequireProjectAdmin(db), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects/abc/probe", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
