package router

import (
	"time"

	"github.com/SWEConnect/backend/internal/handler"
	"github.com/SWEConnect/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB                 *gorm.DB
	JWTSecret          string
	Limiter            *middleware.RedisLimiter
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	AuthHandler        *handler.AuthHandler
	ProjectHandler     *handler.ProjectHandler
	ApplicationHandler *handler.ApplicationHandler
	QuestionHandler    *handler.ApplicationQuestionHandler
	SubmissionHandler  *handler.ApplicationSubmissionHandler
	ClubHandler        *handler.ClubApplicationHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api/v1")

	// Public routes (no auth)
	auth := api.Group("/auth")
	{
		auth.GET("/login", deps.AuthHandler.Login)
		auth.GET("/callback", deps.AuthHandler.Callback)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	authed.Use(middleware.RateLimitMiddleware(deps.Limiter, deps.RateLimitRequests, deps.RateLimitWindow))
	{
		authed.GET("/auth/me", deps.AuthHandler.GetMe)
		authed.POST("/auth/refresh", deps.AuthHandler.RefreshToken)
		authed.GET("/users/search", deps.AuthHandler.SearchUsers)

		// Projects and member management
		projects := authed.Group("/projects")
		{
			projects.POST("", deps.ProjectHandler.Create)
			projects.GET("", deps.ProjectHandler.List)
			projects.GET("/:id", deps.ProjectHandler.GetDetail)
			projects.PUT("/:id", middleware.RequireProjectAdmin(deps.DB), deps.ProjectHandler.Update)
			projects.POST("/:id/members", middleware.RequireProjectAdmin(deps.DB), deps.ProjectHandler.AddMembers)
			projects.PUT("/:id/members/:user_id", middleware.RequireProjectAdmin(deps.DB), deps.ProjectHandler.UpdateMemberType)
			projects.DELETE("/:id/members/:user_id", middleware.RequireProjectAdmin(deps.DB), deps.ProjectHandler.RemoveMember)

			// Applications under projects
			projects.POST("/:id/applications", middleware.RequireProjectAdmin(deps.DB), deps.ApplicationHandler.Create)
			projects.GET("/:id/applications", middleware.RequireProjectEvaluator(deps.DB), deps.ApplicationHandler.List)
			projects.GET("/:id/applications/:app_id", middleware.RequireProjectEvaluator(deps.DB), deps.ApplicationHandler.GetDetail)
			projects.PUT("/:id/applications/:app_id", middleware.RequireProjectAdmin(deps.DB), deps.ApplicationHandler.Update)
			projects.PUT("/:id/applications/:app_id/publish", middleware.RequireProjectAdmin(deps.DB), deps.ApplicationHandler.Publish)
			projects.PUT("/:id/applications/:app_id/close", middleware.RequireProjectAdmin(deps.DB), deps.ApplicationHandler.Close)

			// Question set management (replace-set pattern)
			projects.POST("/:id/applications/:app_id/questions", middleware.RequireProjectAdmin(deps.DB), deps.QuestionHandler.Create)
			projects.DELETE("/:id/applications/:app_id/questions", middleware.RequireProjectAdmin(deps.DB), deps.QuestionHandler.DeleteByApplication)

			// Evaluator views
			projects.GET("/:id/application-submissions/:sid", middleware.RequireProjectEvaluator(deps.DB), deps.SubmissionHandler.GetByIDForEvaluator)
			projects.PUT("/:id/application-submissions/:sid/evaluation", middleware.RequireProjectEvaluator(deps.DB), deps.SubmissionHandler.UpsertEvaluation)
		}

		// Caller-scoped submissions
		authed.PUT("/application-submissions", deps.SubmissionHandler.Upsert)
		authed.GET("/application-submissions", deps.SubmissionHandler.ListForUser)
		authed.DELETE("/application-submissions/:id", deps.SubmissionHandler.Withdraw)
		authed.GET("/applications/:app_id/submission", deps.SubmissionHandler.GetByApplicationID)

		// Club-level application templates. Question routes are gated by
		// authentication only, matching current product behavior.
		clubs := authed.Group("/club-applications")
		{
			clubs.POST("", deps.ClubHandler.Create)
			clubs.GET("", deps.ClubHandler.List)
			clubs.POST("/:id/questions", deps.ClubHandler.CreateQuestion)
			clubs.DELETE("/:id/questions", deps.ClubHandler.DeleteAllQuestions)
		}
		authed.PUT("/club-application-questions/:id", deps.ClubHandler.UpdateQuestion)
	}
}
