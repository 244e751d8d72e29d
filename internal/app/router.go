package app

import (
	"schoolhub_backend/docs"
	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/middleware"
	"schoolhub_backend/internal/model"
	"schoolhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerCommonRoutes(authGroup, c)
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
		a.registerParentRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
		public.POST("/admissions/apply", c.admission.Apply)
	}
}

// 所有已登录角色可用的接口
func (a *App) registerCommonRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.PUT("/me/password", c.auth.ChangePassword)
	rg.PUT("/me/profile", c.user.UpdateProfile)

	rg.GET("/announcements", c.announcement.List)
	rg.GET("/announcements/:id", c.announcement.Get)

	rg.GET("/sections", c.section.List)
	rg.GET("/sections/:id", c.section.Get)
	rg.GET("/sections/:id/roster", c.section.Roster)
	rg.GET("/sections/:id/timetable", c.section.Timetable)
	rg.GET("/sections/:id/classes", c.class.ListBySection)

	rg.GET("/classes/:id", c.class.Get)
	rg.GET("/classes/:id/assignments", c.assignment.ListByClass)
	rg.GET("/classes/:id/materials", c.material.ListByClass)
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	student := rg.Group("/student")
	student.Use(middleware.RoleMiddleware(model.RoleStudent))
	{
		student.GET("/classes/:id/quizzes", c.studentQuiz.ListPublished)
		student.GET("/quizzes/:id", c.studentQuiz.Get)
		student.POST("/quizzes/:id/attempts", c.studentQuiz.Start)
		student.POST("/attempts/:id/submit", c.studentQuiz.Submit)
		student.GET("/quizzes/:id/result", c.studentQuiz.Result)

		student.POST("/assignments/:id/submit", c.assignment.Submit)
		student.GET("/grades", c.gradebook.MyGrades)
		student.GET("/classes/:id/summary", c.gradebook.MyClassSummary)
		student.GET("/attendance/summary", c.attendance.MySummary)
	}
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.RoleTeacher))
	{
		teacher.GET("/classes", c.class.MyClasses)
		teacher.GET("/timetable", c.class.MyTimetable)

		teacher.POST("/quizzes", c.quiz.Create)
		teacher.PUT("/quizzes/:id", c.quiz.Update)
		teacher.GET("/quizzes/:id", c.quiz.Get)
		teacher.GET("/classes/:id/quizzes", c.quiz.ListByClass)
		teacher.POST("/quizzes/:id/questions", c.quiz.AddQuestion)
		teacher.PUT("/quizzes/:id/questions/:qid", c.quiz.UpdateQuestion)
		teacher.DELETE("/quizzes/:id/questions/:qid", c.quiz.DeleteQuestion)
		teacher.POST("/quizzes/:id/publish", c.quiz.Publish)
		teacher.POST("/quizzes/:id/close", c.quiz.Close)
		teacher.GET("/quizzes/:id/pending", c.quiz.PendingGrading)
		teacher.POST("/attempts/:id/grade", c.quiz.GradeAnswer)
		teacher.GET("/quizzes/:id/statistics", c.quiz.Statistics)

		teacher.POST("/assignments", c.assignment.Create)
		teacher.PUT("/assignments/:id", c.assignment.Update)
		teacher.POST("/assignments/:id/attachment", c.assignment.Attach)
		teacher.GET("/assignments/:id/submissions", c.assignment.Submissions)
		teacher.POST("/submissions/:id/grade", c.assignment.Grade)

		teacher.POST("/grades", c.gradebook.Record)
		teacher.PUT("/grades/:id", c.gradebook.Update)
		teacher.DELETE("/grades/:id", c.gradebook.Delete)
		teacher.GET("/classes/:id/grades", c.gradebook.ClassGrades)

		teacher.POST("/classes/:id/attendance", c.attendance.Record)
		teacher.GET("/classes/:id/attendance", c.attendance.Sheet)
		teacher.GET("/classes/:id/attendance/summary", c.attendance.ClassSummary)

		teacher.POST("/announcements", c.announcement.Create)

		teacher.POST("/classes/:id/materials", c.material.Upload)
		teacher.DELETE("/materials/:id", c.material.Delete)
	}
}

func (a *App) registerParentRoutes(rg *gin.RouterGroup, c *controllers) {
	parent := rg.Group("/parent")
	parent.Use(middleware.RoleMiddleware(model.RoleParent))
	{
		parent.GET("/children", c.parent.Children)
		parent.GET("/children/:id/grades", c.parent.ChildGrades)
		parent.GET("/children/:id/attendance", c.parent.ChildAttendance)
		parent.GET("/children/:id/quizzes/:quizId/result", c.parent.ChildQuizResult)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/users", c.user.CreateStaff)
		admin.GET("/users", c.user.List)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)

		admin.GET("/admissions", c.admission.List)
		admin.GET("/admissions/:id", c.admission.Get)
		admin.POST("/admissions/:id/approve", c.admission.Approve)
		admin.POST("/admissions/:id/reject", c.admission.Reject)

		admin.POST("/sections", c.section.Create)
		admin.PUT("/sections/:id", c.section.Update)
		admin.POST("/sections/:id/enroll", c.section.Enroll)

		admin.POST("/classes", c.class.Create)
		admin.PUT("/classes/:id", c.class.Update)
		admin.PUT("/classes/:id/schedule", c.class.SetSchedule)

		admin.POST("/guardians", c.parent.CreateGuardian)
		admin.POST("/guardians/:id/students", c.parent.LinkStudent)

		admin.DELETE("/announcements/:id", c.announcement.Delete)
	}
}
