package http

import (
	"github.com/gin-gonic/gin"

	"staffhub/internal/adapter/http/handlers"
	"staffhub/internal/adapter/http/middleware"
	"staffhub/internal/core/domain"
	"staffhub/pkg/token"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Employee  *handlers.EmployeeHandler
	Project   *handlers.ProjectHandler
	Task      *handlers.TaskHandler
	HRRequest *handlers.HRRequestHandler
}

// RegisterRoutes wires the REST surface. Paths mirror the portal frontend's
// expectations, so some carry historical double segments like
// /projects/projects.
func RegisterRoutes(r *gin.Engine, h Handlers, tokens *token.Manager) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())

	api.GET("/health", h.Health.CheckHealth)
	api.GET("/health/report", h.Health.CheckHealthReport)

	employees := api.Group("/employees")
	{
		employees.POST("/signup", h.Auth.Signup)
		employees.POST("/login", h.Auth.Login)
		employees.POST("/logout", h.Auth.Logout)

		authed := employees.Group("", middleware.AuthMiddleware(tokens))
		{
			authed.GET("/me", h.Auth.Me)
			authed.GET("/all", h.Employee.List)
			authed.GET("/employees", h.Employee.List)
			authed.PUT("/update/:employeeId", middleware.RequireRoles(domain.RoleHR), h.Employee.Update)
			authed.PUT("/reset-password/:employeeId", middleware.RequireRoles(domain.RoleHR), h.Employee.ResetPassword)

			authed.POST("/request-hr", h.HRRequest.Create)
			authed.GET("/my-requests", h.HRRequest.ListMine)
			authed.GET("/requests", middleware.RequireRoles(domain.RoleHR), h.HRRequest.ListAll)
			authed.PUT("/requests/:id/status", middleware.RequireRoles(domain.RoleHR), h.HRRequest.UpdateStatus)
		}
	}

	projects := api.Group("/projects", middleware.AuthMiddleware(tokens))
	{
		projects.POST("/create", middleware.RequireRoles(domain.RoleProjectManager), h.Project.Create)
		projects.GET("/projects", h.Project.List)
		projects.POST("/assign-tl/:projectId", middleware.RequireRoles(domain.RoleProjectManager), h.Project.AssignTeamLead)
		projects.GET("/projects/team-lead/:projectId", h.Project.TeamLead)
		projects.PUT("/:projectId/assign-developers", middleware.RequireRoles(domain.RoleTeamLead), h.Project.AssignDevelopers)
		projects.GET("/projects/:projectId/developers", h.Project.Developers)
		projects.DELETE("/:projectId/developers/:developerId", middleware.RequireRoles(domain.RoleTeamLead), h.Project.RemoveDeveloper)

		projects.POST("/tasks/assign", middleware.RequireRoles(domain.RoleTeamLead), h.Task.Assign)
		projects.GET("/projects/:projectId/developers/:developerId/tasks", h.Task.ListForDeveloper)
		projects.POST("/developers/:developerId/tasks/:taskId/submit", middleware.RequireRoles(domain.RoleDeveloper), h.Task.Submit)
		projects.PUT("/project/updatetaskstatus", middleware.RequireRoles(domain.RoleTeamLead), h.Task.Review)
		projects.GET("/project/:projectId/developer/:developerId/task/:taskId/download-submission", h.Task.DownloadSubmission)
		projects.GET("/admin/all-submissions", middleware.RequireRoles(domain.RoleHR, domain.RoleProjectManager), h.Task.ListSubmissions)
	}
}
