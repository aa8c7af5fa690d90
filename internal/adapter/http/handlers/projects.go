package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/adapter/http/mapper"
	"staffhub/internal/adapter/http/middleware"
	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
	"staffhub/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), domain.CreateProjectInput{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		ManagerID: identity.ID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgEmployeeNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create project", zap.String("manager_id", identity.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateProject, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) AssignTeamLead(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("projectId")

	var req dto.AssignTeamLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	project, err := h.projectService.AssignTeamLead(c.Request.Context(), projectID, req.EmployeeID)
	if err != nil {
		h.writeProjectError(c, lang, err, apierrors.MsgFailAssignTeamLead, projectID)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) TeamLead(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("projectId")

	lead, err := h.projectService.TeamLead(c.Request.Context(), projectID)
	if err != nil {
		h.writeProjectError(c, lang, err, apierrors.MsgFailListProjects, projectID)
		return
	}

	if lead == nil {
		c.JSON(http.StatusOK, gin.H{"team_lead": nil})
		return
	}

	item := mapper.ToMemberItem(*lead)
	c.JSON(http.StatusOK, gin.H{"team_lead": item})
}

func (h *ProjectHandler) AssignDevelopers(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("projectId")

	var req dto.AssignDevelopersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	project, err := h.projectService.AssignDevelopers(c.Request.Context(), projectID, req.DeveloperIDs)
	if err != nil {
		h.writeProjectError(c, lang, err, apierrors.MsgFailAssignDevelopers, projectID)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) Developers(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("projectId")

	developers, err := h.projectService.Developers(c.Request.Context(), projectID)
	if err != nil {
		h.writeProjectError(c, lang, err, apierrors.MsgFailListProjects, projectID)
		return
	}

	c.JSON(http.StatusOK, mapper.ToMemberItems(developers))
}

func (h *ProjectHandler) RemoveDeveloper(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("projectId")
	developerID := c.Param("developerId")

	if err := h.projectService.RemoveDeveloper(c.Request.Context(), projectID, developerID); err != nil {
		h.writeProjectError(c, lang, err, apierrors.MsgFailRemoveDeveloper, projectID)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) writeProjectError(c *gin.Context, lang string, err error, failKey, projectID string) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
		)
	case errors.Is(err, domain.ErrEmployeeNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgEmployeeNotFound, lang),
		)
	default:
		zap.L().Error("project operation failed", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}
