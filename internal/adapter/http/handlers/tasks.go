package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/adapter/http/mapper"
	"staffhub/internal/adapter/http/middleware"
	"staffhub/internal/adapter/http/validation"
	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
	"staffhub/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Assign(c *gin.Context) {
	lang := middleware.GetLang(c)

	var form dto.AssignTaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	upload, closeUpload, err := formFile(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}
	defer closeUpload()

	input, err := validation.BuildAssignTaskInput(form, upload)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	task, err := h.taskService.Assign(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to assign task",
			zap.String("project_id", input.ProjectID),
			zap.String("developer_id", input.DeveloperID),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAssignTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListForDeveloper(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("projectId")
	developerID := c.Param("developerId")

	tasks, err := h.taskService.ListForDeveloper(c.Request.Context(), projectID, developerID)
	if err != nil {
		zap.L().Error("failed to list tasks",
			zap.String("project_id", projectID),
			zap.String("developer_id", developerID),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) Submit(c *gin.Context) {
	lang := middleware.GetLang(c)
	developerID := c.Param("developerId")
	taskID := c.Param("taskId")

	var form dto.SubmitTaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgCommentRequired, lang),
		)
		return
	}

	upload, closeUpload, err := formFile(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}
	defer closeUpload()

	task, err := h.taskService.Submit(c.Request.Context(), domain.SubmitTaskInput{
		DeveloperID: developerID,
		TaskID:      taskID,
		Comment:     form.Comment,
		File:        upload,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentRequired):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgCommentRequired, lang),
			)
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidTransition):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgInvalidTransition, lang),
			)
		default:
			zap.L().Error("failed to submit task", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSubmitTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Review(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ReviewTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, err := validation.BuildReviewTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	task, err := h.taskService.Review(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFeedbackRequired):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgFeedbackRequired, lang),
			)
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidTransition):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgInvalidTransition, lang),
			)
		default:
			zap.L().Error("failed to review task", zap.String("task_id", input.TaskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailReviewTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DownloadSubmission(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("projectId")
	developerID := c.Param("developerId")
	taskID := c.Param("taskId")

	ref, rc, err := h.taskService.OpenSubmission(c.Request.Context(), projectID, developerID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrNoSubmissionFile):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoSubmissionFile, lang),
			)
		default:
			zap.L().Error("failed to open submission file", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDownload, lang),
			)
		}
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", ref.Name),
	})
}

func (h *TaskHandler) ListSubmissions(c *gin.Context) {
	lang := middleware.GetLang(c)

	submissions, err := h.taskService.ListSubmissions(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list submissions", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSubmissions, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubmissionItems(submissions))
}

// formFile extracts the optional "file" multipart part. The returned close
// function is always safe to defer.
func formFile(c *gin.Context) (*domain.FileUpload, func(), error) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}

	return &domain.FileUpload{Name: header.Filename, Reader: f}, func() { f.Close() }, nil
}
