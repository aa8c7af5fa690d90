package validation

import (
	"errors"
	"strings"

	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildAssignTaskInput turns the multipart assign form into a service input.
func BuildAssignTaskInput(form dto.AssignTaskForm, file *domain.FileUpload) (domain.AssignTaskInput, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return domain.AssignTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.AssignTaskInput{
		ProjectID:   form.ProjectID,
		DeveloperID: form.DeveloperID,
		Title:       title,
		Description: form.Description,
		File:        file,
	}, nil
}

// BuildReviewTaskInput validates the reviewer's target status. "submitted"
// is not a reviewer move; it only happens through the developer submit path.
func BuildReviewTaskInput(req dto.ReviewTaskRequest) (domain.ReviewTaskInput, error) {
	status := domain.TaskStatus(req.Status)
	if !status.Valid() || status == domain.TaskStatusSubmitted {
		return domain.ReviewTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.ReviewTaskInput{
		ProjectID:   req.ProjectID,
		DeveloperID: req.DeveloperID,
		TaskID:      req.TaskID,
		Status:      status,
		Feedback:    req.Feedback,
	}, nil
}
