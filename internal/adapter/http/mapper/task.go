package mapper

import (
	"time"

	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		DeveloperID: task.DeveloperID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		AssignedAt:  task.AssignedAt.Format(time.RFC3339),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.AssignmentFile != nil {
		value := task.AssignmentFile.Name
		item.AssignmentFileName = &value
	}

	if task.SubmissionComment != nil {
		value := *task.SubmissionComment
		item.SubmissionComment = &value
	}

	if task.SubmissionFile != nil {
		value := task.SubmissionFile.Name
		item.SubmissionFileName = &value
	}

	if task.SubmittedAt != nil {
		value := task.SubmittedAt.Format(time.RFC3339)
		item.SubmittedAt = &value
	}

	if task.RevisionFeedback != nil {
		value := *task.RevisionFeedback
		item.RevisionFeedback = &value
	}

	return item
}

func ToSubmissionItems(submissions []domain.Submission) []dto.SubmissionItem {
	items := make([]dto.SubmissionItem, 0, len(submissions))
	for _, submission := range submissions {
		items = append(items, dto.SubmissionItem{
			TaskItem:      ToTaskItem(submission.Task),
			ProjectName:   submission.ProjectName,
			DeveloperName: submission.DeveloperName,
		})
	}
	return items
}
