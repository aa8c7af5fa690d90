package ports

import (
	"context"
	"io"

	"staffhub/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	GetByID(ctx context.Context, id string) (domain.Task, error)
	ListByProjectDeveloper(ctx context.Context, projectID, developerID string) ([]domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	ListSubmissions(ctx context.Context) ([]domain.Submission, error)
}

type TaskService interface {
	Assign(ctx context.Context, input domain.AssignTaskInput) (domain.Task, error)
	ListForDeveloper(ctx context.Context, projectID, developerID string) ([]domain.Task, error)
	Submit(ctx context.Context, input domain.SubmitTaskInput) (domain.Task, error)
	Review(ctx context.Context, input domain.ReviewTaskInput) (domain.Task, error)
	OpenSubmission(ctx context.Context, projectID, developerID, taskID string) (domain.FileRef, io.ReadCloser, error)
	ListSubmissions(ctx context.Context) ([]domain.Submission, error)
}
