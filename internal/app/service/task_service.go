package service

import (
	"context"
	"io"
	"strings"
	"time"

	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	projectRepository ports.ProjectRepository
	fileStore         ports.FileStore
}

func NewTaskService(taskRepository ports.TaskRepository, projectRepository ports.ProjectRepository, fileStore ports.FileStore) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		projectRepository: projectRepository,
		fileStore:         fileStore,
	}
}

// Assign creates a new task at "pending". Every call creates a fresh task,
// there is no duplicate detection.
func (s *TaskService) Assign(ctx context.Context, input domain.AssignTaskInput) (domain.Task, error) {
	if _, err := s.projectRepository.GetByID(ctx, input.ProjectID); err != nil {
		return domain.Task{}, err
	}

	fileRef, err := s.storeFile(ctx, input.File)
	if err != nil {
		return domain.Task{}, err
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:             newID("TSK"),
		ProjectID:      input.ProjectID,
		DeveloperID:    input.DeveloperID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Status:         domain.TaskStatusPending,
		AssignmentFile: fileRef,
		AssignedAt:     now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) ListForDeveloper(ctx context.Context, projectID, developerID string) ([]domain.Task, error) {
	return s.taskRepository.ListByProjectDeveloper(ctx, projectID, developerID)
}

// Submit records a developer's work and moves the task to "submitted".
// Allowed only from pending, in_progress or revision.
func (s *TaskService) Submit(ctx context.Context, input domain.SubmitTaskInput) (domain.Task, error) {
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return domain.Task{}, domain.ErrCommentRequired
	}

	task, err := s.taskRepository.GetByID(ctx, input.TaskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.DeveloperID != input.DeveloperID {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if !task.Status.CanSubmit() {
		return domain.Task{}, domain.ErrInvalidTransition
	}

	fileRef, err := s.storeFile(ctx, input.File)
	if err != nil {
		return domain.Task{}, err
	}

	now := time.Now().UTC()
	task.Status = domain.TaskStatusSubmitted
	task.SubmissionComment = &comment
	task.SubmittedAt = &now
	task.UpdatedAt = now
	if fileRef != nil {
		task.SubmissionFile = fileRef
	}

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// Review applies a team lead's decision. Moving to "revision" requires
// feedback; completed and rejected are terminal.
func (s *TaskService) Review(ctx context.Context, input domain.ReviewTaskInput) (domain.Task, error) {
	feedback := ""
	if input.Feedback != nil {
		feedback = strings.TrimSpace(*input.Feedback)
	}
	if input.Status == domain.TaskStatusRevision && feedback == "" {
		return domain.Task{}, domain.ErrFeedbackRequired
	}

	task, err := s.taskRepository.GetByID(ctx, input.TaskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.ProjectID != input.ProjectID || task.DeveloperID != input.DeveloperID {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if !domain.CanReview(task.Status, input.Status) {
		return domain.Task{}, domain.ErrInvalidTransition
	}

	task.Status = input.Status
	if feedback != "" {
		task.RevisionFeedback = &feedback
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// OpenSubmission streams back the file a developer attached on submit.
func (s *TaskService) OpenSubmission(ctx context.Context, projectID, developerID, taskID string) (domain.FileRef, io.ReadCloser, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.FileRef{}, nil, err
	}
	if task.ProjectID != projectID || task.DeveloperID != developerID {
		return domain.FileRef{}, nil, domain.ErrTaskNotFound
	}
	if task.SubmissionFile == nil {
		return domain.FileRef{}, nil, domain.ErrNoSubmissionFile
	}

	rc, err := s.fileStore.Open(ctx, task.SubmissionFile.Key)
	if err != nil {
		return domain.FileRef{}, nil, err
	}

	return *task.SubmissionFile, rc, nil
}

func (s *TaskService) ListSubmissions(ctx context.Context) ([]domain.Submission, error) {
	return s.taskRepository.ListSubmissions(ctx)
}

func (s *TaskService) storeFile(ctx context.Context, upload *domain.FileUpload) (*domain.FileRef, error) {
	if upload == nil {
		return nil, nil
	}
	key, err := s.fileStore.Save(ctx, upload.Name, upload.Reader)
	if err != nil {
		return nil, err
	}
	return &domain.FileRef{Name: upload.Name, Key: key}, nil
}

var _ ports.TaskService = (*TaskService)(nil)
