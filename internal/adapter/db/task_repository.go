package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (
  id, project_id, developer_id, title, description, status,
  assignment_file_name, assignment_file_key, assigned_at,
  created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

	getTaskQuery = `
SELECT * FROM tasks WHERE id = ?;
`

	listTasksQuery = `
SELECT * FROM tasks
WHERE project_id = ? AND developer_id = ?
ORDER BY assigned_at, id;
`

	updateTaskQuery = `
UPDATE tasks
SET status = ?,
    submission_comment = ?,
    submission_file_name = ?,
    submission_file_key = ?,
    submitted_at = ?,
    revision_feedback = ?,
    updated_at = ?
WHERE id = ?;
`

	listSubmissionsQuery = `
SELECT
  t.*,
  p.name AS project_name,
  e.name AS developer_name
FROM tasks t
JOIN projects p ON p.id = t.project_id
JOIN employees e ON e.id = t.developer_id
WHERE t.submitted_at IS NOT NULL
ORDER BY t.submitted_at DESC, t.id;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                 string         `db:"id"`
	ProjectID          string         `db:"project_id"`
	DeveloperID        string         `db:"developer_id"`
	Title              string         `db:"title"`
	Description        string         `db:"description"`
	Status             string         `db:"status"`
	AssignmentFileName sql.NullString `db:"assignment_file_name"`
	AssignmentFileKey  sql.NullString `db:"assignment_file_key"`
	AssignedAt         time.Time      `db:"assigned_at"`
	SubmissionComment  sql.NullString `db:"submission_comment"`
	SubmissionFileName sql.NullString `db:"submission_file_name"`
	SubmissionFileKey  sql.NullString `db:"submission_file_key"`
	SubmittedAt        sql.NullTime   `db:"submitted_at"`
	RevisionFeedback   sql.NullString `db:"revision_feedback"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

type submissionRow struct {
	taskRow
	ProjectName   string `db:"project_name"`
	DeveloperName string `db:"developer_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	fileName, fileKey := fileRefColumns(task.AssignmentFile)
	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.ID,
		task.ProjectID,
		task.DeveloperID,
		task.Title,
		task.Description,
		string(task.Status),
		fileName,
		fileKey,
		task.AssignedAt,
		task.CreatedAt,
		task.UpdatedAt,
	)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) ListByProjectDeveloper(ctx context.Context, projectID, developerID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, projectID, developerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	subName, subKey := fileRefColumns(task.SubmissionFile)
	_, err := r.db.ExecContext(ctx, updateTaskQuery,
		string(task.Status),
		nullString(task.SubmissionComment),
		subName,
		subKey,
		nullTime(task.SubmittedAt),
		nullString(task.RevisionFeedback),
		task.UpdatedAt,
		task.ID,
	)
	return err
}

func (r *TaskRepository) ListSubmissions(ctx context.Context) ([]domain.Submission, error) {
	var rows []submissionRow
	if err := r.db.SelectContext(ctx, &rows, listSubmissionsQuery); err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(rows))
	for _, row := range rows {
		submissions = append(submissions, domain.Submission{
			Task:          mapTaskRow(row.taskRow),
			ProjectName:   row.ProjectName,
			DeveloperName: row.DeveloperName,
		})
	}
	return submissions, nil
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		DeveloperID: row.DeveloperID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		AssignedAt:  row.AssignedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.AssignmentFileName.Valid && row.AssignmentFileKey.Valid {
		task.AssignmentFile = &domain.FileRef{
			Name: row.AssignmentFileName.String,
			Key:  row.AssignmentFileKey.String,
		}
	}

	if row.SubmissionComment.Valid {
		value := row.SubmissionComment.String
		task.SubmissionComment = &value
	}

	if row.SubmissionFileName.Valid && row.SubmissionFileKey.Valid {
		task.SubmissionFile = &domain.FileRef{
			Name: row.SubmissionFileName.String,
			Key:  row.SubmissionFileKey.String,
		}
	}

	if row.SubmittedAt.Valid {
		value := row.SubmittedAt.Time
		task.SubmittedAt = &value
	}

	if row.RevisionFeedback.Valid {
		value := row.RevisionFeedback.String
		task.RevisionFeedback = &value
	}

	return task
}

func fileRefColumns(ref *domain.FileRef) (sql.NullString, sql.NullString) {
	if ref == nil {
		return sql.NullString{}, sql.NullString{}
	}
	return sql.NullString{String: ref.Name, Valid: true}, sql.NullString{String: ref.Key, Valid: true}
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
