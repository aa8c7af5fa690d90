package domain

import (
	"io"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusSubmitted  TaskStatus = "submitted"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusRevision   TaskStatus = "revision"
	TaskStatusRejected   TaskStatus = "rejected"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusSubmitted,
		TaskStatusCompleted, TaskStatusRevision, TaskStatusRejected:
		return true
	}
	return false
}

// Terminal statuses accept no further transition, by developer or reviewer.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusRejected
}

// CanSubmit reports whether a developer may submit work from status s.
func (s TaskStatus) CanSubmit() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress || s == TaskStatusRevision
}

// CanReview reports whether a reviewer may move a task from one status to
// another. Submitted work may be completed, sent back for revision, rejected
// or reopened; before submission a reviewer may only toggle a task between
// pending and in_progress. "submitted" itself is reserved for the developer
// submit path.
func CanReview(from, to TaskStatus) bool {
	if from.Terminal() {
		return false
	}
	switch from {
	case TaskStatusSubmitted:
		switch to {
		case TaskStatusCompleted, TaskStatusRevision, TaskStatusRejected,
			TaskStatusInProgress, TaskStatusPending:
			return true
		}
	case TaskStatusPending:
		return to == TaskStatusInProgress
	case TaskStatusInProgress:
		return to == TaskStatusPending
	}
	return false
}

// FileRef points at a stored attachment: the original filename plus the
// storage key it was saved under.
type FileRef struct {
	Name string
	Key  string
}

type Task struct {
	ID                string
	ProjectID         string
	DeveloperID       string
	Title             string
	Description       string
	Status            TaskStatus
	AssignmentFile    *FileRef
	AssignedAt        time.Time
	SubmissionComment *string
	SubmissionFile    *FileRef
	SubmittedAt       *time.Time
	RevisionFeedback  *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Submission is a task joined with the names a reviewer dashboard needs.
type Submission struct {
	Task
	ProjectName   string
	DeveloperName string
}

// FileUpload carries an incoming multipart file into the service layer.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

type AssignTaskInput struct {
	ProjectID   string
	DeveloperID string
	Title       string
	Description string
	File        *FileUpload
}

type SubmitTaskInput struct {
	DeveloperID string
	TaskID      string
	Comment     string
	File        *FileUpload
}

type ReviewTaskInput struct {
	ProjectID   string
	DeveloperID string
	TaskID      string
	Status      TaskStatus
	Feedback    *string
}
