package domain

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrRequestNotFound    = errors.New("hr request not found")
	ErrRequestResolved    = errors.New("hr request already resolved")
	ErrInvalidTransition  = errors.New("invalid task status transition")
	ErrCommentRequired    = errors.New("submission comment required")
	ErrFeedbackRequired   = errors.New("revision feedback required")
	ErrNoSubmissionFile   = errors.New("no submission file stored")
)
