package dto

type TaskItem struct {
	ID                 string  `json:"id"`
	ProjectID          string  `json:"project_id"`
	DeveloperID        string  `json:"developer_id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Status             string  `json:"status"`
	AssignmentFileName *string `json:"assignment_file_name,omitempty"`
	AssignedAt         string  `json:"assigned_at"`
	SubmissionComment  *string `json:"submission_comment,omitempty"`
	SubmissionFileName *string `json:"submission_file_name,omitempty"`
	SubmittedAt        *string `json:"submitted_at,omitempty"`
	RevisionFeedback   *string `json:"revision_feedback,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type SubmissionItem struct {
	TaskItem
	ProjectName   string `json:"project_name"`
	DeveloperName string `json:"developer_name"`
}

// AssignTaskForm is the multipart form a team lead posts; the optional
// attachment arrives as the "file" part.
type AssignTaskForm struct {
	ProjectID   string `form:"project_id" binding:"required"`
	DeveloperID string `form:"developer_id" binding:"required"`
	Title       string `form:"title" binding:"required,max=255"`
	Description string `form:"description" binding:"omitempty,max=65535"`
}

// SubmitTaskForm is the multipart form a developer posts when handing in
// work; the optional attachment arrives as the "file" part.
type SubmitTaskForm struct {
	Comment string `form:"comment" binding:"required,max=65535"`
}

type ReviewTaskRequest struct {
	ProjectID   string  `json:"project_id" binding:"required"`
	DeveloperID string  `json:"developer_id" binding:"required"`
	TaskID      string  `json:"task_id" binding:"required"`
	Status      string  `json:"status" binding:"required"`
	Feedback    *string `json:"feedback" binding:"omitempty,max=65535"`
}
