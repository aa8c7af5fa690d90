package dto

type HRRequestItem struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Title        string `json:"title"`
	Query        string `json:"query"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type CreateHRRequestRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Query string `json:"query" binding:"required,max=65535"`
}

type UpdateHRRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
