package dto

type MemberItem struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

type ProjectItem struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	StartDate          string       `json:"start_date"`
	EndDate            string       `json:"end_date"`
	ProjectManagerID   string       `json:"project_manager_id"`
	ProjectManagerName string       `json:"project_manager_name"`
	TeamLead           *MemberItem  `json:"team_lead,omitempty"`
	Developers         []MemberItem `json:"developers"`
}

type CreateProjectRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type AssignTeamLeadRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

type AssignDevelopersRequest struct {
	DeveloperIDs []string `json:"developer_ids" binding:"required,min=1,dive,required"`
}
