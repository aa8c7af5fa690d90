package domain

import "time"

// Member is an employee attached to a project roster, either as the single
// team lead or as one of the developers.
type Member struct {
	EmployeeID string
	Name       string
	Role       string
}

type Project struct {
	ID          string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	ManagerID   string
	ManagerName string
	TeamLead    *Member
	Developers  []Member
}

type CreateProjectInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	ManagerID string
}
