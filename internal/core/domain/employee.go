package domain

import (
	"strings"
	"time"
)

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Role values known to the portal. Role is stored as a free string so a
// deployment can introduce developer specialisations ("frontend_developer",
// "backend_developer", ...) without a schema change.
const (
	RoleHR             = "hr"
	RoleProjectManager = "project_manager"
	RoleTeamLead       = "team_lead"
	RoleDeveloper      = "developer"
)

// IsDeveloperRole matches the plain developer role and any specialisation
// suffixed with "_developer".
func IsDeveloperRole(role string) bool {
	return role == RoleDeveloper || strings.HasSuffix(role, "_developer")
}

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Status       EmployeeStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UpdateEmployeeInput struct {
	Name   *string
	Email  *string
	Role   *string
	Status *EmployeeStatus
}
