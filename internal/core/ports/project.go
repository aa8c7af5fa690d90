package ports

import (
	"context"

	"staffhub/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) error
	GetByID(ctx context.Context, id string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ReplaceTeamLead(ctx context.Context, projectID, employeeID string) error
	AddDevelopers(ctx context.Context, projectID string, employeeIDs []string) error
	RemoveDeveloper(ctx context.Context, projectID, employeeID string) error
}

type ProjectService interface {
	Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	Get(ctx context.Context, id string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	AssignTeamLead(ctx context.Context, projectID, employeeID string) (domain.Project, error)
	TeamLead(ctx context.Context, projectID string) (*domain.Member, error)
	AssignDevelopers(ctx context.Context, projectID string, developerIDs []string) (domain.Project, error)
	Developers(ctx context.Context, projectID string) ([]domain.Member, error)
	RemoveDeveloper(ctx context.Context, projectID, developerID string) error
}
