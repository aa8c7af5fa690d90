package service

import (
	"context"
	"strings"

	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
)

type ProjectService struct {
	projectRepository  ports.ProjectRepository
	employeeRepository ports.EmployeeRepository
}

func NewProjectService(projectRepository ports.ProjectRepository, employeeRepository ports.EmployeeRepository) *ProjectService {
	return &ProjectService{
		projectRepository:  projectRepository,
		employeeRepository: employeeRepository,
	}
}

func (s *ProjectService) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	manager, err := s.employeeRepository.GetByID(ctx, input.ManagerID)
	if err != nil {
		return domain.Project{}, err
	}

	project := domain.Project{
		ID:          newID("PRJ"),
		Name:        strings.TrimSpace(input.Name),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ManagerID:   manager.ID,
		ManagerName: manager.Name,
	}

	if err := s.projectRepository.Create(ctx, project); err != nil {
		return domain.Project{}, err
	}

	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (domain.Project, error) {
	return s.projectRepository.GetByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepository.List(ctx)
}

// AssignTeamLead replaces the single team lead of a project, last write wins.
func (s *ProjectService) AssignTeamLead(ctx context.Context, projectID, employeeID string) (domain.Project, error) {
	if _, err := s.projectRepository.GetByID(ctx, projectID); err != nil {
		return domain.Project{}, err
	}
	if _, err := s.employeeRepository.GetByID(ctx, employeeID); err != nil {
		return domain.Project{}, err
	}

	if err := s.projectRepository.ReplaceTeamLead(ctx, projectID, employeeID); err != nil {
		return domain.Project{}, err
	}

	return s.projectRepository.GetByID(ctx, projectID)
}

func (s *ProjectService) TeamLead(ctx context.Context, projectID string) (*domain.Member, error) {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return project.TeamLead, nil
}

func (s *ProjectService) AssignDevelopers(ctx context.Context, projectID string, developerIDs []string) (domain.Project, error) {
	if _, err := s.projectRepository.GetByID(ctx, projectID); err != nil {
		return domain.Project{}, err
	}
	for _, id := range developerIDs {
		if _, err := s.employeeRepository.GetByID(ctx, id); err != nil {
			return domain.Project{}, err
		}
	}

	if err := s.projectRepository.AddDevelopers(ctx, projectID, developerIDs); err != nil {
		return domain.Project{}, err
	}

	return s.projectRepository.GetByID(ctx, projectID)
}

func (s *ProjectService) Developers(ctx context.Context, projectID string) ([]domain.Member, error) {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return project.Developers, nil
}

func (s *ProjectService) RemoveDeveloper(ctx context.Context, projectID, developerID string) error {
	if _, err := s.projectRepository.GetByID(ctx, projectID); err != nil {
		return err
	}
	return s.projectRepository.RemoveDeveloper(ctx, projectID, developerID)
}

var _ ports.ProjectService = (*ProjectService)(nil)
