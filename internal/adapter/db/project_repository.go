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
	insertProjectQuery = `
INSERT INTO projects (id, name, start_date, end_date, manager_id)
VALUES (?, ?, ?, ?, ?);
`

	getProjectQuery = `
SELECT
  p.*,
  e.name AS manager_name
FROM projects p
JOIN employees e ON e.id = p.manager_id
WHERE p.id = ?;
`

	listProjectsQuery = `
SELECT
  p.*,
  e.name AS manager_name
FROM projects p
JOIN employees e ON e.id = p.manager_id
ORDER BY p.id;
`

	listMembersQuery = `
SELECT
  m.project_id,
  m.employee_id,
  m.member_role,
  e.name AS employee_name,
  e.role AS employee_role
FROM project_members m
JOIN employees e ON e.id = m.employee_id
WHERE m.project_id IN (?)
ORDER BY m.project_id, m.employee_id;
`

	deleteTeamLeadQuery = `
DELETE FROM project_members WHERE project_id = ? AND member_role = 'team_lead';
`

	insertMemberQuery = `
INSERT IGNORE INTO project_members (project_id, employee_id, member_role)
VALUES (?, ?, ?);
`

	removeDeveloperQuery = `
DELETE FROM project_members
WHERE project_id = ? AND employee_id = ? AND member_role = 'developer';
`
)

const (
	memberRoleTeamLead  = "team_lead"
	memberRoleDeveloper = "developer"
)

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	ManagerID   string    `db:"manager_id"`
	ManagerName string    `db:"manager_name"`
}

type memberRow struct {
	ProjectID    string `db:"project_id"`
	EmployeeID   string `db:"employee_id"`
	MemberRole   string `db:"member_role"`
	EmployeeName string `db:"employee_name"`
	EmployeeRole string `db:"employee_role"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) error {
	_, err := r.db.ExecContext(ctx, insertProjectQuery,
		project.ID,
		project.Name,
		project.StartDate,
		project.EndDate,
		project.ManagerID,
	)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, getProjectQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	members, err := r.membersByProject(ctx, []string{id})
	if err != nil {
		return domain.Project{}, err
	}

	return mapProjectRow(row, members[id]), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, listProjectsQuery); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Project{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	members, err := r.membersByProject(ctx, ids)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRow(row, members[row.ID]))
	}
	return projects, nil
}

func (r *ProjectRepository) ReplaceTeamLead(ctx context.Context, projectID, employeeID string) error {
	if _, err := r.db.ExecContext(ctx, deleteTeamLeadQuery, projectID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, insertMemberQuery, projectID, employeeID, memberRoleTeamLead)
	return err
}

func (r *ProjectRepository) AddDevelopers(ctx context.Context, projectID string, employeeIDs []string) error {
	for _, employeeID := range employeeIDs {
		if _, err := r.db.ExecContext(ctx, insertMemberQuery, projectID, employeeID, memberRoleDeveloper); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProjectRepository) RemoveDeveloper(ctx context.Context, projectID, employeeID string) error {
	_, err := r.db.ExecContext(ctx, removeDeveloperQuery, projectID, employeeID)
	return err
}

func (r *ProjectRepository) membersByProject(ctx context.Context, projectIDs []string) (map[string][]memberRow, error) {
	query, args, err := sqlx.In(listMembersQuery, projectIDs)
	if err != nil {
		return nil, err
	}

	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	grouped := make(map[string][]memberRow, len(projectIDs))
	for _, row := range rows {
		grouped[row.ProjectID] = append(grouped[row.ProjectID], row)
	}
	return grouped, nil
}

func mapProjectRow(row projectRow, members []memberRow) domain.Project {
	project := domain.Project{
		ID:          row.ID,
		Name:        row.Name,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		ManagerID:   row.ManagerID,
		ManagerName: row.ManagerName,
		Developers:  []domain.Member{},
	}

	for _, member := range members {
		entry := domain.Member{
			EmployeeID: member.EmployeeID,
			Name:       member.EmployeeName,
			Role:       member.EmployeeRole,
		}
		if member.MemberRole == memberRoleTeamLead {
			lead := entry
			project.TeamLead = &lead
			continue
		}
		project.Developers = append(project.Developers, entry)
	}

	return project
}
