package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
)

const (
	insertEmployeeQuery = `
INSERT INTO employees (id, name, email, password_hash, role, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

	getEmployeeByIDQuery = `
SELECT * FROM employees WHERE id = ?;
`

	getEmployeeByEmailQuery = `
SELECT * FROM employees WHERE email = ?;
`

	listEmployeesQuery = `
SELECT * FROM employees ORDER BY created_at, id;
`

	updateEmployeeQuery = `
UPDATE employees
SET name = ?, email = ?, password_hash = ?, role = ?, status = ?, updated_at = ?
WHERE id = ?;
`
)

const mysqlErrDuplicateEntry = 1062

type EmployeeRepository struct {
	db *sqlx.DB
}

type employeeRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var _ ports.EmployeeRepository = (*EmployeeRepository)(nil)

func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee domain.Employee) error {
	_, err := r.db.ExecContext(ctx, insertEmployeeQuery,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.PasswordHash,
		employee.Role,
		string(employee.Status),
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	return translateEmployeeError(err)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	var row employeeRow
	if err := r.db.GetContext(ctx, &row, getEmployeeByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, domain.ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}
	return mapEmployeeRow(row), nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (domain.Employee, error) {
	var row employeeRow
	if err := r.db.GetContext(ctx, &row, getEmployeeByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, domain.ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}
	return mapEmployeeRow(row), nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var rows []employeeRow
	if err := r.db.SelectContext(ctx, &rows, listEmployeesQuery); err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, mapEmployeeRow(row))
	}
	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee domain.Employee) error {
	result, err := r.db.ExecContext(ctx, updateEmployeeQuery,
		employee.Name,
		employee.Email,
		employee.PasswordHash,
		employee.Role,
		string(employee.Status),
		employee.UpdatedAt,
		employee.ID,
	)
	if err != nil {
		return translateEmployeeError(err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		// MySQL reports 0 for a no-op update too, so re-check existence.
		if _, err := r.GetByID(ctx, employee.ID); err != nil {
			return err
		}
	}
	return nil
}

// translateEmployeeError maps the unique email index violation to the domain
// error; the service pre-checks but concurrent signups can still race.
func translateEmployeeError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return domain.ErrEmailTaken
	}
	return err
}

func mapEmployeeRow(row employeeRow) domain.Employee {
	return domain.Employee{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		Status:       domain.EmployeeStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
