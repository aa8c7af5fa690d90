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
	insertHRRequestQuery = `
INSERT INTO hr_requests (id, employee_id, title, query, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

	getHRRequestQuery = `
SELECT
  r.*,
  e.name AS employee_name
FROM hr_requests r
JOIN employees e ON e.id = r.employee_id
WHERE r.id = ?;
`

	listHRRequestsByEmployeeQuery = `
SELECT
  r.*,
  e.name AS employee_name
FROM hr_requests r
JOIN employees e ON e.id = r.employee_id
WHERE r.employee_id = ?
ORDER BY r.created_at DESC, r.id;
`

	listAllHRRequestsQuery = `
SELECT
  r.*,
  e.name AS employee_name
FROM hr_requests r
JOIN employees e ON e.id = r.employee_id
ORDER BY r.created_at DESC, r.id;
`

	updateHRRequestStatusQuery = `
UPDATE hr_requests SET status = ?, updated_at = ? WHERE id = ?;
`
)

type HRRequestRepository struct {
	db *sqlx.DB
}

type hrRequestRow struct {
	ID           string    `db:"id"`
	EmployeeID   string    `db:"employee_id"`
	EmployeeName string    `db:"employee_name"`
	Title        string    `db:"title"`
	Query        string    `db:"query"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var _ ports.HRRequestRepository = (*HRRequestRepository)(nil)

func NewHRRequestRepository(db *sqlx.DB) *HRRequestRepository {
	return &HRRequestRepository{db: db}
}

func (r *HRRequestRepository) Create(ctx context.Context, request domain.HRRequest) error {
	_, err := r.db.ExecContext(ctx, insertHRRequestQuery,
		request.ID,
		request.EmployeeID,
		request.Title,
		request.Query,
		string(request.Status),
		request.CreatedAt,
		request.UpdatedAt,
	)
	return err
}

func (r *HRRequestRepository) GetByID(ctx context.Context, id string) (domain.HRRequest, error) {
	var row hrRequestRow
	if err := r.db.GetContext(ctx, &row, getHRRequestQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.HRRequest{}, domain.ErrRequestNotFound
		}
		return domain.HRRequest{}, err
	}
	return mapHRRequestRow(row), nil
}

func (r *HRRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.HRRequest, error) {
	var rows []hrRequestRow
	if err := r.db.SelectContext(ctx, &rows, listHRRequestsByEmployeeQuery, employeeID); err != nil {
		return nil, err
	}
	return mapHRRequestRows(rows), nil
}

func (r *HRRequestRepository) ListAll(ctx context.Context) ([]domain.HRRequest, error) {
	var rows []hrRequestRow
	if err := r.db.SelectContext(ctx, &rows, listAllHRRequestsQuery); err != nil {
		return nil, err
	}
	return mapHRRequestRows(rows), nil
}

func (r *HRRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.HRRequestStatus) error {
	_, err := r.db.ExecContext(ctx, updateHRRequestStatusQuery, string(status), time.Now().UTC(), id)
	return err
}

func mapHRRequestRows(rows []hrRequestRow) []domain.HRRequest {
	requests := make([]domain.HRRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, mapHRRequestRow(row))
	}
	return requests
}

func mapHRRequestRow(row hrRequestRow) domain.HRRequest {
	return domain.HRRequest{
		ID:           row.ID,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		Title:        row.Title,
		Query:        row.Query,
		Status:       domain.HRRequestStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
