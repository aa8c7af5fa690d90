package service

import (
	"context"
	"strings"
	"time"

	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
)

type HRRequestService struct {
	requestRepository  ports.HRRequestRepository
	employeeRepository ports.EmployeeRepository
}

func NewHRRequestService(requestRepository ports.HRRequestRepository, employeeRepository ports.EmployeeRepository) *HRRequestService {
	return &HRRequestService{
		requestRepository:  requestRepository,
		employeeRepository: employeeRepository,
	}
}

func (s *HRRequestService) Submit(ctx context.Context, input domain.CreateHRRequestInput) (domain.HRRequest, error) {
	employee, err := s.employeeRepository.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return domain.HRRequest{}, err
	}

	now := time.Now().UTC()
	request := domain.HRRequest{
		ID:           newID("REQ"),
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		Title:        strings.TrimSpace(input.Title),
		Query:        input.Query,
		Status:       domain.HRRequestStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.requestRepository.Create(ctx, request); err != nil {
		return domain.HRRequest{}, err
	}

	return request, nil
}

func (s *HRRequestService) ListMine(ctx context.Context, employeeID string) ([]domain.HRRequest, error) {
	return s.requestRepository.ListByEmployee(ctx, employeeID)
}

func (s *HRRequestService) ListAll(ctx context.Context) ([]domain.HRRequest, error) {
	return s.requestRepository.ListAll(ctx)
}

// Resolve applies the single HR decision. A request that already left
// "pending" cannot be resolved again.
func (s *HRRequestService) Resolve(ctx context.Context, id string, status domain.HRRequestStatus) (domain.HRRequest, error) {
	request, err := s.requestRepository.GetByID(ctx, id)
	if err != nil {
		return domain.HRRequest{}, err
	}
	if request.Status != domain.HRRequestStatusPending {
		return domain.HRRequest{}, domain.ErrRequestResolved
	}

	if err := s.requestRepository.UpdateStatus(ctx, id, status); err != nil {
		return domain.HRRequest{}, err
	}

	request.Status = status
	request.UpdatedAt = time.Now().UTC()
	return request, nil
}

var _ ports.HRRequestService = (*HRRequestService)(nil)
