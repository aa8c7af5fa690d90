package ports

import (
	"context"

	"staffhub/internal/core/domain"
)

type HRRequestRepository interface {
	Create(ctx context.Context, request domain.HRRequest) error
	GetByID(ctx context.Context, id string) (domain.HRRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.HRRequest, error)
	ListAll(ctx context.Context) ([]domain.HRRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.HRRequestStatus) error
}

type HRRequestService interface {
	Submit(ctx context.Context, input domain.CreateHRRequestInput) (domain.HRRequest, error)
	ListMine(ctx context.Context, employeeID string) ([]domain.HRRequest, error)
	ListAll(ctx context.Context) ([]domain.HRRequest, error)
	Resolve(ctx context.Context, id string, status domain.HRRequestStatus) (domain.HRRequest, error)
}
