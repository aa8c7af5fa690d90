package ports

import (
	"context"

	"staffhub/internal/core/domain"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee domain.Employee) error
	GetByID(ctx context.Context, id string) (domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee domain.Employee) error
}

type EmployeeService interface {
	Signup(ctx context.Context, input domain.SignupInput) (domain.Employee, error)
	Login(ctx context.Context, email, password string) (domain.Employee, error)
	Get(ctx context.Context, id string) (domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, id string, input domain.UpdateEmployeeInput) (domain.Employee, error)
	ResetPassword(ctx context.Context, id, password string) error
}
