package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
)

type EmployeeService struct {
	employeeRepository ports.EmployeeRepository
}

func NewEmployeeService(employeeRepository ports.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepository: employeeRepository}
}

func (s *EmployeeService) Signup(ctx context.Context, input domain.SignupInput) (domain.Employee, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.employeeRepository.GetByEmail(ctx, email)
	if err == nil {
		return domain.Employee{}, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return domain.Employee{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Employee{}, err
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		ID:           newID("EMP"),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Status:       domain.EmployeeStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.employeeRepository.Create(ctx, employee); err != nil {
		return domain.Employee{}, err
	}

	return employee, nil
}

func (s *EmployeeService) Login(ctx context.Context, email, password string) (domain.Employee, error) {
	employee, err := s.employeeRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return domain.Employee{}, domain.ErrInvalidCredentials
		}
		return domain.Employee{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return domain.Employee{}, domain.ErrInvalidCredentials
	}

	return employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (domain.Employee, error) {
	return s.employeeRepository.GetByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepository.List(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id string, input domain.UpdateEmployeeInput) (domain.Employee, error) {
	employee, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}

	if input.Name != nil {
		employee.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != employee.Email {
			if _, err := s.employeeRepository.GetByEmail(ctx, email); err == nil {
				return domain.Employee{}, domain.ErrEmailTaken
			} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
				return domain.Employee{}, err
			}
			employee.Email = email
		}
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.Status != nil {
		employee.Status = *input.Status
	}
	employee.UpdatedAt = time.Now().UTC()

	if err := s.employeeRepository.Update(ctx, employee); err != nil {
		return domain.Employee{}, err
	}

	return employee, nil
}

func (s *EmployeeService) ResetPassword(ctx context.Context, id, password string) error {
	employee, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	employee.PasswordHash = string(hash)
	employee.UpdatedAt = time.Now().UTC()

	return s.employeeRepository.Update(ctx, employee)
}

var _ ports.EmployeeService = (*EmployeeService)(nil)
