package service

import (
	"context"
	"strings"
	"testing"

	"staffhub/internal/core/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type employeeRepoFake struct {
	employees map[string]domain.Employee
}

func newEmployeeRepoFake() *employeeRepoFake {
	return &employeeRepoFake{employees: make(map[string]domain.Employee)}
}

func (f *employeeRepoFake) Create(_ context.Context, employee domain.Employee) error {
	f.employees[employee.ID] = employee
	return nil
}

func (f *employeeRepoFake) GetByID(_ context.Context, id string) (domain.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return employee, nil
}

func (f *employeeRepoFake) GetByEmail(_ context.Context, email string) (domain.Employee, error) {
	for _, employee := range f.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return domain.Employee{}, domain.ErrEmployeeNotFound
}

func (f *employeeRepoFake) List(_ context.Context) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0, len(f.employees))
	for _, employee := range f.employees {
		employees = append(employees, employee)
	}
	return employees, nil
}

func (f *employeeRepoFake) Update(_ context.Context, employee domain.Employee) error {
	if _, ok := f.employees[employee.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	f.employees[employee.ID] = employee
	return nil
}

func TestEmployeeService_Signup_NormalizesAndHashes(t *testing.T) {
	repo := newEmployeeRepoFake()
	svc := NewEmployeeService(repo)

	employee, err := svc.Signup(context.Background(), domain.SignupInput{
		Name:     "  Nadia Petit ",
		Email:    " Nadia@Example.COM ",
		Password: "s3cretpass",
		Role:     "developer",
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(employee.ID, "EMP-"))
	require.Equal(t, "Nadia Petit", employee.Name)
	require.Equal(t, "nadia@example.com", employee.Email)
	require.Equal(t, domain.EmployeeStatusActive, employee.Status)
	require.NotEqual(t, "s3cretpass", employee.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("s3cretpass")))
}

func TestEmployeeService_Signup_EmailTaken(t *testing.T) {
	repo := newEmployeeRepoFake()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.SignupInput{
		Name: "Nadia Petit", Email: "nadia@example.com", Password: "s3cretpass", Role: "developer",
	})
	require.NoError(t, err)

	// Same address with different casing still collides.
	_, err = svc.Signup(ctx, domain.SignupInput{
		Name: "Imposter", Email: "NADIA@example.com", Password: "otherpass1", Role: "developer",
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.Len(t, repo.employees, 1)
}

func TestEmployeeService_Login(t *testing.T) {
	repo := newEmployeeRepoFake()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.SignupInput{
		Name: "Nadia Petit", Email: "nadia@example.com", Password: "s3cretpass", Role: "developer",
	})
	require.NoError(t, err)

	employee, err := svc.Login(ctx, "nadia@example.com", "s3cretpass")
	require.NoError(t, err)
	require.Equal(t, created.ID, employee.ID)

	_, err = svc.Login(ctx, "nadia@example.com", "wrongpass")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Unknown accounts and bad passwords are indistinguishable.
	_, err = svc.Login(ctx, "nobody@example.com", "s3cretpass")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestEmployeeService_Update(t *testing.T) {
	repo := newEmployeeRepoFake()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.SignupInput{
		Name: "Nadia Petit", Email: "nadia@example.com", Password: "s3cretpass", Role: "developer",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.SignupInput{
		Name: "Marc Leroy", Email: "marc@example.com", Password: "s3cretpass", Role: "team_lead",
	})
	require.NoError(t, err)

	// Stealing another employee's address is refused.
	otherEmail := "marc@example.com"
	_, err = svc.Update(ctx, created.ID, domain.UpdateEmployeeInput{Email: &otherEmail})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	inactive := domain.EmployeeStatusInactive
	role := "team_lead"
	updated, err := svc.Update(ctx, created.ID, domain.UpdateEmployeeInput{Role: &role, Status: &inactive})
	require.NoError(t, err)
	require.Equal(t, "team_lead", updated.Role)
	require.Equal(t, domain.EmployeeStatusInactive, updated.Status)

	_, err = svc.Update(ctx, "EMP-missing", domain.UpdateEmployeeInput{Role: &role})
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_ResetPassword(t *testing.T) {
	repo := newEmployeeRepoFake()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.SignupInput{
		Name: "Nadia Petit", Email: "nadia@example.com", Password: "s3cretpass", Role: "developer",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, created.ID, "newpassword1"))

	_, err = svc.Login(ctx, "nadia@example.com", "s3cretpass")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nadia@example.com", "newpassword1")
	require.NoError(t, err)

	require.ErrorIs(t, svc.ResetPassword(ctx, "EMP-missing", "newpassword1"), domain.ErrEmployeeNotFound)
}
