package service

import (
	"context"
	"strings"
	"testing"

	"staffhub/internal/core/domain"

	"github.com/stretchr/testify/require"
)

type hrRequestRepoFake struct {
	requests map[string]domain.HRRequest
}

func newHRRequestRepoFake() *hrRequestRepoFake {
	return &hrRequestRepoFake{requests: make(map[string]domain.HRRequest)}
}

func (f *hrRequestRepoFake) Create(_ context.Context, request domain.HRRequest) error {
	f.requests[request.ID] = request
	return nil
}

func (f *hrRequestRepoFake) GetByID(_ context.Context, id string) (domain.HRRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return domain.HRRequest{}, domain.ErrRequestNotFound
	}
	return request, nil
}

func (f *hrRequestRepoFake) ListByEmployee(_ context.Context, employeeID string) ([]domain.HRRequest, error) {
	var requests []domain.HRRequest
	for _, request := range f.requests {
		if request.EmployeeID == employeeID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (f *hrRequestRepoFake) ListAll(_ context.Context) ([]domain.HRRequest, error) {
	requests := make([]domain.HRRequest, 0, len(f.requests))
	for _, request := range f.requests {
		requests = append(requests, request)
	}
	return requests, nil
}

func (f *hrRequestRepoFake) UpdateStatus(_ context.Context, id string, status domain.HRRequestStatus) error {
	request, ok := f.requests[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	request.Status = status
	f.requests[id] = request
	return nil
}

func newHRRequestServiceForTest(t *testing.T) (*HRRequestService, string) {
	t.Helper()

	employees := newEmployeeRepoFake()
	employeeSvc := NewEmployeeService(employees)
	employee, err := employeeSvc.Signup(context.Background(), domain.SignupInput{
		Name: "Nadia Petit", Email: "nadia@example.com", Password: "s3cretpass", Role: "developer",
	})
	require.NoError(t, err)

	return NewHRRequestService(newHRRequestRepoFake(), employees), employee.ID
}

func TestHRRequestService_Submit_StartsPending(t *testing.T) {
	svc, employeeID := newHRRequestServiceForTest(t)

	request, err := svc.Submit(context.Background(), domain.CreateHRRequestInput{
		EmployeeID: employeeID,
		Title:      "  Remote work ",
		Query:      "May I work remotely in July?",
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(request.ID, "REQ-"))
	require.Equal(t, domain.HRRequestStatusPending, request.Status)
	require.Equal(t, "Remote work", request.Title)
	require.Equal(t, "Nadia Petit", request.EmployeeName)
}

func TestHRRequestService_Submit_UnknownEmployee(t *testing.T) {
	svc, _ := newHRRequestServiceForTest(t)

	_, err := svc.Submit(context.Background(), domain.CreateHRRequestInput{
		EmployeeID: "EMP-missing",
		Title:      "Remote work",
		Query:      "May I work remotely in July?",
	})
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestHRRequestService_Resolve_OnlyOnce(t *testing.T) {
	svc, employeeID := newHRRequestServiceForTest(t)
	ctx := context.Background()

	request, err := svc.Submit(ctx, domain.CreateHRRequestInput{
		EmployeeID: employeeID,
		Title:      "Remote work",
		Query:      "May I work remotely in July?",
	})
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, request.ID, domain.HRRequestStatusApproved)
	require.NoError(t, err)
	require.Equal(t, domain.HRRequestStatusApproved, resolved.Status)

	_, err = svc.Resolve(ctx, request.ID, domain.HRRequestStatusRejected)
	require.ErrorIs(t, err, domain.ErrRequestResolved)

	_, err = svc.Resolve(ctx, "REQ-missing", domain.HRRequestStatusApproved)
	require.ErrorIs(t, err, domain.ErrRequestNotFound)
}
