package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name EmployeeService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename employee_service_mock.go --with-expecter
//go:generate mockery --name ProjectService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename project_service_mock.go --with-expecter
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name HRRequestService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename hr_request_service_mock.go --with-expecter
