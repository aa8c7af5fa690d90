package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/adapter/http/handlers"
	"staffhub/internal/adapter/http/middleware"
	"staffhub/internal/core/domain"
	"staffhub/pkg/apierrors"
	"staffhub/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeHandler_List_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	serviceMock := new(employeeServiceMock)
	serviceMock.On("List", mock.Anything).Return(
		[]domain.Employee{
			{
				ID:        "EMP-33334444",
				Name:      "Nadia Petit",
				Email:     "nadia@example.com",
				Role:      "developer",
				Status:    domain.EmployeeStatusActive,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
			{
				ID:        "EMP-55556666",
				Name:      "Marc Leroy",
				Email:     "marc@example.com",
				Role:      "team_lead",
				Status:    domain.EmployeeStatusActive,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
		},
		nil,
	).Once()
	handler := handlers.NewEmployeeHandler(serviceMock)

	router := gin.New()
	router.GET("/api/employees/all", middleware.LanguageMiddleware(), handler.List)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/all", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.EmployeeItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "EMP-33334444", got[0].ID)
	require.Equal(t, "team_lead", got[1].Role)
	serviceMock.AssertExpectations(t)
}

func TestEmployeeHandler_Update_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	inactive := domain.EmployeeStatusInactive

	serviceMock := new(employeeServiceMock)
	serviceMock.On("Update", mock.Anything, "EMP-33334444", domain.UpdateEmployeeInput{Status: &inactive}).
		Return(
			domain.Employee{
				ID:        "EMP-33334444",
				Name:      "Nadia Petit",
				Email:     "nadia@example.com",
				Role:      "developer",
				Status:    domain.EmployeeStatusInactive,
				CreatedAt: createdAt,
				UpdatedAt: createdAt.Add(time.Hour),
			},
			nil,
		).Once()
	handler := handlers.NewEmployeeHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/employees/update/:employeeId", middleware.LanguageMiddleware(), handler.Update)

	payload := `{"status":"inactive"}`
	req := httptest.NewRequest(http.MethodPut, "/api/employees/update/EMP-33334444", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.EmployeeItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "inactive", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestEmployeeHandler_Update_NotFound(t *testing.T) {
	serviceMock := new(employeeServiceMock)
	serviceMock.On("Update", mock.Anything, "EMP-missing", mock.Anything).
		Return(domain.Employee{}, domain.ErrEmployeeNotFound).Once()
	handler := handlers.NewEmployeeHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/employees/update/:employeeId", middleware.LanguageMiddleware(), handler.Update)

	payload := `{"status":"inactive"}`
	req := httptest.NewRequest(http.MethodPut, "/api/employees/update/EMP-missing", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Employee not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestEmployeeHandler_Update_InvalidStatus(t *testing.T) {
	serviceMock := new(employeeServiceMock)
	handler := handlers.NewEmployeeHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/employees/update/:employeeId", middleware.LanguageMiddleware(), handler.Update)

	payload := `{"status":"retired"}`
	req := httptest.NewRequest(http.MethodPut, "/api/employees/update/EMP-33334444", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "Update")
}

func TestEmployeeHandler_ResetPassword_Success(t *testing.T) {
	serviceMock := new(employeeServiceMock)
	serviceMock.On("ResetPassword", mock.Anything, "EMP-33334444", "newpassword1").Return(nil).Once()
	handler := handlers.NewEmployeeHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/employees/reset-password/:employeeId", middleware.LanguageMiddleware(), handler.ResetPassword)

	payload := `{"password":"newpassword1"}`
	req := httptest.NewRequest(http.MethodPut, "/api/employees/reset-password/EMP-33334444", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestEmployeeHandler_ResetPassword_NotFound(t *testing.T) {
	serviceMock := new(employeeServiceMock)
	serviceMock.On("ResetPassword", mock.Anything, "EMP-missing", "newpassword1").
		Return(domain.ErrEmployeeNotFound).Once()
	handler := handlers.NewEmployeeHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/employees/reset-password/:employeeId", middleware.LanguageMiddleware(), handler.ResetPassword)

	payload := `{"password":"newpassword1"}`
	req := httptest.NewRequest(http.MethodPut, "/api/employees/reset-password/EMP-missing", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Employee not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
