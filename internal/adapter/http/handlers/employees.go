package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/adapter/http/mapper"
	"staffhub/internal/adapter/http/middleware"
	"staffhub/internal/core/domain"
	"staffhub/internal/core/ports"
	"staffhub/pkg/apierrors"
)

type EmployeeHandler struct {
	employeeService ports.EmployeeService
}

func NewEmployeeHandler(employeeService ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list employees", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListEmployees, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToEmployeeItems(employees))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)
	employeeID := c.Param("employeeId")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input := domain.UpdateEmployeeInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Status != nil {
		status := domain.EmployeeStatus(*req.Status)
		input.Status = &status
	}

	employee, err := h.employeeService.Update(c.Request.Context(), employeeID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgEmployeeNotFound, lang),
			)
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang),
			)
		default:
			zap.L().Error("failed to update employee", zap.String("employee_id", employeeID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateEmployee, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToEmployeeItem(employee))
}

func (h *EmployeeHandler) ResetPassword(c *gin.Context) {
	lang := middleware.GetLang(c)
	employeeID := c.Param("employeeId")

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	if err := h.employeeService.ResetPassword(c.Request.Context(), employeeID, req.Password); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgEmployeeNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to reset password", zap.String("employee_id", employeeID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailResetPassword, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
