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
	"staffhub/pkg/token"
)

type AuthHandler struct {
	employeeService ports.EmployeeService
	tokens          *token.Manager
}

func NewAuthHandler(employeeService ports.EmployeeService, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{employeeService: employeeService, tokens: tokens}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	employee, err := h.employeeService.Signup(c.Request.Context(), domain.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang),
			)
			return
		}

		zap.L().Error("failed to sign up employee", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSignup, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToEmployeeItem(employee))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	employee, err := h.employeeService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log in employee", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSignup, lang),
		)
		return
	}

	signed, err := h.tokens.Sign(token.Identity{
		ID:   employee.ID,
		Name: employee.Name,
		Role: employee.Role,
	})
	if err != nil {
		zap.L().Error("failed to sign session token", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSignup, lang),
		)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, signed, int(h.tokens.TTL().Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, mapper.ToEmployeeItem(employee))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgEmployeeNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load current employee", zap.String("employee_id", identity.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListEmployees, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToEmployeeItem(employee))
}
