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

type HRRequestHandler struct {
	requestService ports.HRRequestService
}

func NewHRRequestHandler(requestService ports.HRRequestService) *HRRequestHandler {
	return &HRRequestHandler{requestService: requestService}
}

func (h *HRRequestHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	var req dto.CreateHRRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	request, err := h.requestService.Submit(c.Request.Context(), domain.CreateHRRequestInput{
		EmployeeID: identity.ID,
		Title:      req.Title,
		Query:      req.Query,
	})
	if err != nil {
		zap.L().Error("failed to submit hr request", zap.String("employee_id", identity.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSubmitRequest, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToHRRequestItem(request))
}

func (h *HRRequestHandler) ListAll(c *gin.Context) {
	lang := middleware.GetLang(c)

	requests, err := h.requestService.ListAll(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list hr requests", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListRequests, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToHRRequestItems(requests))
}

func (h *HRRequestHandler) ListMine(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	requests, err := h.requestService.ListMine(c.Request.Context(), identity.ID)
	if err != nil {
		zap.L().Error("failed to list own hr requests", zap.String("employee_id", identity.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListRequests, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToHRRequestItems(requests))
}

func (h *HRRequestHandler) UpdateStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	requestID := c.Param("id")

	var req dto.UpdateHRRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	request, err := h.requestService.Resolve(c.Request.Context(), requestID, domain.HRRequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgRequestNotFound, lang),
			)
		case errors.Is(err, domain.ErrRequestResolved):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgRequestResolved, lang),
			)
		default:
			zap.L().Error("failed to resolve hr request", zap.String("request_id", requestID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailResolveRequest, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToHRRequestItem(request))
}
