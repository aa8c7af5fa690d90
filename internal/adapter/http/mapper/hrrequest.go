package mapper

import (
	"time"

	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/core/domain"
)

func ToHRRequestItems(requests []domain.HRRequest) []dto.HRRequestItem {
	items := make([]dto.HRRequestItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, ToHRRequestItem(request))
	}
	return items
}

func ToHRRequestItem(request domain.HRRequest) dto.HRRequestItem {
	return dto.HRRequestItem{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		EmployeeName: request.EmployeeName,
		Title:        request.Title,
		Query:        request.Query,
		Status:       string(request.Status),
		CreatedAt:    request.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    request.UpdatedAt.Format(time.RFC3339),
	}
}
