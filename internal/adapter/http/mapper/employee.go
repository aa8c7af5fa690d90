package mapper

import (
	"time"

	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/core/domain"
)

func ToEmployeeItems(employees []domain.Employee) []dto.EmployeeItem {
	items := make([]dto.EmployeeItem, 0, len(employees))
	for _, employee := range employees {
		items = append(items, ToEmployeeItem(employee))
	}
	return items
}

func ToEmployeeItem(employee domain.Employee) dto.EmployeeItem {
	return dto.EmployeeItem{
		ID:        employee.ID,
		Name:      employee.Name,
		Email:     employee.Email,
		Role:      employee.Role,
		Status:    string(employee.Status),
		CreatedAt: employee.CreatedAt.Format(time.RFC3339),
		UpdatedAt: employee.UpdatedAt.Format(time.RFC3339),
	}
}
