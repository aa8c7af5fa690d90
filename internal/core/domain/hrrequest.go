package domain

import "time"

type HRRequestStatus string

const (
	HRRequestStatusPending  HRRequestStatus = "pending"
	HRRequestStatusApproved HRRequestStatus = "approved"
	HRRequestStatusRejected HRRequestStatus = "rejected"
)

func (s HRRequestStatus) Valid() bool {
	switch s {
	case HRRequestStatusPending, HRRequestStatusApproved, HRRequestStatusRejected:
		return true
	}
	return false
}

type HRRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Title        string
	Query        string
	Status       HRRequestStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateHRRequestInput struct {
	EmployeeID string
	Title      string
	Query      string
}
