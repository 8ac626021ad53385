package core

import (
	"context"
	"time"
)

type RecoveryStatus string

const (
	RecoveryStatusPending  RecoveryStatus = "pending"
	RecoveryStatusApproved RecoveryStatus = "approved"
	RecoveryStatusDenied   RecoveryStatus = "denied"
)

type RecoveryRequest struct {
	ID           string         `json:"id"`
	UserID       string         `json:"-"`
	Description  string         `json:"description"`
	ContactEmail string         `json:"contactEmail"`
	Status       RecoveryStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type RecoveryStore interface {
	Create(ctx context.Context, req *RecoveryRequest) error
	List(ctx context.Context, userID string) ([]*RecoveryRequest, error)
}
