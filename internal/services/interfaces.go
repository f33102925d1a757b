package services

import (
	"context"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/models"
)

// SubmissionService defines the interface for submission business logic
type SubmissionService interface {
	// Submit validates a creation request, builds the record and stores it
	Submit(ctx context.Context, req *SubmitRequest) (*models.Submission, error)

	// Query retrieves a single submission by identifier, nil when absent
	Query(ctx context.Context, id string) (*models.Submission, error)

	// QueryAll retrieves every stored submission
	QueryAll(ctx context.Context) ([]*models.Submission, error)
}

// Request types for service operations

// SubmitRequest carries the fields a creation request may supply. Every
// field except Email is optional.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
