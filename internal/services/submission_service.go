package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/models"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/store"
)

// ValidationError marks a request rejected before any store call was made
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrEmailRequired is returned when a creation request carries no usable
// email. The message text is part of the API contract.
var ErrEmailRequired = &ValidationError{Message: "Email is required."}

// submissionService implements the SubmissionService interface
type submissionService struct {
	store     store.RecordStore
	validator *validator.Validate
}

// NewSubmissionService creates a new submission service backed by the given store
func NewSubmissionService(recordStore store.RecordStore) SubmissionService {
	return &submissionService{
		store:     recordStore,
		validator: validator.New(),
	}
}

// Submit validates the request, fills defaults and stores a new submission
func (s *submissionService) Submit(ctx context.Context, req *SubmitRequest) (*models.Submission, error) {
	if req == nil {
		req = &SubmitRequest{}
	}

	// The only required field is email; whitespace does not count
	if err := s.validator.Struct(req); err != nil {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, ErrEmailRequired
	}

	sub := models.NewSubmission(req.Email, req.Name, req.Message, models.SubmissionStatus(req.Status))

	if err := s.store.Put(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}
	return sub, nil
}

// Query retrieves a single submission by identifier
func (s *submissionService) Query(ctx context.Context, id string) (*models.Submission, error) {
	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}
	return sub, nil
}

// QueryAll retrieves every stored submission
func (s *submissionService) QueryAll(ctx context.Context) ([]*models.Submission, error) {
	subs, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}
	return subs, nil
}
