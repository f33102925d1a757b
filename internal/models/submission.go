package models

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// SubmissionStatus represents the triage state of a submission
type SubmissionStatus string

// Possible values for SubmissionStatus
const (
	StatusNew        SubmissionStatus = "New"
	StatusInProgress SubmissionStatus = "In Progress"
	StatusResolved   SubmissionStatus = "Resolved"
)

// Submission represents a single contact-form submission record
type Submission struct {
	ID        string           `json:"submissionId" dynamodbav:"submissionId"`
	Name      string           `json:"name" dynamodbav:"name"`
	Email     string           `json:"email" dynamodbav:"email"`
	Message   string           `json:"message" dynamodbav:"message"`
	Status    SubmissionStatus `json:"status" dynamodbav:"status"`
	CreatedAt string           `json:"createdAt" dynamodbav:"createdAt"`
}

// NewSubmission builds a submission with a generated identifier, defaults
// applied, and CreatedAt stamped in RFC3339 UTC. ULIDs combine a millisecond
// timestamp with random entropy, so identifiers generated concurrently stay
// unique and sort roughly by creation time.
func NewSubmission(email, name, message string, status SubmissionStatus) *Submission {
	if status == "" {
		status = StatusNew
	}
	return &Submission{
		ID:        ulid.Make().String(),
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    status,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
