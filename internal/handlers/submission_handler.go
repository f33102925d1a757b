package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/services"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/store"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/pkg/lambda"
)

// SubmissionHandler handles submission intake HTTP requests
type SubmissionHandler struct {
	submissionService services.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// SubmitResponse is the success payload for a stored submission
type SubmitResponse struct {
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
}

// parseSubmitRequest decodes a creation body leniently. A missing or
// unparsable body yields the empty request; validation decides what gets
// rejected, so malformed JSON surfaces as a missing email rather than a
// parse error.
func parseSubmitRequest(body []byte) *services.SubmitRequest {
	req := &services.SubmitRequest{}
	if len(body) == 0 {
		return req
	}
	if err := json.Unmarshal(body, req); err != nil {
		return &services.SubmitRequest{}
	}
	return req
}

// @Summary Create a submission
// @Description Accept a contact-form submission and store it
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body services.SubmitRequest true "Submission data"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
	}

	sub, err := h.submissionService.Submit(c.Request.Context(), parseSubmitRequest(body))
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to process submission.",
			Details: store.Cause(err),
		})
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Message:      "Form submitted successfully!",
		SubmissionID: sub.ID,
	})
}

// HandleCreate processes a creation request from the submit Lambda
func (h *SubmissionHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	sub, err := h.submissionService.Submit(ctx, parseSubmitRequest(req.Body))
	if err != nil {
		if isValidationError(err) {
			return lambda.Error(http.StatusBadRequest, err.Error()), nil
		}
		logrus.WithError(err).Error("Failed to store submission")
		return lambda.ErrorWithDetails(http.StatusInternalServerError,
			"Failed to process submission.", store.Cause(err)), nil
	}

	return lambda.JSON(http.StatusOK, SubmitResponse{
		Message:      "Form submitted successfully!",
		SubmissionID: sub.ID,
	}), nil
}
