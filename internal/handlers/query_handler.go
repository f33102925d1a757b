package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/models"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/services"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/store"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/pkg/lambda"
)

// QueryHandler handles submission retrieval HTTP requests
type QueryHandler struct {
	submissionService services.SubmissionService
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(submissionService services.SubmissionService) *QueryHandler {
	return &QueryHandler{
		submissionService: submissionService,
	}
}

// QueryResponse is the success envelope for retrieval results. Data is a
// single record (or null) for identifier lookups and an array for scans.
type QueryResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// fetchData runs a point lookup when an identifier is given, otherwise a
// full scan. An unknown identifier is not an error: it yields null data.
func (h *QueryHandler) fetchData(ctx context.Context, id string) (interface{}, error) {
	if id != "" {
		sub, err := h.submissionService.Query(ctx, id)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, nil
		}
		return sub, nil
	}

	subs, err := h.submissionService.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []*models.Submission{}
	}
	return subs, nil
}

// @Summary Retrieve submissions
// @Description Fetch one submission by identifier, or every stored submission
// @Tags submissions
// @Produce json
// @Param submissionId query string false "Submission identifier"
// @Success 200 {object} QueryResponse
// @Failure 500 {object} ErrorResponse
// @Router /submissions [get]
func (h *QueryHandler) GetSubmissions(c *gin.Context) {
	data, err := h.fetchData(c.Request.Context(), c.Query("submissionId"))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to fetch data",
			Details: store.Cause(err),
		})
		return
	}

	c.JSON(http.StatusOK, QueryResponse{
		Message: "Data retrieved successfully",
		Data:    data,
	})
}

// HandleList processes a retrieval request from the submissions Lambda
func (h *QueryHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	data, err := h.fetchData(ctx, req.QueryParams["submissionId"])
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch submissions")
		return lambda.ErrorWithDetails(http.StatusInternalServerError,
			"Failed to fetch data", store.Cause(err)), nil
	}

	return lambda.JSON(http.StatusOK, QueryResponse{
		Message: "Data retrieved successfully",
		Data:    data,
	}), nil
}
