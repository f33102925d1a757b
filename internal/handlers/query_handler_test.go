package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/services"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/store"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/pkg/lambda"
)

func getSubmissions(router *gin.Engine, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/submissions"+query, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func seedSubmissions(t *testing.T, service services.SubmissionService, emails ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(emails))
	for _, email := range emails {
		sub, err := service.Submit(context.Background(), &services.SubmitRequest{Email: email})
		if err != nil {
			t.Fatalf("Seeding submission failed: %v", err)
		}
		ids = append(ids, sub.ID)
	}
	return ids
}

func TestGetSubmissions_All(t *testing.T) {
	service := services.NewSubmissionService(store.NewMemoryStore())
	seedSubmissions(t, service, "a@example.com", "b@example.com")
	router := setupRouter(service)

	rec := getSubmissions(router, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if body["message"] != "Data retrieved successfully" {
		t.Errorf("message = %v, want %q", body["message"], "Data retrieved successfully")
	}

	data, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("data is not an array: %T", body["data"])
	}
	if len(data) != 2 {
		t.Errorf("data has %d records, want 2", len(data))
	}
}

func TestGetSubmissions_EmptyStore(t *testing.T) {
	router := setupRouter(services.NewSubmissionService(store.NewMemoryStore()))

	rec := getSubmissions(router, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}

	// An empty store answers with an empty array, not null
	data, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("data = %v (%T), want an empty array", body["data"], body["data"])
	}
	if len(data) != 0 {
		t.Errorf("data has %d records, want 0", len(data))
	}
}

func TestGetSubmissions_ByID(t *testing.T) {
	service := services.NewSubmissionService(store.NewMemoryStore())
	ids := seedSubmissions(t, service, "a@example.com", "b@example.com")
	router := setupRouter(service)

	rec := getSubmissions(router, "?submissionId="+ids[0])

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}

	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data is not a single record: %T", body["data"])
	}
	if data["submissionId"] != ids[0] {
		t.Errorf("submissionId = %v, want %s", data["submissionId"], ids[0])
	}
	if data["email"] != "a@example.com" {
		t.Errorf("email = %v, want a@example.com", data["email"])
	}
}

func TestGetSubmissions_ByIDAbsent(t *testing.T) {
	service := services.NewSubmissionService(store.NewMemoryStore())
	seedSubmissions(t, service, "a@example.com")
	router := setupRouter(service)

	// An unknown identifier is answered 200 with null data, not an error
	rec := getSubmissions(router, "?submissionId=does-not-exist")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if body["message"] != "Data retrieved successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if data, exists := body["data"]; !exists || data != nil {
		t.Errorf("data = %v, want null", data)
	}
}

func TestGetSubmissions_StoreFailure(t *testing.T) {
	mem := store.NewMemoryStore()
	cause := errors.New("connection reset by peer")
	mem.FailReads(cause)
	router := setupRouter(services.NewSubmissionService(mem))

	for _, query := range []string{"", "?submissionId=some-id"} {
		rec := getSubmissions(router, query)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("Status = %d, want 500 (query %q)", rec.Code, query)
		}

		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Response is not valid JSON: %v", err)
		}
		if resp.Error != "Failed to fetch data" {
			t.Errorf("error = %q, want %q", resp.Error, "Failed to fetch data")
		}
		if resp.Details != cause.Error() {
			t.Errorf("details = %q, want %q", resp.Details, cause.Error())
		}
	}
}

func TestGetSubmissions_CORSHeaders(t *testing.T) {
	router := setupRouter(services.NewSubmissionService(store.NewMemoryStore()))

	rec := getSubmissions(router, "")
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Retrieval response is missing CORS headers")
	}
}

func TestSubmitThenQueryRoundTrip(t *testing.T) {
	service := services.NewSubmissionService(store.NewMemoryStore())
	router := setupRouter(service)

	created := postSubmission(router, `{"name":"Jane","email":"jane@example.com","message":"hi"}`)
	if created.Code != http.StatusOK {
		t.Fatalf("Create status = %d, want 200", created.Code)
	}
	var submitResp SubmitResponse
	if err := json.Unmarshal(created.Body.Bytes(), &submitResp); err != nil {
		t.Fatalf("Create response is not valid JSON: %v", err)
	}

	fetched := getSubmissions(router, "?submissionId="+submitResp.SubmissionID)
	if fetched.Code != http.StatusOK {
		t.Fatalf("Query status = %d, want 200", fetched.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(fetched.Body.Bytes(), &body); err != nil {
		t.Fatalf("Query response is not valid JSON: %v", err)
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data is not a single record: %T", body["data"])
	}
	if data["submissionId"] != submitResp.SubmissionID {
		t.Errorf("Round trip returned record %v, want %s", data["submissionId"], submitResp.SubmissionID)
	}
	if data["name"] != "Jane" || data["email"] != "jane@example.com" || data["message"] != "hi" {
		t.Errorf("Round trip lost fields: %v", data)
	}
}

// Lambda surface

func TestHandleList_All(t *testing.T) {
	service := services.NewSubmissionService(store.NewMemoryStore())
	seedSubmissions(t, service, "a@example.com", "b@example.com")
	handler := NewQueryHandler(service)

	resp, err := handler.HandleList(context.Background(), &lambda.Request{Method: http.MethodGet})
	if err != nil {
		t.Fatalf("HandleList() failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("Lambda response is missing CORS headers")
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Body is not valid JSON: %v", err)
	}
	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 2 {
		t.Errorf("data = %v, want 2 records", body["data"])
	}
}

func TestHandleList_ByID(t *testing.T) {
	service := services.NewSubmissionService(store.NewMemoryStore())
	ids := seedSubmissions(t, service, "a@example.com")
	handler := NewQueryHandler(service)

	resp, err := handler.HandleList(context.Background(), &lambda.Request{
		Method:      http.MethodGet,
		QueryParams: map[string]string{"submissionId": ids[0]},
	})
	if err != nil {
		t.Fatalf("HandleList() failed: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Body is not valid JSON: %v", err)
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data is not a single record: %T", body["data"])
	}
	if data["submissionId"] != ids[0] {
		t.Errorf("submissionId = %v, want %s", data["submissionId"], ids[0])
	}
}

func TestHandleList_ByIDAbsent(t *testing.T) {
	handler := NewQueryHandler(services.NewSubmissionService(store.NewMemoryStore()))

	resp, err := handler.HandleList(context.Background(), &lambda.Request{
		Method:      http.MethodGet,
		QueryParams: map[string]string{"submissionId": "nope"},
	})
	if err != nil {
		t.Fatalf("HandleList() failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want 200", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Body is not valid JSON: %v", err)
	}
	if data, exists := body["data"]; !exists || data != nil {
		t.Errorf("data = %v, want null", data)
	}
}

func TestHandleList_StoreFailure(t *testing.T) {
	mem := store.NewMemoryStore()
	cause := errors.New("ProvisionedThroughputExceededException")
	mem.FailReads(cause)
	handler := NewQueryHandler(services.NewSubmissionService(mem))

	resp, err := handler.HandleList(context.Background(), &lambda.Request{Method: http.MethodGet})
	if err != nil {
		t.Fatalf("HandleList() failed: %v", err)
	}

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("StatusCode = %d, want 500", resp.StatusCode)
	}

	var result ErrorResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		t.Fatalf("Body is not valid JSON: %v", err)
	}
	if result.Error != "Failed to fetch data" {
		t.Errorf("error = %q, want %q", result.Error, "Failed to fetch data")
	}
	if result.Details != cause.Error() {
		t.Errorf("details = %q, want %q", result.Details, cause.Error())
	}
}

func TestLambdaRoundTrip(t *testing.T) {
	service := services.NewSubmissionService(store.NewMemoryStore())
	submitHandler := NewSubmissionHandler(service)
	queryHandler := NewQueryHandler(service)

	created, err := submitHandler.HandleCreate(context.Background(), &lambda.Request{
		Method: http.MethodPost,
		Body:   []byte(`{"email":"jane@example.com","status":"In Progress"}`),
	})
	if err != nil {
		t.Fatalf("HandleCreate() failed: %v", err)
	}

	var submitResp SubmitResponse
	if err := json.Unmarshal(created.Body, &submitResp); err != nil {
		t.Fatalf("Create body is not valid JSON: %v", err)
	}

	fetched, err := queryHandler.HandleList(context.Background(), &lambda.Request{
		Method:      http.MethodGet,
		QueryParams: map[string]string{"submissionId": submitResp.SubmissionID},
	})
	if err != nil {
		t.Fatalf("HandleList() failed: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(fetched.Body, &body); err != nil {
		t.Fatalf("Query body is not valid JSON: %v", err)
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data is not a single record: %T", body["data"])
	}
	if data["status"] != "In Progress" {
		t.Errorf("status = %v, want 'In Progress'", data["status"])
	}
}
