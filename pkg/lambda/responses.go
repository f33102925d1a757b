package lambda

import "encoding/json"

// CORSHeaders returns the cross-origin headers every response carries so
// browser clients on other origins can call the API directly.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, X-Amz-Date, Authorization, X-Api-Key, X-Amz-Security-Token",
	}
}

// JSON builds a Response with the given status and a JSON-encoded body
func JSON(status int, v interface{}) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		// Only unmarshalable payloads end up here; keep the contract
		// of always returning JSON
		status = 500
		body = []byte(`{"error": "Internal server error"}`)
	}

	headers := CORSHeaders()
	headers["Content-Type"] = "application/json"

	return &Response{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}

// Error builds a JSON error Response with a single error message
func Error(status int, message string) *Response {
	return JSON(status, map[string]string{"error": message})
}

// ErrorWithDetails builds a JSON error Response carrying the underlying
// cause text in a details field
func ErrorWithDetails(status int, message, details string) *Response {
	return JSON(status, map[string]string{
		"error":   message,
		"details": details,
	})
}

// NoContent builds a body-less Response, used for CORS preflight requests
func NoContent(status int) *Response {
	return &Response{
		StatusCode: status,
		Headers:    CORSHeaders(),
	}
}
