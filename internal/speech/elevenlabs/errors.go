package elevenlabs

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// apiErrorResponse is the vendor's error envelope.
type apiErrorResponse struct {
	Detail struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"detail"`
}

// APIError is an error response from the ElevenLabs API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("elevenlabs: %s (%d): %s", e.Status, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("elevenlabs: request failed with status %d", e.StatusCode)
}

// decodeAPIError turns a non-200 response into an APIError. The body is
// best-effort: an undecodable envelope still yields the status code.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body apiErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Status = body.Detail.Status
		apiErr.Message = body.Detail.Message
	}

	if apiErr.Status == "" {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			apiErr.Status = "invalid_api_key"
		case http.StatusNotFound:
			apiErr.Status = "voice_not_found"
		case http.StatusTooManyRequests:
			apiErr.Status = "rate_limited"
		}
	}

	return apiErr
}
