package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody is the JSON error document written by the theme store.
type errorBody struct {
	Error string `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var decoded errorBody
	if err := json.Unmarshal(resp.Body(), &decoded); err == nil && decoded.Error != "" {
		body = decoded.Error
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: body}
}
