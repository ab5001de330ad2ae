package client

import (
	"fmt"
	"net/http"
)

// APIError is returned when the server answered with a non-2xx status.
// Detail is empty when the body carried no string "detail" field.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Detail)
}
