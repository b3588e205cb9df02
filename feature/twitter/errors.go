package twitter

import (
	"fmt"
	"strings"
)

// codeNoUserMatches is returned with HTTP 404 when none of the requested
// accounts exist.
const codeNoUserMatches = 17

// APIError is a non-success response from the lookup endpoint.
type APIError struct {
	StatusCode int
	Errors     []APIErrorDetail
}

// APIErrorDetail is one entry of the "errors" array in an error response.
type APIErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("lookup returned HTTP %d", e.StatusCode)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		parts = append(parts, fmt.Sprintf("%d %s", d.Code, d.Message))
	}
	return fmt.Sprintf("lookup returned HTTP %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

// noUserMatches reports whether the error only says that none of the
// requested accounts could be found.
func (e *APIError) noUserMatches() bool {
	if e.StatusCode != 404 || len(e.Errors) == 0 {
		return false
	}
	for _, d := range e.Errors {
		if d.Code != codeNoUserMatches {
			return false
		}
	}
	return true
}
