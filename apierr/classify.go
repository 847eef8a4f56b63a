package apierr

import "net/http"

// Classify maps a response status to the taxonomy. The match is ordered:
// a missing status (0) wins over everything, then 5xx, then the rest of
// [300,500). A nil return means success and the body can be used as-is.
//
// Pure function of (status, body, url); classifying the same inputs twice
// yields the same result.
func Classify(status int, body, url string) *APIError {
	switch {
	case status == 0:
		return &APIError{Kind: KindConnection, URL: url, Status: status, Body: body}
	case status >= http.StatusInternalServerError:
		return &APIError{Kind: KindServiceUnavailable, URL: url, Status: status, Body: body}
	case status >= http.StatusMultipleChoices:
		return &APIError{Kind: KindClient, URL: url, Status: status, Body: body}
	default:
		return nil
	}
}
