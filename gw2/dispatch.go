package gw2

import (
	"context"
	"encoding/json"
	"net/http"
)

// statusSet is a declared set of HTTP status codes. Every endpoint call
// site declares two: the codes decoded as the success type and the codes
// decoded as the API's structured error body.
type statusSet []int

func (s statusSet) contains(code int) bool {
	for _, c := range s {
		if c == code {
			return true
		}
	}
	return false
}

// Status sets shared by the endpoint catalog. Batch lookups additionally
// accept 206, which the API uses when only part of a requested ID list
// resolves.
var (
	statusOK        = statusSet{http.StatusOK}
	statusOKPartial = statusSet{http.StatusOK, http.StatusPartialContent}

	statusNotFound      = statusSet{http.StatusNotFound}
	statusForbidden     = statusSet{http.StatusForbidden}
	statusAuthFailure   = statusSet{http.StatusNotFound, http.StatusForbidden}
	statusAuthBadInput  = statusSet{http.StatusNotFound, http.StatusForbidden, http.StatusBadRequest}
	statusNotFoundOrBad = statusSet{http.StatusNotFound, http.StatusBadRequest}
)

// decode classifies a completed response and produces the typed outcome.
// Classification is strictly ordered: a status in valid decodes the success
// type, a status in invalid decodes the API's error body, anything else is
// an undocumented status and the body is not touched. A success-status body
// that fails to decode signals schema drift and is surfaced as a
// *DecodeError rather than an *APIError.
func decode[T any](resp *response, valid, invalid statusSet) (T, error) {
	var zero T

	switch {
	case valid.contains(resp.status):
		var v T
		if err := json.Unmarshal(resp.body, &v); err != nil {
			return zero, &DecodeError{StatusCode: resp.status, Err: err}
		}
		return v, nil

	case invalid.contains(resp.status):
		apiErr := &APIError{StatusCode: resp.status}
		if err := json.Unmarshal(resp.body, apiErr); err != nil {
			return zero, &DecodeError{StatusCode: resp.status, Err: err}
		}
		return zero, apiErr

	default:
		return zero, &UnexpectedStatusError{StatusCode: resp.status}
	}
}

// fetch performs one GET and dispatches the response. The endpoint wrappers
// are thin instantiations of this function; methods cannot carry type
// parameters, so it lives at package level.
func fetch[T any](ctx context.Context, c *Client, path string, authed bool, valid, invalid statusSet) (T, error) {
	resp, err := c.get(ctx, path, authed)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp, valid, invalid)
}
