package gw2

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDecodeValidStatus(t *testing.T) {
	resp := &response{status: http.StatusOK, body: []byte(`{"id":1,"name":"one"}`)}

	got, err := decode[widget](resp, statusOK, statusNotFound)
	require.NoError(t, err)
	assert.Equal(t, widget{ID: 1, Name: "one"}, got)
}

func TestDecodePartialContent(t *testing.T) {
	resp := &response{status: http.StatusPartialContent, body: []byte(`[{"id":1,"name":"one"}]`)}

	// 206 decodes as success only when the call site declares it
	got, err := decode[[]widget](resp, statusOKPartial, statusNotFound)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	_, err = decode[[]widget](resp, statusOK, statusNotFound)
	var unexpected *UnexpectedStatusError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, http.StatusPartialContent, unexpected.StatusCode)
}

func TestDecodeInvalidStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		invalid    statusSet
		wantText   string
		isNotFound bool
		isDenied   bool
	}{
		{
			name:       "not found",
			status:     http.StatusNotFound,
			invalid:    statusNotFound,
			wantText:   "no such id",
			isNotFound: true,
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			invalid:  statusForbidden,
			wantText: "requires scope progression",
			isDenied: true,
		},
		{
			name:     "bad request",
			status:   http.StatusBadRequest,
			invalid:  statusNotFoundOrBad,
			wantText: "invalid quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &response{status: tt.status, body: []byte(`{"text":"` + tt.wantText + `"}`)}

			_, err := decode[widget](resp, statusOK, tt.invalid)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantText, apiErr.Text)
			assert.Equal(t, tt.isNotFound, apiErr.IsNotFound())
			assert.Equal(t, tt.isDenied, apiErr.IsPermissionDenied())
			assert.Contains(t, apiErr.Error(), tt.wantText)
		})
	}
}

func TestDecodeUnexpectedStatus(t *testing.T) {
	resp := &response{status: http.StatusInternalServerError, body: []byte(`backend exploded`)}

	_, err := decode[widget](resp, statusOK, statusNotFound)
	require.Error(t, err)

	var unexpected *UnexpectedStatusError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, http.StatusInternalServerError, unexpected.StatusCode)
	assert.Contains(t, err.Error(), "500")

	// The body of an undocumented status is never interpreted
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestDecodeMalformedSuccessBody(t *testing.T) {
	resp := &response{status: http.StatusOK, body: []byte(`{"id":"not a number"}`)}

	_, err := decode[widget](resp, statusOK, statusNotFound)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
	assert.NotNil(t, decodeErr.Unwrap())
}

func TestDecodeMalformedErrorBody(t *testing.T) {
	resp := &response{status: http.StatusNotFound, body: []byte(`<html>gateway</html>`)}

	_, err := decode[widget](resp, statusOK, statusNotFound)
	require.Error(t, err)

	// An error body that does not match the documented shape is schema
	// drift, not a documented API failure
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, http.StatusNotFound, decodeErr.StatusCode)
}

func TestStatusSetContains(t *testing.T) {
	assert.True(t, statusOKPartial.contains(http.StatusOK))
	assert.True(t, statusOKPartial.contains(http.StatusPartialContent))
	assert.False(t, statusOK.contains(http.StatusPartialContent))
	assert.False(t, statusSet(nil).contains(http.StatusOK))
}
