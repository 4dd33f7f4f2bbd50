package utils

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/equipbook/equipbook/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidate(t *testing.T) {
	type TestStruct struct {
		Field1 string `json:"field1" validate:"required"`
		Field2 int    `json:"field2"`
	}

	tests := []struct {
		name        string
		requestBody string
		target      interface{}
		expectedErr *errors.ErrorWithStatusCode
	}{
		{
			name:        "Valid JSON and Validation",
			requestBody: `{"field1": "value", "field2": 123}`,
			target:      &TestStruct{},
			expectedErr: nil,
		},
		{
			name:        "Valid JSON and Validation [2]",
			requestBody: `{"field1": "value"}`,
			target:      &TestStruct{},
			expectedErr: nil,
		},
		{
			name:        "Invalid JSON",
			requestBody: `{"field1": "value", "field2": 123`, // Missing closing brace
			target:      &TestStruct{},
			expectedErr: &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400},
		},
		{
			name:        "Missing Required Field",
			requestBody: `{"field2": 123}`,
			target:      &TestStruct{},
			expectedErr: &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400},
		},
		{
			name:        "Empty Body",
			requestBody: "",
			target:      &TestStruct{},
			expectedErr: &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(tt.requestBody)))

			err := DecodeValidate(req.Body, tt.target)

			if tt.expectedErr == nil {
				assert.NoError(t, err, "Expected no error")
			} else {
				e, ok := err.(*errors.ErrorWithStatusCode)
				require.True(t, ok, "Error should be ErrorWithStatusCode")
				assert.Equal(t, tt.expectedErr.Message, e.Message, "Error message mismatch")
				assert.Equal(t, tt.expectedErr.StatusCode, e.StatusCode, "Status code mismatch")
			}
		})
	}
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"status error", &errors.ErrorWithStatusCode{Message: "not found", StatusCode: http.StatusNotFound}, http.StatusNotFound, "not found"},
		{"wrapped status error", fmt.Errorf("ctx: %w", &errors.ErrorWithStatusCode{Message: "bad", StatusCode: http.StatusBadRequest}), http.StatusBadRequest, "bad"},
		{"backend failure", errors.NewFailure("CreateBooking", errors.ErrHTTPStatus, nil, "slot taken", http.StatusConflict), http.StatusBadGateway, "slot taken"},
		{"plain error", fmt.Errorf("oops"), http.StatusInternalServerError, "oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteErrorAndStatusCode(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusCreated, map[string]bool{"success": true})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success": true}`, rr.Body.String())
}
