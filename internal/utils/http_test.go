package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "map body",
			data:       map[string]string{"pool_name": "pool1"},
			statusCode: http.StatusOK,
			wantBody:   `{"pool_name":"pool1"}`,
		},
		{
			name:       "custom status code",
			data:       map[string]string{"error": "not found"},
			statusCode: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
		{
			name:       "nil body",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.statusCode)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteText(rec, "http://127.0.0.1:8080", http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, len("http://127.0.0.1:8080"), n)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "http://127.0.0.1:8080", rec.Body.String())
}
