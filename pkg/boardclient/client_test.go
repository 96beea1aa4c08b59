package boardclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsAuthAndCorrelationHeaders(t *testing.T) {
	var gotAuth, gotCorrelation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCorrelation = r.Header.Get("X-Correlation-Id")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Task{ID: "t-1"})
	}))
	defer srv.Close()

	client := New(srv.URL, "tok-1")
	_, err := client.CreateTask(context.Background(), "b-1", "c-1", NewTask{Title: "x"}, "corr-1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "corr-1", gotCorrelation)
}

func TestClientDecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"code": "NOT_FOUND", "error": "Task not found"})
	}))
	defer srv.Close()

	client := New(srv.URL, "tok-1")
	_, err := client.ListTasks(context.Background(), "b-1", "c-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Task not found", apiErr.Message)
}

func TestClientBackendUnavailable(t *testing.T) {
	client := New("http://127.0.0.1:1", "")
	_, err := client.ListTasks(context.Background(), "b-1", "c-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unavailable")
}
