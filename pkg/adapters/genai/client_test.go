package genai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtavil/salespipe/pkg/adapters/genai"
	"github.com/rtavil/salespipe/pkg/domain"
)

func TestPolish_ReturnsText(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "polish-v1", req["model"])
		assert.NotEmpty(t, req["prompt"])

		_ = json.NewEncoder(w).Encode(map[string]string{"text": "polished email"})
	}))
	defer srv.Close()

	c := genai.New(srv.URL, "secret", "polish-v1")

	out, err := c.Polish(context.Background(), "Polish this.")
	require.NoError(t, err)
	assert.Equal(t, "polished email", out)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestPolish_RetryableStatusIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := genai.New(srv.URL, "secret", "polish-v1")

	_, err := c.Polish(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err))
}

func TestPolish_ClientErrorIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := genai.New(srv.URL, "bad-key", "polish-v1")

	_, err := c.Polish(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, domain.IsTransient(err))
}

func TestPolish_ConnectionFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	c := genai.New(srv.URL, "secret", "polish-v1")

	_, err := c.Polish(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err))
}
