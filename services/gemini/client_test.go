package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("x-goog-api-key"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestDescribeProjectMissingKey(t *testing.T) {
	c := NewClient("", "")

	got := c.DescribeProject(context.Background(), "Neon Racer", []string{"Unity"})
	assert.Equal(t, FallbackMissingKey, got)
}

func TestDescribeProject(t *testing.T) {
	srv := textServer(t, `{"candidates":[{"content":{"parts":[{"text":"A blazing fast cyberpunk racer."}]}}]}`, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	got := c.DescribeProject(context.Background(), "Neon Racer", []string{"Unity", "C#"})
	assert.Equal(t, "A blazing fast cyberpunk racer.", got)
}

func TestDescribeProjectServerError(t *testing.T) {
	srv := textServer(t, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	got := c.DescribeProject(context.Background(), "Neon Racer", nil)
	assert.Equal(t, FallbackDescription, got)
}

func TestDescribeProjectEmptyResponse(t *testing.T) {
	srv := textServer(t, `{"candidates":[]}`, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	got := c.DescribeProject(context.Background(), "Neon Racer", nil)
	assert.Equal(t, EmptyDescription, got)
}

func TestDescribeProjectUnreachableServer(t *testing.T) {
	srv := textServer(t, "", http.StatusOK)
	srv.Close() // connection refused from here on

	c := NewClient("test-key", srv.URL)
	got := c.DescribeProject(context.Background(), "Neon Racer", nil)
	assert.Equal(t, FallbackDescription, got)
}

func TestGenerateBio(t *testing.T) {
	srv := textServer(t, `{"candidates":[{"content":{"parts":[{"text":"Seven years of shipping worlds."}]}}]}`, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	got := c.GenerateBio(context.Background(), "Elyazid Azri", 7, "Unity")
	assert.Equal(t, "Seven years of shipping worlds.", got)
}

func TestGenerateBioMissingKey(t *testing.T) {
	c := NewClient("", "")

	got := c.GenerateBio(context.Background(), "Elyazid Azri", 7, "Unity")
	assert.Equal(t, FallbackMissingKey, got)
}

func TestIllustrateProject(t *testing.T) {
	srv := textServer(t, `{"candidates":[{"content":{"parts":[{"text":"here you go"},{"inlineData":{"mimeType":"image/png","data":"aGVsbG8="}}]}}]}`, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	uri, ok := c.IllustrateProject(context.Background(), "Neon Racer. fast")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", uri)
}

func TestIllustrateProjectDefaultsMimeType(t *testing.T) {
	srv := textServer(t, `{"candidates":[{"content":{"parts":[{"inlineData":{"data":"aGVsbG8="}}]}}]}`, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	uri, ok := c.IllustrateProject(context.Background(), "Neon Racer")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", uri)
}

func TestIllustrateProjectNoCandidate(t *testing.T) {
	srv := textServer(t, `{"candidates":[{"content":{"parts":[{"text":"no image for you"}]}}]}`, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	_, ok := c.IllustrateProject(context.Background(), "Neon Racer")
	assert.False(t, ok)
}

func TestIllustrateProjectMissingKey(t *testing.T) {
	c := NewClient("", "")

	_, ok := c.IllustrateProject(context.Background(), "Neon Racer")
	assert.False(t, ok)
}
