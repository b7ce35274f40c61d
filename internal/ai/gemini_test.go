package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campusai-api/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGeminiClient(config.AIConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	})
}

func TestReply(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hi Pulkit, your first class is at 09:00."}]}}]}`))
	})

	reply, err := client.Reply(context.Background(), "Pulkit", "When is my first class?")
	require.NoError(t, err)
	assert.Equal(t, "Hi Pulkit, your first class is at 09:00.", reply)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "When is my first class?", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.True(t, strings.Contains(gotBody.SystemInstruction.Parts[0].Text, "a student named Pulkit"))
}

func TestReplyNoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	reply, err := client.Reply(context.Background(), "Pulkit", "hello")
	require.NoError(t, err)
	assert.Equal(t, greetingReply, reply)
}

func TestReplyEmptyPartText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`))
	})

	reply, err := client.Reply(context.Background(), "Pulkit", "hello")
	require.NoError(t, err)
	assert.Equal(t, greetingReply, reply)
}

func TestReplyUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Reply(context.Background(), "Pulkit", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestReplyContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect and
		// cancels the request context; otherwise this blocks forever and
		// deadlocks the httptest server's Close in cleanup.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Reply(ctx, "Pulkit", "hello")
	require.Error(t, err)
}
