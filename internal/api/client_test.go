package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingBody = `[
	{"name": "go.instructions.md", "type": "file", "sha": "abc123", "size": 10,
	 "download_url": "https://raw.example.com/go.instructions.md"},
	{"name": "rust.instructions.md", "type": "file", "sha": "def456", "size": 20,
	 "download_url": "https://raw.example.com/rust.instructions.md"},
	{"name": "README.md", "type": "file", "sha": "aaa", "size": 5,
	 "download_url": "https://raw.example.com/README.md"},
	{"name": "archive.instructions.md", "type": "dir", "sha": "bbb", "size": 0,
	 "download_url": null}
]`

func newTestClient(srv *httptest.Server, token string) *Client {
	return NewClient(srv.URL, "github", "awesome-copilot", "instructions", token, 5*time.Second)
}

func TestListInstructionFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/github/awesome-copilot/contents/instructions", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.Write([]byte(listingBody))
	}))
	defer srv.Close()

	client := newTestClient(srv, "")
	files, err := client.ListInstructionFiles(context.Background(), ".instructions.md")
	require.NoError(t, err)

	// README.md fails the suffix filter, the dir entry fails the type filter.
	require.Len(t, files, 2)
	assert.Equal(t, "go.instructions.md", files[0].Name)
	assert.Equal(t, "https://raw.example.com/go.instructions.md", files[0].DownloadURL)
	assert.Equal(t, "rust.instructions.md", files[1].Name)
	assert.Equal(t, int64(20), files[1].Size)
}

func TestListInstructionFilesSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := newTestClient(srv, "secret-token")
	_, err := client.ListInstructionFiles(context.Background(), ".instructions.md")
	require.NoError(t, err)
}

func TestListInstructionFilesNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "API rate limit exceeded"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	client := newTestClient(srv, "")
	_, err := client.ListInstructionFiles(context.Background(), ".instructions.md")
	require.Error(t, err)

	var listErr *ListingError
	require.True(t, errors.As(err, &listErr))
	assert.Equal(t, http.StatusForbidden, listErr.StatusCode)
}

func TestListInstructionFilesMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"this is": "not an array"`))
	}))
	defer srv.Close()

	client := newTestClient(srv, "")
	_, err := client.ListInstructionFiles(context.Background(), ".instructions.md")
	assert.Error(t, err)
}

func TestListInstructionFilesEmptyListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := newTestClient(srv, "")
	files, err := client.ListInstructionFiles(context.Background(), ".instructions.md")
	require.NoError(t, err)
	assert.Empty(t, files)
}
