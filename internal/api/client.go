package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"promptsync/internal/log"
)

// DefaultBaseURL is the GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// RemoteFile is a single entry from a repository contents listing.
type RemoteFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	SHA         string `json:"sha"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url"`
}

// Client lists instruction files from a GitHub repository directory.
type Client struct {
	http    *http.Client
	baseURL string
	owner   string
	repo    string
	dir     string
}

// NewClient creates a contents API client. A non-empty token is attached
// via an oauth2 static source to lift the unauthenticated rate limit.
func NewClient(baseURL, owner, repo, dir, token string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), tokenSource)
		httpClient.Timeout = timeout
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		owner:   owner,
		repo:    repo,
		dir:     dir,
	}
}

// ListInstructionFiles fetches the remote directory listing and returns the
// entries of type "file" whose name carries the given suffix.
func (c *Client) ListInstructionFiles(ctx context.Context, suffix string) ([]RemoteFile, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, c.dir)

	log.Debug("api").
		Str("url", url).
		Str("suffix", suffix).
		Msg("Fetching remote listing")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create listing request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "promptsync/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewListingFailedError(url, resp.StatusCode)
	}

	var entries []RemoteFile
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	files := make([]RemoteFile, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "file" {
			continue
		}
		if !strings.HasSuffix(entry.Name, suffix) {
			continue
		}
		files = append(files, entry)
	}

	log.Debug("api").
		Int("total_entries", len(entries)).
		Int("matching_files", len(files)).
		Msg("Remote listing fetched")

	return files, nil
}
