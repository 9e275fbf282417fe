package syncer

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	grab "github.com/cavaliergopher/grab/v3"

	"promptsync/internal/log"
)

// createGrabClient creates a configured grab client for content fetches
func (m *Manager) createGrabClient() *grab.Client {
	log.Debug("syncer").
		Dur("request_timeout", m.cfg.RequestTimeout).
		Msg("Creating download client")

	client := grab.NewClient()
	client.UserAgent = "promptsync/1.0"
	client.HTTPClient = &http.Client{
		Timeout: m.cfg.RequestTimeout,
		Transport: &http.Transport{
			IdleConnTimeout: 60 * time.Second,
		},
	}

	return client
}

// fetchFile downloads one instruction file to a temporary path and renames
// it over the existing local copy on success.
func (m *Manager) fetchFile(ctx context.Context, name, url string) error {
	targetPath := filepath.Join(m.cfg.PromptsDir, name)
	tempPath := targetPath + ".tmp"

	log.Debug("syncer").
		Str("file_name", name).
		Str("url", url).
		Str("temp_path", tempPath).
		Msg("Fetching file")

	req, err := grab.NewRequest(tempPath, url)
	if err != nil {
		return fmt.Errorf("create fetch request: %w", err)
	}
	req = req.WithContext(ctx)
	// Always refetch the whole file; the local copy is being replaced.
	req.NoResume = true

	resp := m.grab.Do(req)
	if err := resp.Err(); err != nil {
		os.Remove(tempPath)
		return NewDownloadFailedError(name, err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("move file into place: %w", err)
	}

	log.Debug("syncer").
		Str("file_name", name).
		Int64("size_bytes", resp.Size()).
		Str("target_path", targetPath).
		Msg("File fetched")

	return nil
}
