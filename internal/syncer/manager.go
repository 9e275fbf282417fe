package syncer

import (
	"context"
	"sync"

	grab "github.com/cavaliergopher/grab/v3"

	"promptsync/internal/api"
	"promptsync/internal/config"
	"promptsync/internal/log"
)

// fetchJob represents a single file fetch task
type fetchJob struct {
	Name string
	URL  string
}

// Result summarizes a sync run.
type Result struct {
	Updated   int
	Failed    int
	Preserved int
}

// Manager fetches the files named in a sync plan into the prompts directory.
type Manager struct {
	cfg  *config.Config
	grab *grab.Client

	mu     sync.Mutex // protects result counters
	result Result
}

// New creates a new sync manager
func New(cfg *config.Config) *Manager {
	m := &Manager{cfg: cfg}
	m.grab = m.createGrabClient()
	return m
}

// Run executes the plan against the remote listing. Files in the update set
// are fetched and overwritten; per-file failures are logged and counted
// without aborting the run. In dry-run mode nothing is fetched.
func (m *Manager) Run(ctx context.Context, plan Plan, remote []api.RemoteFile) Result {
	m.mu.Lock()
	m.result = Result{Preserved: len(plan.Preserve)}
	m.mu.Unlock()

	if m.cfg.DryRun {
		for _, name := range plan.Update {
			log.Info("syncer").
				Str("file_name", name).
				Msg("Would update file")
		}
		return m.snapshot()
	}

	byName := make(map[string]api.RemoteFile, len(remote))
	for _, file := range remote {
		byName[file.Name] = file
	}

	jobs := make(chan fetchJob)
	var wg sync.WaitGroup

	for i := 0; i < m.cfg.WorkerCount; i++ {
		wg.Add(1)
		go m.fetchWorker(ctx, jobs, &wg)
	}

enqueue:
	for i, name := range plan.Update {
		file, ok := byName[name]
		if !ok || file.DownloadURL == "" {
			log.Error("syncer").
				Str("file_name", name).
				Err(NewMissingDownloadURLError(name)).
				Msg("Skipping file without download URL")
			m.addFailed()
			continue
		}

		select {
		case jobs <- fetchJob{Name: name, URL: file.DownloadURL}:
		case <-ctx.Done():
			log.Warn("syncer").
				Int("remaining", len(plan.Update)-i).
				Err(NewSyncCancelledError(ctx.Err().Error())).
				Msg("Sync cancelled before all files were queued")
			for range plan.Update[i:] {
				m.addFailed()
			}
			break enqueue
		}
	}
	close(jobs)
	wg.Wait()

	return m.snapshot()
}

// fetchWorker processes fetch jobs until the channel is closed
func (m *Manager) fetchWorker(ctx context.Context, jobs <-chan fetchJob, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		if err := m.fetchFile(ctx, job.Name, job.URL); err != nil {
			log.Error("syncer").
				Str("file_name", job.Name).
				Err(err).
				Msg("Failed to update file")
			m.addFailed()
			continue
		}

		log.Info("syncer").
			Str("file_name", job.Name).
			Msg("Updated file")
		m.addUpdated()
	}
}

func (m *Manager) addUpdated() {
	m.mu.Lock()
	m.result.Updated++
	m.mu.Unlock()
}

func (m *Manager) addFailed() {
	m.mu.Lock()
	m.result.Failed++
	m.mu.Unlock()
}

func (m *Manager) snapshot() Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}
