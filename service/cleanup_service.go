package service

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultRetention is how long a generated artifact stays available after its
// most recent registration
const DefaultRetention = 10 * time.Minute

// cleanupHandle is one pending deferred deletion. At most one live handle
// exists per artifact name at any time
type cleanupHandle struct {
	timer *time.Timer
}

// CleanupService owns every generated artifact from creation until deletion.
// It is a fire-and-forget reaper, not a queryable store; the registry only
// serializes register/cancel/fire per name. Implements CleanupServiceInterface
type CleanupService struct {
	dir       string
	retention time.Duration

	mu      sync.Mutex
	handles map[string]*cleanupHandle
}

// NewCleanupService creates a CleanupService reaping files under dir
func NewCleanupService(dir string, retention time.Duration) *CleanupService {
	return &CleanupService{
		dir:       dir,
		retention: retention,
		handles:   make(map[string]*cleanupHandle),
	}
}

// Ensure CleanupService implements CleanupServiceInterface
var _ CleanupServiceInterface = (*CleanupService)(nil)

// Register schedules deletion of name retention from now. Cancel-then-replace
// is a single atomic step under the registry lock
func (c *CleanupService) Register(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.handles[name]; ok {
		existing.timer.Stop()
		log.Printf("🔁 Cleanup rescheduled for %s (retention window reset)", name)
	}

	handle := &cleanupHandle{}
	handle.timer = time.AfterFunc(c.retention, func() {
		c.fire(name, handle)
	})
	c.handles[name] = handle
}

// Cancel stops a pending deletion without deleting the file
func (c *CleanupService) Cancel(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	handle, ok := c.handles[name]
	if !ok {
		return false
	}
	handle.timer.Stop()
	delete(c.handles, name)
	return true
}

// fire deletes the artifact when its timer expires. A fire that lost a race
// with a re-registration finds a different handle in the registry and backs
// off, so it can never delete the replacement's file
func (c *CleanupService) fire(name string, handle *cleanupHandle) {
	c.mu.Lock()
	current, ok := c.handles[name]
	if !ok || current != handle {
		c.mu.Unlock()
		return
	}
	delete(c.handles, name)
	c.mu.Unlock()

	path := filepath.Join(c.dir, name)
	err := os.Remove(path)
	switch {
	case err == nil:
		log.Printf("🧹 Deleted expired artifact: %s", name)
	case os.IsNotExist(err):
		// Already gone, treat as success
	default:
		log.Printf("❌ Failed to delete expired artifact %s: %v", name, err)
	}
}

// SweepExisting registers every PDF already present in the artifact directory.
// Retention timers do not survive a restart; without this, files created just
// before a restart would never be reaped
func (c *CleanupService) SweepExisting() {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		log.Printf("⚠️  Warning: Could not sweep artifact directory %s: %v", c.dir, err)
		return
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}
		c.Register(entry.Name())
		count++
	}
	if count > 0 {
		log.Printf("🧹 Swept %d leftover artifact(s) into the retention window", count)
	}
}

// pendingCount reports live handles, for tests
func (c *CleanupService) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}
