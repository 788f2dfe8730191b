package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0644))
	return path
}

func waitForGone(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("file %s was not deleted in time", path)
}

func TestCleanupService_DeletesAfterRetention(t *testing.T) {
	dir := t.TempDir()
	path := writeArtifact(t, dir, "cards_2026-08-31_aaaa1111.pdf")

	c := NewCleanupService(dir, 40*time.Millisecond)
	c.Register("cards_2026-08-31_aaaa1111.pdf")

	waitForGone(t, path)
	assert.Eventually(t, func() bool { return c.pendingCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestCleanupService_ReRegisterKeepsSingleHandle(t *testing.T) {
	dir := t.TempDir()
	name := "cards_2026-08-31_bbbb2222.pdf"
	path := writeArtifact(t, dir, name)

	c := NewCleanupService(dir, 60*time.Millisecond)
	c.Register(name)
	c.Register(name)
	c.Register(name)

	assert.Equal(t, 1, c.pendingCount())

	waitForGone(t, path)
	assert.Eventually(t, func() bool { return c.pendingCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestCleanupService_ReRegisterResetsClock(t *testing.T) {
	dir := t.TempDir()
	name := "cards_2026-08-31_cccc3333.pdf"
	path := writeArtifact(t, dir, name)

	c := NewCleanupService(dir, 120*time.Millisecond)
	c.Register(name)

	// Past the halfway point, re-register; the original expiry must not fire
	time.Sleep(80 * time.Millisecond)
	c.Register(name)
	time.Sleep(70 * time.Millisecond) // original timer would have fired by now

	_, err := os.Stat(path)
	assert.NoError(t, err, "re-registration must reset the retention clock")

	waitForGone(t, path)
}

func TestCleanupService_FireOnMissingFileIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	name := "cards_2026-08-31_dddd4444.pdf"

	c := NewCleanupService(dir, 20*time.Millisecond)
	c.Register(name) // file never existed

	assert.Eventually(t, func() bool { return c.pendingCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestCleanupService_Cancel(t *testing.T) {
	dir := t.TempDir()
	name := "cards_2026-08-31_eeee5555.pdf"
	path := writeArtifact(t, dir, name)

	c := NewCleanupService(dir, 30*time.Millisecond)
	c.Register(name)

	assert.True(t, c.Cancel(name))
	assert.False(t, c.Cancel(name))

	time.Sleep(80 * time.Millisecond)
	_, err := os.Stat(path)
	assert.NoError(t, err, "cancelled artifacts are not deleted")
	assert.Equal(t, 0, c.pendingCount())
}

func TestCleanupService_SweepExisting(t *testing.T) {
	dir := t.TempDir()
	pdf := writeArtifact(t, dir, "cards_2026-08-30_ffff6666.pdf")
	other := writeArtifact(t, dir, "notes.txt")

	c := NewCleanupService(dir, 30*time.Millisecond)
	c.SweepExisting()

	assert.Equal(t, 1, c.pendingCount())
	waitForGone(t, pdf)

	_, err := os.Stat(other)
	assert.NoError(t, err, "sweep only reaps pdf artifacts")
}
