package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rendering itself needs a Chrome binary; these tests cover the pieces around it

func TestDetectChromePath_EnvOverride(t *testing.T) {
	fake := filepath.Join(t.TempDir(), "chromium")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh"), 0755))

	t.Setenv("CHROME_PATH", fake)
	assert.Equal(t, fake, detectChromePath())
}

func TestDetectChromePath_IgnoresMissingEnvPath(t *testing.T) {
	t.Setenv("CHROME_PATH", filepath.Join(t.TempDir(), "does-not-exist"))

	got := detectChromePath()
	assert.NotEqual(t, os.Getenv("CHROME_PATH"), got)
}
