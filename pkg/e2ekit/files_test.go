package e2ekit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForFile_AppearsLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.txt")

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(150 * time.Millisecond)
		_ = os.WriteFile(path, []byte("payload"), 0o644)
	}()

	err := WaitForFile(context.Background(), path)
	<-done
	require.NoError(t, err)
}

func TestWaitForFile_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := WaitForFile(ctx, filepath.Join(t.TempDir(), "never.txt"))
	require.Error(t, err)
}

func TestWaitForFile_EmptyFileKeepsWaiting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := WaitForFile(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
