package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDisk(t *testing.T) *Disk {
	t.Helper()
	disk, err := NewDisk(t.TempDir(), "/uploads", zap.NewNop())
	require.NoError(t, err)
	return disk
}

func TestDisk_SaveAndRemove(t *testing.T) {
	disk := newTestDisk(t)
	ctx := context.Background()

	url, err := disk.Save(ctx, "banner.png", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/banner.png", url)

	data, err := os.ReadFile(filepath.Join(disk.Dir(), "banner.png"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, disk.Remove(ctx, url))
	_, err = os.Stat(filepath.Join(disk.Dir(), "banner.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDisk_SaveRejectsCollision(t *testing.T) {
	disk := newTestDisk(t)
	ctx := context.Background()

	_, err := disk.Save(ctx, "banner.png", strings.NewReader("first"))
	require.NoError(t, err)

	_, err = disk.Save(ctx, "banner.png", strings.NewReader("second"))
	assert.Error(t, err)

	data, err := os.ReadFile(filepath.Join(disk.Dir(), "banner.png"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestDisk_SaveStripsPathComponents(t *testing.T) {
	disk := newTestDisk(t)

	url, err := disk.Save(context.Background(), "../../etc/banner.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/banner.png", url)

	_, err = os.Stat(filepath.Join(disk.Dir(), "banner.png"))
	assert.NoError(t, err)
}

func TestDisk_RemoveMissingFileSucceeds(t *testing.T) {
	disk := newTestDisk(t)
	assert.NoError(t, disk.Remove(context.Background(), "/uploads/ghost.png"))
}

func TestDisk_RemoveRejectsExternalURL(t *testing.T) {
	disk := newTestDisk(t)
	assert.Error(t, disk.Remove(context.Background(), "https://cdn.example.com/banner.png"))
}

func TestDisk_IsLocal(t *testing.T) {
	disk := newTestDisk(t)
	assert.True(t, disk.IsLocal("/uploads/banner.png"))
	assert.False(t, disk.IsLocal("https://cdn.example.com/banner.png"))
	assert.False(t, disk.IsLocal("/uploadsx/banner.png"))
}
