package files

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDisk(t *testing.T) (*Disk, func()) {
	dir, err := ioutil.TempDir("", "uploads")
	require.NoError(t, err)

	return NewDisk(dir), func() { os.RemoveAll(dir) }
}

func TestDisk_Upload(t *testing.T) {
	disk, f := createDisk(t)
	defer f()

	stored, err := disk.Upload([]byte("content"), "slides.pdf", "application/pdf", 1, UploadOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(7), stored.Size)
	assert.Equal(t, "slides.pdf", stored.OriginalName)
	assert.True(t, filepath.IsAbs(stored.Ref) || stored.Ref[0] == '/', "ref should be a public path")

	data, err := ioutil.ReadFile(filepath.Join(disk.PublicRoot, "uploads", stored.Name))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestDisk_Upload_SameNameTwice(t *testing.T) {
	disk, f := createDisk(t)
	defer f()

	first, err := disk.Upload([]byte("one"), "slides.pdf", "application/pdf", 1, UploadOptions{})
	require.NoError(t, err)
	second, err := disk.Upload([]byte("two"), "slides.pdf", "application/pdf", 1, UploadOptions{})
	require.NoError(t, err)

	assert.NotEqual(t, first.Ref, second.Ref, "same original name must yield distinct stored paths")
}

func TestDisk_Delete(t *testing.T) {
	disk, f := createDisk(t)
	defer f()

	stored, err := disk.Upload([]byte("content"), "slides.pdf", "application/pdf", 1, UploadOptions{})
	require.NoError(t, err)

	require.NoError(t, disk.Delete(stored.Ref))
	_, err = os.Stat(filepath.Join(disk.PublicRoot, "uploads", stored.Name))
	assert.True(t, os.IsNotExist(err), "file should be gone")

	// dangling reference is a no-op, not an error
	assert.NoError(t, disk.Delete(stored.Ref))
	assert.NoError(t, disk.Delete("/uploads/never-existed.pdf"))
	assert.NoError(t, disk.Delete(""))
}

func TestDisk_Delete_ProjectRootLayout(t *testing.T) {
	disk, f := createDisk(t)
	defer f()

	// older revisions recorded paths relative to the project root
	dir := filepath.Join(disk.Root, "uploads")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "old.pdf"), []byte("old"), 0644))

	require.NoError(t, disk.Delete("/uploads/old.pdf"))
	_, err := os.Stat(filepath.Join(dir, "old.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestDisk_Delete_BareNameFallback(t *testing.T) {
	disk, f := createDisk(t)
	defer f()

	dir := filepath.Join(disk.PublicRoot, "uploads")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "stray.pdf"), []byte("stray"), 0644))

	// reference recorded with a layout that matches neither root: the
	// resolver falls back to the bare name in the uploads directory
	require.NoError(t, disk.Delete("/somewhere/else/stray.pdf"))
	_, err := os.Stat(filepath.Join(dir, "stray.pdf"))
	assert.True(t, os.IsNotExist(err))
}
