package dataset

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
)

func TestUnpackGzip(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "data.csv.gz")

	f, err := os.Create(archivePath)
	assert.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte("a,b\n1,2\n"))
	assert.NoError(t, err)
	assert.NoError(t, gw.Close())
	assert.NoError(t, f.Close())

	dataPath, err := UnpackArchive(archivePath)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.csv"), dataPath)

	content, err := os.ReadFile(dataPath)
	assert.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))

	// архив остаётся на месте
	_, err = os.Stat(archivePath)
	assert.NoError(t, err)
}

func TestUnpackLZ4(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "data.csv.lz4")

	f, err := os.Create(archivePath)
	assert.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte("x\n42\n"))
	assert.NoError(t, err)
	assert.NoError(t, lw.Close())
	assert.NoError(t, f.Close())

	dataPath, err := UnpackArchive(archivePath)
	assert.NoError(t, err)

	content, err := os.ReadFile(dataPath)
	assert.NoError(t, err)
	assert.Equal(t, "x\n42\n", string(content))
}

func TestUnpackPlainFilePassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	assert.NoError(t, os.WriteFile(path, []byte("a\n1\n"), 0644))

	dataPath, err := UnpackArchive(path)
	assert.NoError(t, err)
	assert.Equal(t, path, dataPath)
}
