package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonderfulspam/confdiff/pkg/document"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPair(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.yaml", "db:\n  host: x\n")
	newPath := writeFile(t, dir, "new.json", `{"db": {"host": "y"}}`)

	l := New(document.FormatAuto, zerolog.Nop())
	oldDoc, newDoc, err := l.LoadPair(context.Background(), oldPath, newPath)
	require.NoError(t, err)

	assert.Equal(t, document.FormatYAML, oldDoc.Format)
	assert.Equal(t, document.FormatJSON, newDoc.Format)
	assert.Equal(t, oldPath, oldDoc.Path)

	db, ok := newDoc.Root.Get("db")
	require.True(t, ok)
	host, _ := db.Get("host")
	assert.Equal(t, "y", document.Render(host))
}

func TestLoadPair_ForcedFormat(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.conf", "a = 1\n")
	newPath := writeFile(t, dir, "new.conf", "a = 2\n")

	l := New(document.FormatTOML, zerolog.Nop())
	oldDoc, newDoc, err := l.LoadPair(context.Background(), oldPath, newPath)
	require.NoError(t, err)

	assert.Equal(t, document.FormatTOML, oldDoc.Format)
	a, _ := newDoc.Root.Get("a")
	assert.Equal(t, "2", document.Render(a))
}

func TestLoadPair_MissingFile(t *testing.T) {
	dir := t.TempDir()
	newPath := writeFile(t, dir, "new.yaml", "a: 1\n")
	missing := filepath.Join(dir, "missing.yaml")

	l := New("", zerolog.Nop())
	oldDoc, newDoc, err := l.LoadPair(context.Background(), missing, newPath)
	require.Error(t, err)
	assert.Nil(t, oldDoc)
	assert.Nil(t, newDoc)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "got %T: %v", err, err)
	assert.Equal(t, RoleOld, ioErr.Role)
	assert.Equal(t, missing, ioErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "reading old file")
}

func TestLoadPair_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.yaml", "a: 1\n")
	newPath := writeFile(t, dir, "new.yaml", "a: [unclosed\n")

	l := New("", zerolog.Nop())
	_, _, err := l.LoadPair(context.Background(), oldPath, newPath)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "got %T: %v", err, err)
	assert.Equal(t, RoleNew, parseErr.Role)
	assert.Contains(t, err.Error(), "parsing new file")
	assert.Contains(t, err.Error(), newPath)
}

func TestLoadPair_BothFail(t *testing.T) {
	dir := t.TempDir()

	l := New("", zerolog.Nop())
	_, _, err := l.LoadPair(context.Background(), filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml"))
	require.Error(t, err)

	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestLoadPair_ReadsBothFiles(t *testing.T) {
	var reads atomic.Int32

	l := New(document.FormatYAML, zerolog.Nop())
	l.readFile = func(path string) ([]byte, error) {
		reads.Add(1)
		return []byte("path: " + path), nil
	}

	oldDoc, newDoc, err := l.LoadPair(context.Background(), "one", "two")
	require.NoError(t, err)
	assert.Equal(t, int32(2), reads.Load())

	p, _ := oldDoc.Root.Get("path")
	assert.Equal(t, "one", document.Render(p))
	p, _ = newDoc.Root.Get("path")
	assert.Equal(t, "two", document.Render(p))
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New("", zerolog.Nop())
	l.readFile = func(string) ([]byte, error) {
		t.Fatal("file should not be read after cancellation")
		return nil, nil
	}

	_, err := l.Load(ctx, RoleOld, "x.yaml")
	assert.ErrorIs(t, err, context.Canceled)
}
