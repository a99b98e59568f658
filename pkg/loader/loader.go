package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/wonderfulspam/confdiff/pkg/document"
)

type Role string

const (
	RoleOld   Role = "old"
	RoleNew   Role = "new"
	RoleInput Role = "input"
)

// IOError means the file could not be read at all.
type IOError struct {
	Role Role
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s file '%s': %v", e.Role, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError means the file was read but its content is not a valid document.
type ParseError struct {
	Role Role
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s file '%s': %v", e.Role, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document is a decoded input file.
type Document struct {
	Path   string
	Format document.Format
	Root   *document.Value
}

type Loader struct {
	format   document.Format
	logger   zerolog.Logger
	readFile func(string) ([]byte, error)
}

// New creates a loader. FormatAuto (or "") picks the format per file from
// its extension.
func New(format document.Format, logger zerolog.Logger) *Loader {
	if format == "" {
		format = document.FormatAuto
	}
	return &Loader{
		format:   format,
		logger:   logger,
		readFile: os.ReadFile,
	}
}

// Load reads and decodes a single file.
func (l *Loader) Load(ctx context.Context, role Role, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := l.format
	if format == document.FormatAuto {
		format = document.DetectFormat(path)
	}

	l.logger.Debug().Str("role", string(role)).Str("path", path).Str("format", string(format)).Msg("loading document")

	data, err := l.readFile(path)
	if err != nil {
		return nil, &IOError{Role: role, Path: path, Err: err}
	}

	root, err := document.Decode(data, format)
	if err != nil {
		return nil, &ParseError{Role: role, Path: path, Err: err}
	}

	l.logger.Debug().Str("role", string(role)).Int("bytes", len(data)).Msg("document loaded")

	return &Document{Path: path, Format: format, Root: root}, nil
}

// LoadPair loads both inputs concurrently and waits for both. If either
// fails the first error is returned and neither document is.
func (l *Loader) LoadPair(ctx context.Context, oldPath, newPath string) (*Document, *Document, error) {
	var oldDoc, newDoc *Document

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		doc, err := l.Load(groupCtx, RoleOld, oldPath)
		if err != nil {
			return err
		}
		oldDoc = doc
		return nil
	})

	group.Go(func() error {
		doc, err := l.Load(groupCtx, RoleNew, newPath)
		if err != nil {
			return err
		}
		newDoc = doc
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	return oldDoc, newDoc, nil
}
