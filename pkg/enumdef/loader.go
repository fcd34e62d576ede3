package enumdef

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/enumkit/pkg/enum"
)

// SupportsFileExtension reports whether ext (with or without the dot) names a
// YAML file.
func SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// LoadFile reads and parses a definition with value type V.
func LoadFile[V comparable](ctx context.Context, filename string, opts ...Option) (*enum.Type[V], error) {
	content, err := readFile(ctx, filename)
	if err != nil {
		return nil, err
	}
	t, err := Parse[V](ctx, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// LoadFileAny reads and parses a definition with ParseAny.
func LoadFileAny(ctx context.Context, filename string, opts ...Option) (enum.Enumeration, error) {
	content, err := readFile(ctx, filename)
	if err != nil {
		return nil, err
	}
	e, err := ParseAny(ctx, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return e, nil
}

// LoadFS declares every YAML file directly inside dir of fsys, in file name
// order. Any failing file aborts the load.
func LoadFS(ctx context.Context, fsys fs.FS, dir string, opts ...Option) ([]enum.Enumeration, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	var result []enum.Enumeration
	for _, entry := range entries {
		if entry.IsDir() || !SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrParsingCancelled, err)
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		e, err := ParseAny(ctx, content, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		result = append(result, e)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoDefinitions, dir)
	}
	return result, nil
}

func readFile(ctx context.Context, filename string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}
	if !SupportsFileExtension(filepath.Ext(filename)) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileExtension, filename)
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return content, nil
}
