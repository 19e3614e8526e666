package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/devcodecare/site/pkg/sanitizer"
)

// LocalResolver serves assets from a directory. Lookups cannot leave the
// directory, including through symlinks.
type LocalResolver struct {
	root *os.Root
}

// NewLocalResolver opens dir as the site root.
func NewLocalResolver(dir string) (*LocalResolver, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty directory", ErrInvalidConfig)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrInvalidConfig, dir, err)
	}
	return &LocalResolver{root: root}, nil
}

// Open implements Resolver.
func (l *LocalResolver) Open(ctx context.Context, name string) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = sanitizer.SanitizePath(name)
	if name == "" {
		return nil, ErrNotFound
	}

	f, err := l.root.Open(filepath.FromSlash(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		// Escapes through symlinks are reported as not found as well.
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}

	return &Asset{
		Name:        name,
		Body:        f,
		Size:        fi.Size(),
		ModTime:     fi.ModTime(),
		ContentType: ContentType(name),
	}, nil
}

// Close releases the directory handle.
func (l *LocalResolver) Close() error {
	return l.root.Close()
}
