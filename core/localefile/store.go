package localefile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path"
	"path/filepath"

	"locale-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// Store moves locale file bytes in and out of a backend.
type Store interface {
	// Read returns the content of name, or an error wrapping ErrNotFound.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the content of name. Readers never observe a partial write.
	Write(ctx context.Context, name string, data []byte) error
}

// NewStore returns the store selected by cfg.Backend.
func NewStore(cfg Config, fsys afero.Fs, client storage.Client, bucket string) (Store, error) {
	switch cfg.Backend {
	case BackendFS, "":
		return NewFSStore(fsys, cfg.Dir), nil
	case BackendBucket:
		if client == nil {
			return nil, fmt.Errorf("%w: bucket backend requires a storage client", ErrUnknownBackend)
		}
		return &BucketStore{Client: client, Bucket: bucket, Prefix: cfg.Dir}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// FSStore stores files below Dir on an afero file system.
type FSStore struct {
	Fs  afero.Fs
	Dir string
}

// NewFSStore creates a file system store rooted at dir.
func NewFSStore(fsys afero.Fs, dir string) *FSStore {
	return &FSStore{Fs: fsys, Dir: dir}
}

// Path resolves name against Dir. Absolute names are used as is.
func (s *FSStore) Path(name string) string {
	if filepath.IsAbs(name) || s.Dir == "" {
		return filepath.Clean(name)
	}
	return filepath.Join(s.Dir, name)
}

func (s *FSStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := s.Path(name)
	data, err := afero.ReadFile(s.Fs, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

// Write creates missing parent directories, writes to a temp file next to the target and
// renames it into place. The temp file is removed if any step fails.
func (s *FSStore) Write(ctx context.Context, name string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	p := s.Path(name)
	dir := filepath.Dir(p)
	if err := s.Fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(s.Fs, dir, "."+filepath.Base(p)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = s.Fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err = s.Fs.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err = s.Fs.Rename(tmpName, p); err != nil {
		return fmt.Errorf("failed to rename %s: %w", tmpName, err)
	}
	return nil
}

// BucketStore stores files as objects below Prefix in an object storage bucket.
type BucketStore struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// ObjectName resolves name against Prefix.
func (s *BucketStore) ObjectName(name string) string {
	return path.Join(s.Prefix, filepath.ToSlash(name))
}

func (s *BucketStore) Read(ctx context.Context, name string) ([]byte, error) {
	object := s.ObjectName(name)
	rc, err := s.Client.GetObject(ctx, s.Bucket, object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, s.Bucket, object)
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", s.Bucket, object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, s.Bucket, object)
		}
		return nil, fmt.Errorf("failed to read %s/%s: %w", s.Bucket, object, err)
	}
	return data, nil
}

// Write uploads data in a single PutObject call, which replaces the object atomically.
func (s *BucketStore) Write(ctx context.Context, name string, data []byte) error {
	object := s.ObjectName(name)
	opts := minio.PutObjectOptions{ContentType: contentType(object)}
	if _, err := s.Client.PutObject(ctx, s.Bucket, object, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", s.Bucket, object, err)
	}
	return nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".yml", ".yaml":
		return "application/yaml"
	case ".toml":
		return "application/toml"
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
