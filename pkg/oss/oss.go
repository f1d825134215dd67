package oss

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Uploader stores an uploaded file under name and returns the URL clients fetch it from.
type Uploader interface {
	Upload(ctx context.Context, data []byte, name string) (string, error)
}

// Default is the uploader selected by upload.backend.
var Default Uploader

// LocalUploader writes into a public directory served as static files.
type LocalUploader struct {
	Dir          string
	PublicPrefix string
}

func NewLocalUploader(dir, publicPrefix string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "create upload dir %s", dir)
	}
	return &LocalUploader{Dir: dir, PublicPrefix: strings.TrimRight(publicPrefix, "/")}, nil
}

func (l *LocalUploader) Upload(ctx context.Context, data []byte, name string) (string, error) {
	path := filepath.Join(l.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write upload %s", path)
	}
	return l.PublicPrefix + "/" + filepath.Base(name), nil
}

// Resolve maps a URL produced by Upload back to its file on disk.
func (l *LocalUploader) Resolve(url string) (string, bool) {
	prefix := l.PublicPrefix + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(url, prefix)
	if name == "" || name != filepath.Base(name) {
		return "", false
	}
	return filepath.Join(l.Dir, name), true
}

// MinioUploader puts uploads into one bucket, creating it on first use.
type MinioUploader struct {
	client    *minio.Client
	bucket    string
	location  string
	publicURL string
}

func (m *MinioUploader) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: m.location})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func (m *MinioUploader) Upload(ctx context.Context, data []byte, name string) (string, error) {
	if err := m.ensureBucket(ctx); err != nil {
		return "", err
	}
	contentType := http.DetectContentType(data)
	_, err := m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload %s: %v", name, err)
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(m.publicURL, "/"), m.bucket, name), nil
}
