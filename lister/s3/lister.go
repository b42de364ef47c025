// Package s3 lists a bucket of an S3-compatible object store as a
// directory tree. Common prefixes map to directories; objects map to
// regular files with the restricted fallback identity.
package s3

import (
	"context"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mwantia/explorer/data"
)

type S3Lister struct {
	mu sync.RWMutex

	client     *minio.Client
	bucketName string
}

func NewS3Lister(endpoint, bucketName, accessKey, secretKey string, useSsl bool) (*S3Lister, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSsl,
	})
	if err != nil {
		return nil, err
	}

	return &S3Lister{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Returns the identifier name defined for this lister
func (*S3Lister) Name() string {
	return "s3"
}

// Open is part of the lifecycle behaviour and gets called when opening this lister.
func (sl *S3Lister) Open(ctx context.Context) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	exists, err := sl.client.BucketExists(ctx, sl.bucketName)
	if err != nil {
		return err
	}

	if !exists {
		return data.ErrNotExist
	}

	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this lister.
func (sl *S3Lister) Close(ctx context.Context) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	return nil
}

// List returns the direct children of the given virtual directory.
func (sl *S3Lister) List(ctx context.Context, path string) ([]*data.Entry, error) {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	dir, prefix := splitListing(path)
	owner, group, perm := data.RestrictedIdentity()

	var entries []*data.Entry
	for object := range sl.client.ListObjects(ctx, sl.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}

		key := strings.TrimPrefix(object.Key, prefix)
		if key == "" {
			// The directory marker object itself
			continue
		}

		if name, ok := strings.CutSuffix(key, "/"); ok {
			// Common prefix, listed as a directory
			entries = append(entries, data.NewDirectory(name, dir, owner, group, perm|data.PermDir, object.LastModified))
			continue
		}

		entries = append(entries, data.NewRegularFile(key, dir, owner, group, perm, object.LastModified, object.Size))
	}

	return entries, nil
}

// splitListing converts a virtual absolute path into the entry parent
// dir and the object key prefix used for the bucket scan.
func splitListing(path string) (dir, prefix string) {
	dir = strings.TrimSuffix(path, "/")
	if dir == "" {
		dir = "/"
	}

	prefix = strings.TrimPrefix(dir, "/")
	if prefix != "" {
		prefix += "/"
	}

	return dir, prefix
}
