// Package source reads SDL documents and attachment files from blob storage.
package source

import (
	"context"

	"github.com/shyptr/schemadirectives/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
	"golang.org/x/sync/errgroup"
)

type Option func(*options)

type options struct {
	logger *zap.Logger
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// Load opens the bucket at bucketURL and reads keys as SDL sources.
func Load(ctx context.Context, bucketURL string, keys []string, opts ...Option) ([]*ast.Source, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open bucket %s", bucketURL)
	}
	defer bucket.Close()
	return LoadBucket(ctx, bucket, keys, opts...)
}

// LoadBucket reads keys from bucket concurrently. The sources keep the order
// of keys.
func LoadBucket(ctx context.Context, bucket *blob.Bucket, keys []string, opts ...Option) ([]*ast.Source, error) {
	o := newOptions(opts)
	if len(keys) == 0 {
		return nil, errors.New("no schema sources given")
	}
	sources := make([]*ast.Source, len(keys))
	group, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		group.Go(func() error {
			data, err := read(ctx, bucket, key)
			if err != nil {
				return err
			}
			o.logger.Debug("read schema source", zap.String("key", key), zap.Int("bytes", len(data)))
			sources[i] = &ast.Source{Name: key, Input: string(data)}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

// ReadFile reads a single key from the bucket at bucketURL.
func ReadFile(ctx context.Context, bucketURL, key string) ([]byte, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open bucket %s", bucketURL)
	}
	defer bucket.Close()
	return read(ctx, bucket, key)
}

func read(ctx context.Context, bucket *blob.Bucket, key string) ([]byte, error) {
	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.New("source %s not found", key)
		}
		return nil, errors.Wrap(err, "read %s", key)
	}
	return data, nil
}
