// Package snapshot opens the blob bucket that holds tracker backups.
package snapshot

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"

	"brewhub/config"
	"brewhub/internal/domain/lifecycle"
	"brewhub/internal/errors"
)

// Params collects the dependencies for the bucket constructor.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// NewBucket opens the bucket named by snapshot.bucketUrl and closes it when
// the application stops.
func NewBucket(params Params) (*blob.Bucket, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Snapshot.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open snapshot bucket")
	}

	params.Logger.Info("snapshot bucket ready", slog.String("url", params.Config.Snapshot.BucketURL))

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}
