package gcs

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"google.golang.org/api/option"
)

// Client uploads artifact bundles to a Cloud Storage bucket.
type Client struct {
	client *storage.Client
	bucket string
}

var _ interfaces.Storage = (*Client)(nil)

func New(ctx context.Context, bucket string, options ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

// Put implements interfaces.Storage.
func (x *Client) Put(ctx context.Context, object string, r io.Reader) error {
	w := x.client.Bucket(x.bucket).Object(object).NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", object),
		)
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer",
			goerr.V("bucket", x.bucket),
			goerr.V("object", object),
		)
	}

	return nil
}
