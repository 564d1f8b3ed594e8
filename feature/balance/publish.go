package balance

import (
	"bytes"
	"context"
	"fmt"

	"objmask-workaround/core/storage"

	"github.com/minio/minio-go/v7"
)

const contentTypeXML = "application/xml"

// ensureBucket creates bucket when it does not exist yet.
func ensureBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// upload stores data as object in bucket.
func upload(ctx context.Context, client storage.Client, bucket, object string, data []byte) error {
	if err := ensureBucket(ctx, client, bucket); err != nil {
		return err
	}

	_, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeXML,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return nil
}
