package export

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Destination uploads each export artifact as an object under folder/ in
// the configured bucket.
type S3Destination struct {
	client *s3.Client
	bucket string
	folder string
}

func NewS3Destination(region, bucket, folder string) (*S3Destination, error) {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &S3Destination{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		folder: folder,
	}, nil
}

func (d *S3Destination) WriteFile(name string, data []byte) error {
	ctx := context.Background()
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(path.Join(d.folder, name)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("unable to upload %s to S3: %w", name, err)
	}
	return nil
}

func (d *S3Destination) Close() error { return nil }
