package aws

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/younsl/widthscan/pkg/utils"
)

// DefaultMaxObjectSize is the largest object GetObjectText will read
const DefaultMaxObjectSize int64 = 8 << 20

// ObjectGetter is the subset of the S3 API used to read text objects
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Client reads text objects from S3
type S3Client struct {
	client        ObjectGetter
	region        string
	maxObjectSize int64
}

// NewS3Client creates a new S3Client
func NewS3Client(ctx context.Context, region string) (*S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithRetryMode(aws.RetryModeStandard),
		config.WithEC2IMDSClientEnableState(imds.ClientEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return NewS3ClientWithAPI(s3Client, region), nil
}

// NewS3ClientWithAPI wraps an existing S3 API implementation
func NewS3ClientWithAPI(api ObjectGetter, region string) *S3Client {
	return &S3Client{
		client:        api,
		region:        region,
		maxObjectSize: DefaultMaxObjectSize,
	}
}

// SetMaxObjectSize sets the size limit in bytes. Values <= 0 restore the default.
func (c *S3Client) SetMaxObjectSize(size int64) {
	if size <= 0 {
		size = DefaultMaxObjectSize
	}
	c.maxObjectSize = size
}

// GetObjectText downloads an object and returns its body as text
func (c *S3Client) GetObjectText(ctx context.Context, bucket, key string) (string, error) {
	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("error getting s3://%s/%s in %s: %w", bucket, key, c.region, err)
	}
	defer out.Body.Close()

	if size := aws.ToInt64(out.ContentLength); size > c.maxObjectSize {
		return "", fmt.Errorf("object s3://%s/%s is %s, limit is %s",
			bucket, key, utils.FormatBytes(size), utils.FormatBytes(c.maxObjectSize))
	}

	// ContentLength may be missing, so cap the read as well
	body, err := io.ReadAll(io.LimitReader(out.Body, c.maxObjectSize+1))
	if err != nil {
		return "", fmt.Errorf("error reading s3://%s/%s: %w", bucket, key, err)
	}
	if int64(len(body)) > c.maxObjectSize {
		return "", fmt.Errorf("object s3://%s/%s exceeds limit of %s",
			bucket, key, utils.FormatBytes(c.maxObjectSize))
	}

	return string(body), nil
}

// ParseS3URI splits s3://bucket/key into bucket and key
func ParseS3URI(uri string) (string, string, error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 URI: %q", uri)
	}

	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 URI must look like s3://bucket/key: %q", uri)
	}
	return bucket, key, nil
}

// IsS3URI reports whether s uses the s3:// scheme
func IsS3URI(s string) bool {
	return strings.HasPrefix(s, "s3://")
}
