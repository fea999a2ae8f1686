package recording

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Prefix = "recordings/"

// PutObjectAPI is the slice of the S3 client the archive needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Archive struct {
	s3     PutObjectAPI
	bucket string
}

func NewS3Archive(ctx context.Context, region, bucket string) (*S3Archive, error) {
	if bucket == "" {
		return nil, fmt.Errorf("recordings bucket is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Archive{s3: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func NewS3ArchiveWithClient(api PutObjectAPI, bucket string) *S3Archive {
	return &S3Archive{s3: api, bucket: bucket}
}

func (a *S3Archive) Save(ctx context.Context, audio []byte, extension, contentType string) (string, error) {
	key := s3Prefix + objectName(extension)
	input := &s3.PutObjectInput{
		Bucket: &a.bucket,
		Key:    &key,
		Body:   bytes.NewReader(audio),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := a.s3.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload recording: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
