package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3Provider
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Provider implements file storage on AWS S3
type S3Provider struct {
	client     S3API
	bucketName string
	prefix     string // Key prefix inside the bucket
}

// S3Config holds the settings for NewS3Provider
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Prefix          string
}

// NewS3Provider creates a new AWS S3 provider. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain applies.
func NewS3Provider(ctx context.Context, cfg S3Config) (*S3Provider, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3ProviderWithClient(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix), nil
}

// NewS3ProviderWithClient wraps an existing S3 client
func NewS3ProviderWithClient(client S3API, bucket, prefix string) *S3Provider {
	return &S3Provider{
		client:     client,
		bucketName: bucket,
		prefix:     strings.Trim(prefix, "/"),
	}
}

func (p *S3Provider) key(filename string) string {
	if p.prefix == "" {
		return filename
	}
	return path.Join(p.prefix, filename)
}

// Save uploads the content to the bucket
func (p *S3Provider) Save(ctx context.Context, filename string, content io.Reader, contentType string) (int64, error) {
	if contentType == "" {
		contentType = detectContentType(filename)
	}

	size := int64(-1)
	if seeker, ok := content.(io.Seeker); ok {
		if end, err := seeker.Seek(0, io.SeekEnd); err == nil {
			size = end
		}
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return 0, fmt.Errorf("failed to rewind upload: %w", err)
		}
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucketName),
		Key:         aws.String(p.key(filename)),
		Body:        content,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return 0, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return size, nil
}

// Open downloads an object from the bucket
func (p *S3Provider) Open(ctx context.Context, filename string) (*File, error) {
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucketName),
		Key:    aws.String(p.key(filename)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}

	file := &File{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}
	if file.ContentType == "" {
		file.ContentType = detectContentType(filename)
	}
	return file, nil
}

// Delete deletes a file from AWS S3
func (p *S3Provider) Delete(ctx context.Context, filename string) error {
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucketName),
		Key:    aws.String(p.key(filename)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

// GetProviderName returns the provider name
func (p *S3Provider) GetProviderName() string {
	return "AWS S3"
}
