package config

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// objectPresigner is the subset of *s3.PresignClient used for image links
type objectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Config resolves recipe image references stored as object keys in a bucket
type S3Config struct {
	Client     *s3.Client
	BucketName string
	Expiration time.Duration

	presigner objectPresigner
	logger    *zap.Logger
}

// NewS3Config initializes the S3 client from the application config
func NewS3Config(ctx context.Context, cfg *Config, logger *zap.Logger) (*S3Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}

	// Load AWS config from environment or shared config
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg)

	return &S3Config{
		Client:     client,
		BucketName: cfg.S3BucketName,
		Expiration: cfg.ImageURLTTL,
		presigner:  s3.NewPresignClient(client),
		logger:     logger,
	}, nil
}

// GeneratePresignedURL generates a presigned URL for the given object key with the specified expiration time
func (s *S3Config) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	presignedURL, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}

// ResolveImageURL turns a stored image reference into something a browser
// can load. Absolute URLs and empty values are returned untouched; anything
// else is treated as an object key in the bucket.
func (s *S3Config) ResolveImageURL(ctx context.Context, ref string) string {
	if ref == "" || isAbsoluteURL(ref) {
		return ref
	}

	key := strings.TrimPrefix(ref, "/")
	url, err := s.GeneratePresignedURL(ctx, key, s.Expiration)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to presign image url",
				zap.String("bucket", s.BucketName),
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return ref
	}
	return url
}

func isAbsoluteURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
