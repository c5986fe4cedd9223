// Package objectstore issues pre-signed receipt upload URLs against S3 or an
// S3-compatible store such as MinIO.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/SamWeninger/shopping-assistant/pkg/config"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
)

// s3Client is an interface for testability.
type s3Client interface {
	HeadObject(ctx context.Context, input *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type presigner interface {
	PresignPutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store implements repositories.ObjectStore.
type S3Store struct {
	client    s3Client
	presign   presigner
	bucket    string
	publicURL string
}

var _ repositories.ObjectStore = (*S3Store)(nil)

// NewS3Store builds an S3Store from cfg. A non-empty S3Endpoint switches to
// path-style addressing for MinIO.
func NewS3Store(cfg *config.Config) *S3Store {
	client := newS3Client(cfg)
	return newStore(client, s3.NewPresignClient(client), cfg.S3Bucket, publicBaseURL(cfg))
}

func newStore(client s3Client, p presigner, bucket, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		presign:   p,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func newS3Client(cfg *config.Config) *s3.Client {
	opts := s3.Options{
		Region:      cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// publicBaseURL returns the prefix image URLs are built from.
func publicBaseURL(cfg *config.Config) string {
	switch {
	case cfg.S3PublicBaseURL != "":
		return cfg.S3PublicBaseURL
	case cfg.S3Endpoint != "":
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.AWSRegion)
	}
}

// PresignPut signs a PUT of contentType to key. The signature covers the
// Content-Type header, so uploads with any other type are rejected by S3.
func (s *S3Store) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (*repositories.UploadURL, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, fmt.Errorf("presign put %s: %w", key, err)
	}
	method := req.Method
	if method == "" {
		method = http.MethodPut
	}
	return &repositories.UploadURL{
		URL:       req.URL,
		Method:    method,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}, nil
}

// PublicURL joins the public base URL and key.
func (s *S3Store) PublicURL(key string) string {
	return s.publicURL + "/" + key
}

// Exists issues a HeadObject for key.
func (s *S3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("head object %s: %w", key, err)
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
