package objectstore

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/SamWeninger/shopping-assistant/pkg/config"
)

// mockS3Client implements s3Client and presigner for testing.
type mockS3Client struct {
	mu         sync.Mutex
	objects    map[string]bool
	headErr    error
	presignErr error
	lastPut    *s3.PutObjectInput
	lastTTL    time.Duration
}

func newMockS3() *mockS3Client {
	return &mockS3Client{objects: make(map[string]bool)}
}

func (m *mockS3Client) HeadObject(_ context.Context, input *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if m.headErr != nil {
		return nil, m.headErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.objects[*input.Key] {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (m *mockS3Client) PresignPutObject(_ context.Context, input *s3.PutObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if m.presignErr != nil {
		return nil, m.presignErr
	}
	var po s3.PresignOptions
	for _, o := range opts {
		o(&po)
	}
	m.mu.Lock()
	m.lastPut = input
	m.lastTTL = po.Expires
	m.mu.Unlock()
	return &v4.PresignedHTTPRequest{
		URL:    "https://receipts.example/" + *input.Key + "?X-Amz-Signature=abc",
		Method: http.MethodPut,
	}, nil
}

func TestPresignPut(t *testing.T) {
	m := newMockS3()
	s := newStore(m, m, "shopping-receipts", "https://shopping-receipts.s3.us-east-2.amazonaws.com/")

	before := time.Now().UTC()
	got, err := s.PresignPut(context.Background(), "receipts/abc.jpg", "image/jpeg", time.Hour)
	if err != nil {
		t.Fatalf("PresignPut: %v", err)
	}
	if got.Method != http.MethodPut || got.URL == "" {
		t.Fatalf("unexpected upload url %+v", got)
	}
	if *m.lastPut.Bucket != "shopping-receipts" || *m.lastPut.ContentType != "image/jpeg" {
		t.Fatalf("unexpected presign input %+v", m.lastPut)
	}
	if m.lastTTL != time.Hour {
		t.Fatalf("ttl = %v, want 1h", m.lastTTL)
	}
	if got.ExpiresAt.Before(before.Add(time.Hour)) {
		t.Fatalf("ExpiresAt %v earlier than expected", got.ExpiresAt)
	}

	m.presignErr = errors.New("no credentials")
	if _, err := s.PresignPut(context.Background(), "receipts/abc.jpg", "image/jpeg", time.Hour); err == nil {
		t.Fatal("expected presign error")
	}
}

func TestExists(t *testing.T) {
	m := newMockS3()
	m.objects["receipts/there.jpg"] = true
	s := newStore(m, m, "b", "https://b.example")
	ctx := context.Background()

	if ok, err := s.Exists(ctx, "receipts/there.jpg"); err != nil || !ok {
		t.Fatalf("Exists(there) = %v, %v", ok, err)
	}
	if ok, err := s.Exists(ctx, "receipts/missing.jpg"); err != nil || ok {
		t.Fatalf("Exists(missing) = %v, %v", ok, err)
	}

	m.headErr = errors.New("connection reset")
	if _, err := s.Exists(ctx, "receipts/there.jpg"); err == nil {
		t.Fatal("expected transport error to surface")
	}
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"aws", config.Config{S3Bucket: "shopping-receipts", AWSRegion: "us-east-2"}, "https://shopping-receipts.s3.us-east-2.amazonaws.com"},
		{"minio", config.Config{S3Bucket: "r", S3Endpoint: "http://localhost:9000/"}, "http://localhost:9000/r"},
		{"override", config.Config{S3Bucket: "r", S3PublicBaseURL: "https://cdn.example"}, "https://cdn.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := publicBaseURL(&tt.cfg); got != tt.want {
				t.Fatalf("publicBaseURL = %q, want %q", got, tt.want)
			}
		})
	}

	s := newStore(nil, nil, "b", "https://cdn.example/")
	if got := s.PublicURL("receipts/x.jpg"); got != "https://cdn.example/receipts/x.jpg" {
		t.Fatalf("PublicURL = %q", got)
	}
}
