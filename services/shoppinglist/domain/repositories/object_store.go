package repositories

import (
	"context"
	"time"
)

// UploadURL is a time-limited credential for writing one object.
type UploadURL struct {
	URL       string
	Method    string
	ExpiresAt time.Time
}

// ObjectStore issues pre-signed upload URLs for receipt images.
// Implementations never see the uploaded bytes.
type ObjectStore interface {
	// PresignPut returns a URL that accepts a single PUT of contentType at key
	// until ttl elapses.
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (*UploadURL, error)

	// PublicURL derives the public URL of key. It performs no I/O.
	PublicURL(key string) string

	// Exists reports whether an object has been written at key.
	Exists(ctx context.Context, key string) (bool, error)
}
