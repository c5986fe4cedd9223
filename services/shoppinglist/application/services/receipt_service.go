package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
)

// DefaultUploadTTL is how long an issued receipt upload URL stays valid.
const DefaultUploadTTL = time.Hour

// UploadGrant is returned to a client that wants to upload a receipt image.
type UploadGrant struct {
	ReceiptID uuid.UUID
	UploadURL string
	Method    string
	ImageURL  string
	ExpiresAt time.Time
}

// ReconcileOutcome reports what Reconcile did with a receipt record.
type ReconcileOutcome string

const (
	ReconcileConfirmed ReconcileOutcome = "confirmed" // object uploaded, record kept
	ReconcileDropped   ReconcileOutcome = "dropped"   // object absent, record deleted
	ReconcileMissing   ReconcileOutcome = "missing"   // record already gone
)

// ReceiptService issues receipt upload URLs and reconciles receipt metadata
// against the object store.
type ReceiptService struct {
	receipts repositories.ReceiptRepository
	objects  repositories.ObjectStore
	lists    *ListService
	ttl      time.Duration
	log      logger.Logger
}

// NewReceiptService returns a ReceiptService. A zero ttl means DefaultUploadTTL.
func NewReceiptService(receipts repositories.ReceiptRepository, objects repositories.ObjectStore, lists *ListService, ttl time.Duration, log logger.Logger) *ReceiptService {
	if ttl <= 0 {
		ttl = DefaultUploadTTL
	}
	return &ReceiptService{receipts: receipts, objects: objects, lists: lists, ttl: ttl, log: log}
}

// TTL returns the validity of issued upload URLs.
func (s *ReceiptService) TTL() time.Duration {
	return s.ttl
}

// GenerateUploadURL issues a pre-signed PUT for a new receipt image and
// records its metadata. The metadata exists before the upload happens;
// Reconcile removes it if the upload never arrives.
func (s *ReceiptService) GenerateUploadURL(ctx context.Context, listID uuid.UUID, uploadedBy string) (grant *UploadGrant, err error) {
	defer func() { record(ctx, "receipt.generate_upload_url", err) }()

	if _, err := s.lists.Get(ctx, listID, uploadedBy); err != nil {
		return nil, err
	}

	id := uuid.New()
	key := models.ReceiptObjectKey(id)
	upload, err := s.objects.PresignPut(ctx, key, models.ReceiptContentType, s.ttl)
	if err != nil {
		return nil, domain.Op("receipt.presign", key, fmt.Errorf("%w: %w", domain.ErrUploadURL, err))
	}

	rc := models.NewReceipt(id, listID, uploadedBy, s.objects.PublicURL(key))
	if err := s.receipts.Create(ctx, rc); err != nil {
		return nil, domain.Op("receipt.create", id.String(), fmt.Errorf("%w: %w", domain.ErrUploadURL, err))
	}

	return &UploadGrant{
		ReceiptID: id,
		UploadURL: upload.URL,
		Method:    upload.Method,
		ImageURL:  rc.ImageURL,
		ExpiresAt: upload.ExpiresAt,
	}, nil
}

// ListReceipts returns the receipts recorded against a list, newest first.
func (s *ReceiptService) ListReceipts(ctx context.Context, listID uuid.UUID, requestingUserID string) (receipts []*models.Receipt, err error) {
	defer func() { record(ctx, "receipt.list", err) }()

	if _, err := s.lists.Get(ctx, listID, requestingUserID); err != nil {
		return nil, err
	}
	receipts, err = withRetry(ctx, func(ctx context.Context) ([]*models.Receipt, error) {
		return s.receipts.ListByList(ctx, listID)
	})
	if err != nil {
		return nil, domain.Op("receipt.list", listID.String(), domain.Dependency(err))
	}
	return receipts, nil
}

// Reconcile checks whether the image for receiptID was uploaded. If not, the
// metadata record is dropped. Safe to call repeatedly.
func (s *ReceiptService) Reconcile(ctx context.Context, receiptID uuid.UUID) (outcome ReconcileOutcome, err error) {
	defer func() { record(ctx, "receipt.reconcile", err) }()

	rc, err := withRetry(ctx, func(ctx context.Context) (*models.Receipt, error) {
		return s.receipts.Get(ctx, receiptID)
	})
	if domain.Kind(err) == domain.KindNotFound {
		return ReconcileMissing, nil
	}
	if err != nil {
		return "", domain.Op("receipt.reconcile", receiptID.String(), domain.Dependency(err))
	}

	exists, err := withRetry(ctx, func(ctx context.Context) (bool, error) {
		return s.objects.Exists(ctx, rc.ObjectKey)
	})
	if err != nil {
		return "", domain.Op("receipt.reconcile", rc.ObjectKey, domain.Dependency(err))
	}
	if exists {
		return ReconcileConfirmed, nil
	}

	err = retryDo(ctx, func(ctx context.Context) error {
		return s.receipts.Delete(ctx, receiptID)
	})
	if err != nil {
		return "", domain.Op("receipt.reconcile", receiptID.String(), domain.Dependency(err))
	}
	s.log.InfoContext(ctx, "dropped receipt without upload", "receipt_id", receiptID, "object_key", rc.ObjectKey)
	return ReconcileDropped, nil
}
