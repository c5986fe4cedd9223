package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/SamWeninger/shopping-assistant/pkg/events"
	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	shoppingListServices "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
	shoppingListWorkflows "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/workflows"
	shoppinglistevents "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/events"
)

// subscription pairs a topic with its handler.
type subscription struct {
	topic   string
	handler events.Handler
}

// startFunc schedules a reconciliation workflow. nil when Temporal is disabled.
type startFunc func(ctx context.Context, in shoppingListWorkflows.ReconcileReceiptInput) error

// subscribers builds the handler set for the worker process.
// Handlers must be idempotent: EventBus retries up to 3x on failure and the
// forwarder delivers at least once, in no particular order across topics.
//
// list.created has no subscriber. A created list is cached by the API on the
// write path; filling the cache from a redelivered creation event could
// resurrect members or a list that were removed since.
func subscribers(listCache shoppingListServices.ListCache, rec *receiptReconciler, log logger.Logger) []subscription {
	return []subscription{
		{shoppinglistevents.TopicListMembersChanged, handleMembersChanged(listCache, log)},
		{shoppinglistevents.TopicListDeleted, handleListDeleted(listCache, log)},
		{shoppinglistevents.TopicReceiptUploadIssued, rec.handle},
	}
}

// handleMembersChanged marks cached snapshots older than the event's list
// version stale. It backs up the API's own invalidation, which is best-effort.
func handleMembersChanged(listCache shoppingListServices.ListCache, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt shoppinglistevents.ListMembersChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := listCache.Invalidate(ctx, evt.ListID, evt.ListVersion); err != nil {
			return err
		}
		log.DebugContext(ctx, "list cache invalidated", "list_id", evt.ListID, "list_version", evt.ListVersion)
		return nil
	}
}

// handleListDeleted pins a deleted marker so no in-flight read can cache the
// list again.
func handleListDeleted(listCache shoppingListServices.ListCache, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt shoppinglistevents.ListDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := listCache.MarkDeleted(ctx, evt.ListID); err != nil {
			return err
		}
		log.DebugContext(ctx, "list cache marked deleted", "list_id", evt.ListID)
		return nil
	}
}

// receiptReconciler turns receipt.upload_issued events into reconciliation runs.
type receiptReconciler struct {
	start    startFunc
	receipts shoppingListWorkflows.Reconciler
	ttl      time.Duration
	grace    time.Duration
	now      func() time.Time
	log      logger.Logger
}

// handle starts the durable reconciliation workflow. Without Temporal there is
// no durable timer, so only receipts whose deadline already passed (a backlog
// being drained) are reconciled inline.
func (rr *receiptReconciler) handle(ctx context.Context, msg *message.Message) error {
	var evt shoppinglistevents.ReceiptUploadIssuedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return err
	}
	in := shoppingListWorkflows.ReconcileReceiptInput{
		ReceiptID: evt.ReceiptID,
		Delay:     shoppingListWorkflows.ReconcileDelay(evt.UploadedAt, rr.ttl, rr.grace, rr.now()),
	}

	if rr.start != nil {
		if err := rr.start(ctx, in); err != nil {
			return err
		}
		rr.log.InfoContext(ctx, "receipt reconciliation scheduled", "receipt_id", evt.ReceiptID, "delay", in.Delay.String())
		return nil
	}

	if in.Delay > 0 {
		rr.log.DebugContext(ctx, "temporal disabled, receipt left for a later sweep", "receipt_id", evt.ReceiptID)
		return nil
	}
	outcome, err := rr.receipts.Reconcile(ctx, evt.ReceiptID)
	if err != nil {
		return err
	}
	rr.log.InfoContext(ctx, "receipt reconciled inline", "receipt_id", evt.ReceiptID, "outcome", string(outcome))
	return nil
}
