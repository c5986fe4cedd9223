// Package workflows holds the Temporal workflows of the shopping list context.
//
// A receipt upload URL is issued before any bytes reach the object store, so
// the metadata record may outlive an upload that never happens.
// ReconcileReceiptWorkflow waits until the URL has expired and then drops the
// record if the object is still absent.
package workflows

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// ReconcileReceiptInput starts a reconciliation run.
type ReconcileReceiptInput struct {
	ReceiptID uuid.UUID     `json:"receipt_id"`
	Delay     time.Duration `json:"delay"`
}

// Reconciler is the slice of ReceiptService the activity needs.
type Reconciler interface {
	Reconcile(ctx context.Context, receiptID uuid.UUID) (appsvcs.ReconcileOutcome, error)
}

// Activities groups the activities registered on the worker.
type Activities struct {
	Receipts Reconciler
}

// ReconcileReceipt checks the object store and drops the receipt record when
// no image was uploaded.
func (a *Activities) ReconcileReceipt(ctx context.Context, receiptID uuid.UUID) (appsvcs.ReconcileOutcome, error) {
	return a.Receipts.Reconcile(ctx, receiptID)
}

// ReconcileReceiptWorkflow sleeps for in.Delay and then runs the
// ReconcileReceipt activity once.
func ReconcileReceiptWorkflow(ctx workflow.Context, in ReconcileReceiptInput) (appsvcs.ReconcileOutcome, error) {
	log := workflow.GetLogger(ctx)

	if in.Delay > 0 {
		if err := workflow.Sleep(ctx, in.Delay); err != nil {
			return "", err
		}
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    10,
		},
	})

	var a *Activities
	var outcome appsvcs.ReconcileOutcome
	if err := workflow.ExecuteActivity(ctx, a.ReconcileReceipt, in.ReceiptID).Get(ctx, &outcome); err != nil {
		return "", err
	}

	log.Info("receipt reconciled", "receipt_id", in.ReceiptID.String(), "outcome", string(outcome))
	return outcome, nil
}

// Register adds the workflows and activities of this package to w.
func Register(w worker.Registry, acts *Activities) {
	w.RegisterWorkflow(ReconcileReceiptWorkflow)
	w.RegisterActivity(acts)
}

// WorkflowID is deterministic per receipt so a redelivered event joins the
// run already in flight.
func WorkflowID(receiptID uuid.UUID) string {
	return "receipt-reconcile-" + receiptID.String()
}

// ReconcileDelay is how long to wait, as of now, before checking a receipt
// uploaded at uploadedAt. It is never negative.
func ReconcileDelay(uploadedAt time.Time, ttl, grace time.Duration, now time.Time) time.Duration {
	d := uploadedAt.Add(ttl + grace).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// StartReconciliation schedules ReconcileReceiptWorkflow on taskQueue. Starting
// a receipt whose workflow is already running returns that run.
func StartReconciliation(ctx context.Context, c client.Client, taskQueue string, in ReconcileReceiptInput) (client.WorkflowRun, error) {
	return c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        WorkflowID(in.ReceiptID),
		TaskQueue: taskQueue,
	}, ReconcileReceiptWorkflow, in)
}
