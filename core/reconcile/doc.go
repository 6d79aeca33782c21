// Package reconcile applies a stream of cookie records to a cookie store with
// an idempotent insert-or-update policy.
//
// The engine knows nothing about SQL. Stores plug in through the Adapter
// interface, and optionally Maintainer for post-batch compaction.
//
// # Architecture
//
// 1. Upsert: walks the records strictly in order. For each record it looks up
// the identity key, then updates the existing row or inserts a new one. A
// failure on a single record is counted as skipped and the batch continues.
// An error from the record source itself stops the batch.
//
// 2. Plan: the dry-run counterpart of Upsert. It performs lookups only and
// reports how many records would be inserted or updated.
//
// 3. Maintain: runs Vacuum then Reindex once, after the batch, on adapters
// that implement Maintainer.
//
// # Events
//
// Every step is reported to Options.Observer as an Event. The cookie carried in
// an event includes its value; observers that log must not print it.
//
// # Usage Example
//
//	summary, err := reconcile.Upsert(ctx, store, records, reconcile.Options{
//	    Observer: progress.Observe,
//	})
//	if err != nil {
//	    return err
//	}
//	if err := reconcile.Maintain(ctx, store); err != nil {
//	    log.Warn("maintenance failed", zap.Error(err))
//	}
package reconcile
