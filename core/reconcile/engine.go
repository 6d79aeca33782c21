package reconcile

import (
	"context"
	"fmt"
	"iter"

	"cookie-importer/core/cookie"
)

// Upsert applies records to the store behind adapter, strictly in source order.
// Per-record failures are reported as EventSkipped with a *RecordError and do
// not stop the batch. An error yielded by records, or a cancelled context, stops
// the batch and is returned together with the counts so far.
func Upsert(ctx context.Context, adapter Adapter, records iter.Seq2[cookie.Cookie, error], opts Options) (Summary, error) {
	var summary Summary
	index := 0

	for c, err := range records {
		if err != nil {
			return summary, fmt.Errorf("failed to read record %d: %w", index, err)
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		opts.emit(Event{Type: EventParsed, Index: index, Cookie: c, Summary: summary})

		now := opts.now()
		id, updated, recErr := upsertOne(ctx, adapter, c, now)
		switch {
		case recErr != nil:
			recErr.Index = index
			summary.Skipped++
			opts.emit(Event{Type: EventSkipped, Index: index, Cookie: c, Err: recErr, Summary: summary})
		case updated:
			summary.Updated++
			opts.emit(Event{Type: EventUpdated, Index: index, Cookie: c, RowID: id, Summary: summary})
		default:
			summary.Inserted++
			opts.emit(Event{Type: EventInserted, Index: index, Cookie: c, RowID: id, Summary: summary})
		}
		index++
	}

	opts.emit(Event{Type: EventSummary, Index: index, Summary: summary})
	return summary, nil
}

func upsertOne(ctx context.Context, adapter Adapter, c cookie.Cookie, now int64) (int64, bool, *RecordError) {
	key := c.Key()

	id, found, err := adapter.Lookup(ctx, key)
	if err != nil {
		return 0, false, &RecordError{Key: key, Op: "lookup", Err: err}
	}

	if found {
		if err := adapter.Update(ctx, id, c, now); err != nil {
			return 0, false, &RecordError{Key: key, Op: "update", Err: err}
		}
		return id, true, nil
	}

	id, err = adapter.Insert(ctx, c, now)
	if err != nil {
		return 0, false, &RecordError{Key: key, Op: "insert", Err: err}
	}
	return id, false, nil
}

// Maintain runs Vacuum then Reindex once if adapter implements Maintainer.
// It stops at the first failure. Adapters without maintenance are a no-op.
func Maintain(ctx context.Context, adapter Adapter) error {
	m, ok := adapter.(Maintainer)
	if !ok {
		return nil
	}

	if err := m.Vacuum(ctx); err != nil {
		return fmt.Errorf("failed to vacuum %s store: %w", adapter.Name(), err)
	}
	if err := m.Reindex(ctx); err != nil {
		return fmt.Errorf("failed to reindex %s store: %w", adapter.Name(), err)
	}
	return nil
}
