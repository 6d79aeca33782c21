package reconcile

import (
	"context"
	"fmt"
	"iter"

	"cookie-importer/core/cookie"
)

// Plan is the dry-run counterpart of Upsert. It only calls adapter.Lookup and
// never writes. A key already seen earlier in the same batch counts as an
// update, matching what Upsert would do with it.
//
// Observers receive EventParsed for every record and one EventSummary whose
// Summary maps ToInsert, ToUpdate and Failed onto Inserted, Updated and Skipped.
func Plan(ctx context.Context, adapter Adapter, records iter.Seq2[cookie.Cookie, error], opts Options) (PlanSummary, error) {
	var plan PlanSummary
	seen := make(map[cookie.Key]struct{})
	index := 0

	for c, err := range records {
		if err != nil {
			return plan, fmt.Errorf("failed to read record %d: %w", index, err)
		}
		if err := ctx.Err(); err != nil {
			return plan, err
		}

		opts.emit(Event{Type: EventParsed, Index: index, Cookie: c})
		index++

		key := c.Key()
		if _, ok := seen[key]; ok {
			plan.ToUpdate++
			continue
		}

		_, found, err := adapter.Lookup(ctx, key)
		if err != nil {
			plan.Failed++
			opts.emit(Event{
				Type:   EventSkipped,
				Index:  index - 1,
				Cookie: c,
				Err:    &RecordError{Index: index - 1, Key: key, Op: "lookup", Err: err},
			})
			continue
		}

		seen[key] = struct{}{}
		if found {
			plan.ToUpdate++
		} else {
			plan.ToInsert++
		}
	}

	opts.emit(Event{
		Type:  EventSummary,
		Index: index,
		Summary: Summary{
			Inserted: plan.ToInsert,
			Updated:  plan.ToUpdate,
			Skipped:  plan.Failed,
		},
	})
	return plan, nil
}
