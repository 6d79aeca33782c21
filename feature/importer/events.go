package importer

import (
	"cookie-importer/core/reconcile"

	"go.uber.org/zap"
)

// eventLogger returns a reconcile.Observer that writes engine events to l.
// Per-record events go to debug, skips to warn, the summary to info.
// Cookie values are never written.
func eventLogger(l *zap.Logger) reconcile.Observer {
	return func(e reconcile.Event) {
		switch e.Type {
		case reconcile.EventParsed:
			// Reported by the outcome event that follows.
		case reconcile.EventInserted, reconcile.EventUpdated:
			l.Debug("Cookie "+string(e.Type),
				zap.Int("index", e.Index),
				zap.Stringer("key", e.Cookie.Key()),
				zap.Int64("row_id", e.RowID),
				zap.Int64("expiry", e.Cookie.Expiry),
			)
		case reconcile.EventSkipped:
			l.Warn("Cookie skipped",
				zap.Int("index", e.Index),
				zap.Stringer("key", e.Cookie.Key()),
				zap.Error(e.Err),
			)
		case reconcile.EventSummary:
			l.Info("Import finished",
				zap.Int("records", e.Index),
				zap.Int("inserted", e.Summary.Inserted),
				zap.Int("updated", e.Summary.Updated),
				zap.Int("skipped", e.Summary.Skipped),
			)
		}
	}
}

// chainObservers fans an event out to every non-nil observer in order.
func chainObservers(observers ...reconcile.Observer) reconcile.Observer {
	return func(e reconcile.Event) {
		for _, o := range observers {
			if o != nil {
				o(e)
			}
		}
	}
}
