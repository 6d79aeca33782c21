package reconcile

import (
	"fmt"
	"time"

	"cookie-importer/core/cookie"
)

// Summary provides aggregate counts for a completed upsert.
type Summary struct {
	// Inserted counts records that created a new row.
	Inserted int `json:"inserted"`

	// Updated counts records that overwrote an existing row.
	Updated int `json:"updated"`

	// Skipped counts records whose lookup or write failed.
	Skipped int `json:"skipped"`
}

// Total returns the number of records the engine consumed.
func (s Summary) Total() int {
	return s.Inserted + s.Updated + s.Skipped
}

// PlanSummary provides aggregate counts for a dry run.
type PlanSummary struct {
	// ToInsert counts records with no matching row.
	ToInsert int `json:"to_insert"`

	// ToUpdate counts records matching an existing row or an earlier record.
	ToUpdate int `json:"to_update"`

	// Failed counts records whose lookup failed.
	Failed int `json:"failed"`
}

// Total returns the number of records the planner consumed.
func (p PlanSummary) Total() int {
	return p.ToInsert + p.ToUpdate + p.Failed
}

// EventType represents the kind of engine event.
type EventType string

const (
	// EventParsed is emitted when a record is taken from the source.
	EventParsed EventType = "parsed"
	// EventInserted is emitted after a new row is created.
	EventInserted EventType = "inserted"
	// EventUpdated is emitted after an existing row is overwritten.
	EventUpdated EventType = "updated"
	// EventSkipped is emitted when a record fails and is counted as skipped.
	EventSkipped EventType = "skipped"
	// EventSummary is emitted once, after the last record.
	EventSummary EventType = "summary"
)

// Event describes one step of an upsert run.
type Event struct {
	// Type specifies what happened.
	Type EventType

	// Index is the zero-based position of the record in the source.
	Index int

	// Cookie is the record being processed. Zero for EventSummary.
	Cookie cookie.Cookie

	// RowID is the affected row for EventInserted and EventUpdated.
	RowID int64

	// Err is set for EventSkipped.
	Err error

	// Summary holds the running totals after this event.
	Summary Summary
}

// Observer receives engine events synchronously.
type Observer func(Event)

// Options controls an upsert or plan run.
type Options struct {
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Observer is notified of every event. May be nil.
	Observer Observer
}

func (o Options) now() int64 {
	if o.Clock != nil {
		return cookie.NowMicros(o.Clock())
	}
	return cookie.NowMicros(time.Now())
}

func (o Options) emit(e Event) {
	if o.Observer != nil {
		o.Observer(e)
	}
}

// RecordError reports a single record that could not be written.
type RecordError struct {
	// Index is the zero-based position of the record in the source.
	Index int

	// Key identifies the cookie; it never includes the value.
	Key cookie.Key

	// Op is the failed step: "lookup", "update" or "insert".
	Op string

	// Err is the underlying store error.
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %s failed: %v", e.Index, e.Key, e.Op, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
