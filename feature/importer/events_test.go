package importer

import (
	"errors"
	"fmt"
	"testing"

	"cookie-importer/core/cookie"
	"cookie-importer/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEventLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	observe := eventLogger(zap.New(core))

	c := cookie.Cookie{Name: "sid", Value: "super-secret", Domain: ".example.com", Path: "/"}
	observe(reconcile.Event{Type: reconcile.EventParsed, Cookie: c})
	observe(reconcile.Event{Type: reconcile.EventInserted, Index: 0, Cookie: c, RowID: 7})
	observe(reconcile.Event{Type: reconcile.EventSkipped, Index: 1, Cookie: c, Err: errors.New("locked")})
	observe(reconcile.Event{Type: reconcile.EventSummary, Index: 2, Summary: reconcile.Summary{Inserted: 1, Skipped: 1}})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, int64(7), entries[0].ContextMap()["row_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, int64(1), entries[2].ContextMap()["inserted"])

	for _, e := range entries {
		assert.NotContains(t, e.Message, "super-secret")
		for _, v := range e.ContextMap() {
			assert.NotContains(t, fmt.Sprint(v), "super-secret")
		}
	}
}

func TestChainObservers(t *testing.T) {
	var order []string
	chained := chainObservers(
		func(reconcile.Event) { order = append(order, "first") },
		nil,
		func(reconcile.Event) { order = append(order, "second") },
	)

	chained(reconcile.Event{Type: reconcile.EventSummary})
	assert.Equal(t, []string{"first", "second"}, order)
}
