package cellz_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/annotation"
	cellztesting "github.com/zoobzio/cellz/testing"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/tracez"
)

func TestBuilder(t *testing.T) {
	reg := annotation.Registry()
	record, err := cellz.RecordOf[person](reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Build Every Field", func(t *testing.T) {
		b := cellz.NewBuilder()
		defer b.Close()

		chains, err := b.Build(context.Background(), record, cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chains) != len(record.Fields) {
			t.Fatalf("expected %d chains, got %d", len(record.Fields), len(chains))
		}
		cellztesting.AssertExecutes(t, chains[1], "^Doe", "Doe")

		if got := b.Metrics().Counter(cellz.BuilderBuildsTotal).Value(); got != float64(len(record.Fields)) {
			t.Errorf("expected %d builds, got %f", len(record.Fields), got)
		}
		if got := b.Metrics().Counter(cellz.BuilderFailuresTotal).Value(); got != 0 {
			t.Errorf("expected no failures, got %f", got)
		}
	})

	t.Run("Metrics and Spans", func(t *testing.T) {
		b := cellz.NewBuilder()
		defer b.Close()

		var spans []tracez.Span
		var spanMu sync.Mutex
		b.Tracer().OnSpanComplete(func(span tracez.Span) {
			spanMu.Lock()
			spans = append(spans, span)
			spanMu.Unlock()
		})

		balance, _ := record.Field("Balance")
		if _, err := b.BuildFor(context.Background(), record, balance, cellz.Write); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// parseDouble does not apply when writing.
		if got := b.Metrics().Gauge(cellz.BuilderSteps).Value(); got != 2 {
			t.Errorf("expected 2 steps, got %f", got)
		}
		if got := b.Metrics().Gauge(cellz.BuilderSkipped).Value(); got != 1 {
			t.Errorf("expected 1 skipped annotation, got %f", got)
		}

		spanMu.Lock()
		defer spanMu.Unlock()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		span := spans[0]
		if span.Name != cellz.BuilderBuildSpan {
			t.Errorf("unexpected span %s", span.Name)
		}
		for tag, want := range map[tracez.Tag]string{
			cellz.BuilderTagRecord:    "person",
			cellz.BuilderTagField:     "Balance",
			cellz.BuilderTagDirection: "write",
			cellz.BuilderTagSteps:     "2",
			cellz.BuilderTagSuccess:   "true",
		} {
			if got := span.Tags[tag]; got != want {
				t.Errorf("span tag %s: expected %q, got %q", tag, want, got)
			}
		}
	})

	t.Run("Chain Built Hook", func(t *testing.T) {
		clock := clockz.NewFakeClock()
		b := cellz.NewBuilder().WithClock(clock)
		defer b.Close()

		var mu sync.Mutex
		var events []cellz.BuildEvent
		if err := b.OnChainBuilt(func(_ context.Context, event cellz.BuildEvent) error {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
			return nil
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		last, _ := record.Field("LastName")
		if _, err := b.BuildFor(context.Background(), record, last, cellz.Read); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Wait for async hook processing
		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		event := events[0]
		if event.Record != "person" || event.Field != "LastName" || event.Direction != cellz.Read {
			t.Errorf("unexpected event location %+v", event)
		}
		if len(event.Steps) != 2 || event.Steps[0] != "strReplace" || event.Steps[1] != "trim" {
			t.Errorf("unexpected steps %v", event.Steps)
		}
		if !event.Timestamp.Equal(clock.Now()) {
			t.Errorf("expected timestamp from the fake clock, got %v", event.Timestamp)
		}
		if event.Duration != 0 {
			t.Errorf("expected no elapsed fake time, got %v", event.Duration)
		}
	})

	t.Run("Build Failed", func(t *testing.T) {
		b := cellz.NewBuilder()
		defer b.Close()

		var mu sync.Mutex
		var failed []cellz.BuildEvent
		if err := b.OnBuildFailed(func(_ context.Context, event cellz.BuildEvent) error {
			mu.Lock()
			failed = append(failed, event)
			mu.Unlock()
			return nil
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var signals []string
		listener := capitan.Hook(cellz.SignalBuildFailed, func(_ context.Context, e *capitan.Event) {
			mu.Lock()
			defer mu.Unlock()
			name, _ := cellz.FieldField.From(e)
			signals = append(signals, name)
		})
		defer listener.Close()

		_, err := b.BuildFor(context.Background(), record, field(misdeclared{}), cellz.Read)
		if !errors.Is(err, cellz.ErrIncompatibleProvider) {
			t.Fatalf("expected ErrIncompatibleProvider, got %v", err)
		}
		if got := b.Metrics().Counter(cellz.BuilderFailuresTotal).Value(); got != 1 {
			t.Errorf("expected 1 failure, got %f", got)
		}

		// Wait for async hook processing
		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		if len(failed) != 1 || !errors.Is(failed[0].Error, cellz.ErrIncompatibleProvider) {
			t.Errorf("expected one failure event, got %+v", failed)
		}
		if len(signals) != 1 || signals[0] != "Value" {
			t.Errorf("expected one build-failed signal for Value, got %v", signals)
		}
	})

	t.Run("Nil Record", func(t *testing.T) {
		b := cellz.NewBuilder()
		defer b.Close()
		chains, err := b.Build(context.Background(), nil, cellz.Write)
		var cfg *cellz.ConfigError
		if !errors.As(err, &cfg) || !errors.Is(err, cellz.ErrNilRecord) {
			t.Fatalf("expected ConfigError wrapping ErrNilRecord, got %v", err)
		}
		if cfg.Direction != cellz.Write || chains != nil {
			t.Errorf("unexpected result %v %+v", chains, cfg)
		}
	})

	t.Run("Nil Context", func(t *testing.T) {
		b := cellz.NewBuilder()
		defer b.Close()
		//nolint:staticcheck // nil context is tolerated
		if _, err := b.BuildFor(nil, record, record.Fields[0], cellz.Read); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestGroupExpandSignal(t *testing.T) {
	var mu sync.Mutex
	var warnings []string
	var stamps []float64
	listener := capitan.Hook(cellz.SignalGroupExpandFailed, func(_ context.Context, e *capitan.Event) {
		mu.Lock()
		defer mu.Unlock()
		msg, _ := cellz.FieldError.From(e)
		ts, _ := cellz.FieldTimestamp.From(e)
		warnings = append(warnings, msg)
		stamps = append(stamps, ts)
	})
	defer listener.Close()

	got := cellz.Extract(field(cellztesting.Group{Err: errors.New("denied")}, annotation.Trim{}))
	if len(got) != 1 {
		t.Fatalf("expected only trim to remain, got %v", got)
	}

	// Wait for async hook processing
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(warnings) != 1 || warnings[0] != "denied" {
		t.Errorf("expected one warning, got %v", warnings)
	}
	if len(stamps) != 1 || stamps[0] <= 0 {
		t.Errorf("expected a wall clock timestamp, got %v", stamps)
	}
}
