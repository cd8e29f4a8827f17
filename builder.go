package cellz

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/cellz/cell"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Builder.
const (
	// Metrics.
	BuilderBuildsTotal   = metricz.Key("builder.builds.total")
	BuilderFailuresTotal = metricz.Key("builder.failures.total")
	BuilderSteps         = metricz.Key("builder.steps")
	BuilderSkipped       = metricz.Key("builder.skipped")
	BuilderDurationMs    = metricz.Key("builder.duration.ms")

	// Spans.
	BuilderBuildSpan = tracez.Key("builder.build")

	// Tags.
	BuilderTagRecord    = tracez.Tag("builder.record")
	BuilderTagField     = tracez.Tag("builder.field")
	BuilderTagDirection = tracez.Tag("builder.direction")
	BuilderTagSteps     = tracez.Tag("builder.steps")
	BuilderTagSuccess   = tracez.Tag("builder.success")
	BuilderTagError     = tracez.Tag("builder.error")

	// Hook event keys.
	BuilderEventChainBuilt  = hookz.Key("builder.chain_built")
	BuilderEventBuildFailed = hookz.Key("builder.build_failed")
)

// BuildEvent describes one chain build.
// It is emitted via hookz after every build, successful or not.
type BuildEvent struct {
	Timestamp time.Time     // When the build finished
	Error     error         // Configuration error if the build failed
	Record    string        // Record type name
	Field     string        // Go field name
	Steps     []string      // Annotation names in execution order
	Duration  time.Duration // How long the build took
	Skipped   int           // Extracted annotations that did not apply
	Direction Direction     // Direction the chain was built for
}

// Builder builds chains like BuildFor and reports every build.
//
// # Observability
//
// Metrics:
//   - builder.builds.total: Counter of chains built
//   - builder.failures.total: Counter of failed builds
//   - builder.steps: Gauge of steps in the last chain built
//   - builder.skipped: Gauge of annotations the last build did not apply
//   - builder.duration.ms: Gauge of the last build duration
//
// Traces:
//   - builder.build: Span per field build
//
// Events (via hooks):
//   - builder.chain_built: Fired when a chain is composed
//   - builder.build_failed: Fired when a declaration cannot be composed
//
// A Builder is safe for concurrent use.
type Builder struct {
	clock   clockz.Clock
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[BuildEvent]
	mu      sync.RWMutex
}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	metrics := metricz.New()
	metrics.Counter(BuilderBuildsTotal)
	metrics.Counter(BuilderFailuresTotal)
	metrics.Gauge(BuilderSteps)
	metrics.Gauge(BuilderSkipped)
	metrics.Gauge(BuilderDurationMs)

	return &Builder{
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[BuildEvent](),
	}
}

// BuildFor composes the chain of field for dir. See the package level BuildFor.
func (b *Builder) BuildFor(ctx context.Context, record *Record, field *Field, dir Direction) (proc cell.Processor, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	clock := b.getClock()
	start := clock.Now()

	ctx, span := b.tracer.StartSpan(ctx, BuilderBuildSpan)
	if record != nil {
		span.SetTag(BuilderTagRecord, record.Name)
	}
	if field != nil {
		span.SetTag(BuilderTagField, field.Name)
	}
	span.SetTag(BuilderTagDirection, dir.String())

	var res resolution
	defer func() {
		elapsed := clock.Since(start)
		b.metrics.Gauge(BuilderDurationMs).Set(float64(elapsed.Milliseconds()))

		event := BuildEvent{
			Direction: dir,
			Duration:  elapsed,
			Error:     err,
			Timestamp: clock.Now(),
		}
		if record != nil {
			event.Record = record.Name
		}
		if field != nil {
			event.Field = field.Name
		}

		if err != nil {
			b.metrics.Counter(BuilderFailuresTotal).Inc()
			span.SetTag(BuilderTagSuccess, "false")
			span.SetTag(BuilderTagError, err.Error())
			span.Finish()
			capitan.Error(ctx, SignalBuildFailed,
				FieldRecord.Field(event.Record),
				FieldField.Field(event.Field),
				FieldDirection.Field(dir.String()),
				FieldError.Field(err.Error()),
				FieldTimestamp.Field(float64(event.Timestamp.Unix())),
			)
			_ = b.hooks.Emit(ctx, BuilderEventBuildFailed, event) //nolint:errcheck
			return
		}

		steps := len(res.definitions)
		event.Skipped = res.extracted - steps
		event.Steps = make([]string, steps)
		for i, d := range res.definitions {
			event.Steps[steps-1-i] = d.annotation.Name()
		}
		b.metrics.Counter(BuilderBuildsTotal).Inc()
		b.metrics.Gauge(BuilderSteps).Set(float64(steps))
		b.metrics.Gauge(BuilderSkipped).Set(float64(event.Skipped))
		span.SetTag(BuilderTagSteps, strconv.Itoa(steps))
		span.SetTag(BuilderTagSuccess, "true")
		span.Finish()
		capitan.Info(ctx, SignalChainBuilt,
			FieldRecord.Field(event.Record),
			FieldField.Field(event.Field),
			FieldDirection.Field(dir.String()),
			FieldSteps.Field(steps),
			FieldSkipped.Field(event.Skipped),
			FieldDuration.Field(elapsed.Seconds()),
			FieldTimestamp.Field(float64(event.Timestamp.Unix())),
		)
		_ = b.hooks.Emit(ctx, BuilderEventChainBuilt, event) //nolint:errcheck
	}()

	res, err = resolveAll(record, field, dir)
	if err != nil {
		return nil, err
	}
	return res.fold(record, field, dir)
}

// Build composes the chain of every field of record for dir. The result
// is indexed like record.Fields. The first configuration error aborts.
func (b *Builder) Build(ctx context.Context, record *Record, dir Direction) ([]cell.Processor, error) {
	if record == nil {
		return nil, configError(nil, nil, dir, "", ErrNilRecord)
	}
	chains := make([]cell.Processor, len(record.Fields))
	for i, f := range record.Fields {
		p, err := b.BuildFor(ctx, record, f, dir)
		if err != nil {
			return nil, err
		}
		chains[i] = p
	}
	return chains, nil
}

// WithClock sets a custom clock for testing.
func (b *Builder) WithClock(clock clockz.Clock) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clock = clock
	return b
}

// getClock returns the clock to use.
func (b *Builder) getClock() clockz.Clock {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.clock == nil {
		return clockz.RealClock
	}
	return b.clock
}

// Metrics returns the metrics registry for this builder.
func (b *Builder) Metrics() *metricz.Registry {
	return b.metrics
}

// Tracer returns the tracer for this builder.
func (b *Builder) Tracer() *tracez.Tracer {
	return b.tracer
}

// Close gracefully shuts down observability components.
func (b *Builder) Close() error {
	if b.tracer != nil {
		b.tracer.Close()
	}
	b.hooks.Close()
	return nil
}

// OnChainBuilt registers a handler called asynchronously after every
// successful build.
func (b *Builder) OnChainBuilt(handler func(context.Context, BuildEvent) error) error {
	_, err := b.hooks.Hook(BuilderEventChainBuilt, handler)
	return err
}

// OnBuildFailed registers a handler called asynchronously after every
// failed build.
func (b *Builder) OnBuildFailed(handler func(context.Context, BuildEvent) error) error {
	_, err := b.hooks.Hook(BuilderEventBuildFailed, handler)
	return err
}
