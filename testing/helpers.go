// Package testing provides test utilities and helpers for cellz-based applications.
//
// This package includes a mock cell processor, annotation kinds that record
// the order their steps run in, and assertion helpers for composed chains.
//
// Example usage:
//
//	func TestOrder(t *testing.T) {
//		log := cellztesting.NewLog()
//		field := &cellz.Field{Name: "Name", Annotations: []cellz.Annotation{
//			cellztesting.Step{Label: "first", Log: log},
//			cellztesting.Step{Label: "second", Log: log},
//		}}
//		chain, err := cellz.BuildFor(nil, field, cellz.Read)
//		require.NoError(t, err)
//		_, _ = chain.Execute("x", nil)
//		cellztesting.AssertOrder(t, log, "first", "second")
//	}
package testing

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
)

// MockProcessor provides a configurable mock implementation of cell.Processor.
// It accepts every input kind, tracks calls and either forwards to its
// successor or returns a configured value.
type MockProcessor struct { //nolint:govet // fieldalignment: Test helper struct optimized for functionality over memory efficiency
	cell.AcceptsAll
	t           *testing.T
	name        string
	callCount   int64
	next        cell.Processor
	returnVal   any
	returnErr   error
	configured  bool
	mu          sync.RWMutex
	callHistory []MockCall
}

// MockCall represents a single call to the mock processor.
type MockCall struct {
	Input     any
	Timestamp time.Time
	Context   cell.Context
}

// NewMockProcessor creates a new mock processor for testing.
// Until WithReturn or WithNext is called it returns its input unchanged.
func NewMockProcessor(t *testing.T, name string) *MockProcessor {
	return &MockProcessor{t: t, name: name}
}

// WithReturn configures the mock to return specific values for all
// subsequent calls instead of forwarding.
func (m *MockProcessor) WithReturn(val any, err error) *MockProcessor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnVal = val
	m.returnErr = err
	m.configured = true
	return m
}

// WithNext configures the successor the mock forwards its input to.
func (m *MockProcessor) WithNext(next cell.Processor) *MockProcessor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next = next
	return m
}

// Name returns the name of the mock processor.
func (m *MockProcessor) Name() string {
	return m.name
}

// Execute implements cell.Processor.
func (m *MockProcessor) Execute(value any, ctx *cell.Context) (any, error) {
	atomic.AddInt64(&m.callCount, 1)

	m.mu.Lock()
	call := MockCall{Input: value, Timestamp: time.Now()}
	if ctx != nil {
		call.Context = *ctx
	}
	m.callHistory = append(m.callHistory, call)
	next, configured := m.next, m.configured
	returnVal, returnErr := m.returnVal, m.returnErr
	m.mu.Unlock()

	if configured {
		return returnVal, returnErr
	}
	if next != nil {
		return next.Execute(value, ctx)
	}
	return value, nil
}

// CallCount returns the number of times Execute has been called.
func (m *MockProcessor) CallCount() int {
	return int(atomic.LoadInt64(&m.callCount))
}

// CallHistory returns a copy of all recorded calls.
func (m *MockProcessor) CallHistory() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.callHistory)
}

// LastInput returns the input from the most recent call.
func (m *MockProcessor) LastInput() any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.callHistory) == 0 {
		return nil
	}
	return m.callHistory[len(m.callHistory)-1].Input
}

// Log records the labels of executed steps in order. It is safe for
// concurrent use.
type Log struct {
	labels []string
	mu     sync.Mutex
}

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Record appends label.
func (l *Log) Record(label string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.labels = append(l.labels, label)
}

// Labels returns a copy of the recorded labels.
func (l *Log) Labels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.labels)
}

// Reset forgets all recorded labels.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.labels = nil
}

// Step is an annotation kind applying in both directions whose processor
// records Label in Log and appends Label to string values.
type Step struct {
	Log   *Log
	Label string
	Order int
}

// Name implements cellz.Annotation.
func (Step) Name() string { return "step" }

// Descriptor implements cellz.Described.
func (Step) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(stepFactory[Step]), Directions: cellz.Both}
}

func (s Step) label() (string, *Log, int) { return s.Label, s.Log, s.Order }

// ReadStep is a Step that only applies when reading.
type ReadStep Step

// Name implements cellz.Annotation.
func (ReadStep) Name() string { return "readStep" }

// Descriptor implements cellz.Described.
func (ReadStep) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(stepFactory[ReadStep]), Directions: []cellz.Direction{cellz.Read}}
}

func (s ReadStep) label() (string, *Log, int) { return s.Label, s.Log, s.Order }

// WriteStep is a Step that only applies when writing.
type WriteStep Step

// Name implements cellz.Annotation.
func (WriteStep) Name() string { return "writeStep" }

// Descriptor implements cellz.Described.
func (WriteStep) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(stepFactory[WriteStep]), Directions: []cellz.Direction{cellz.Write}}
}

func (s WriteStep) label() (string, *Log, int) { return s.Label, s.Log, s.Order }

type labeled interface {
	cellz.Annotation
	label() (string, *Log, int)
}

func stepFactory[A labeled](a A, _ cellz.Metadata) (cellz.Factory, error) {
	label, log, order := a.label()
	return cellz.NewFactory(order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewFunc(label, func(value any, _ *cell.Context) (any, error) {
			if log != nil {
				log.Record(label)
			}
			if s, ok := value.(string); ok {
				return s + label, nil
			}
			return value, nil
		}, next), nil
	}), nil
}

// Group is a grouping annotation returning Members, or Err when set.
type Group struct {
	Err     error
	Members []cellz.Annotation
}

// Name implements cellz.Annotation.
func (Group) Name() string { return "group" }

// Annotations implements cellz.Group.
func (g Group) Annotations() ([]cellz.Annotation, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Members, nil
}

// Assertion Helpers

// AssertOrder verifies that log recorded exactly want, in order.
func AssertOrder(t *testing.T, log *Log, want ...string) {
	t.Helper()
	got := log.Labels()
	if !slices.Equal(got, want) {
		t.Errorf("expected steps %v to run, but %v ran", want, got)
	}
}

// AssertPassthrough verifies that p accepts every input kind and returns
// sample values of every kind unchanged.
func AssertPassthrough(t *testing.T, p cell.Processor) {
	t.Helper()
	capabilities := map[string]bool{
		"string": isA[cell.StringProcessor](p),
		"long":   isA[cell.LongProcessor](p),
		"double": isA[cell.DoubleProcessor](p),
		"bool":   isA[cell.BoolProcessor](p),
		"date":   isA[cell.DateProcessor](p),
	}
	for name, ok := range capabilities {
		if !ok {
			t.Errorf("expected %T to accept %s input", p, name)
		}
	}
	samples := []any{nil, "text", int64(42), 2.5, true, time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)}
	for _, in := range samples {
		out, err := p.Execute(in, &cell.Context{Line: 1, Row: 1, Column: 1})
		if err != nil {
			t.Errorf("expected %v to pass through, got error: %v", in, err)
			continue
		}
		if !reflect.DeepEqual(in, out) {
			t.Errorf("expected %v to pass through unchanged, got %v", in, out)
		}
	}
}

// AssertExecutes verifies that p turns in into want.
func AssertExecutes(t *testing.T, p cell.Processor, in, want any) {
	t.Helper()
	got, err := p.Execute(in, &cell.Context{Line: 1, Row: 1, Column: 1})
	if err != nil {
		t.Errorf("expected %v to become %v, got error: %v", in, want, err)
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v to become %s, got %s", in, describe(want), describe(got))
	}
}

func isA[P cell.Processor](p cell.Processor) bool {
	_, ok := p.(P)
	return ok
}

func describe(v any) string {
	return fmt.Sprintf("%#v (%T)", v, v)
}
