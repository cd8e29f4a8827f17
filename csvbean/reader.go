package csvbean

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
	"github.com/zoobzio/metricz"
)

// Observability constants for readers and writers.
const (
	ReaderRowsTotal     = metricz.Key("reader.rows.total")
	ReaderFailuresTotal = metricz.Key("reader.failures.total")
	WriterRowsTotal     = metricz.Key("writer.rows.total")
	WriterFailuresTotal = metricz.Key("writer.failures.total")
)

// column is a record field bound to a CSV column and its chain.
type column struct {
	field *cellz.Field
	chain cell.Processor
}

// build composes the chain of field, through b when one is configured.
func build(ctx context.Context, b *cellz.Builder, record *cellz.Record, field *cellz.Field, dir cellz.Direction) (cell.Processor, error) {
	if b != nil {
		return b.BuildFor(ctx, record, field, dir)
	}
	return cellz.BuildFor(record, field, dir)
}

// Reader decodes CSV rows into values of the struct type T.
//
// By default the first row is a header and columns are matched to fields
// by name; columns without a field are ignored. WithHeader(false) maps
// columns to fields in declaration order instead.
//
// Metrics:
//   - reader.rows.total: Counter of rows decoded
//   - reader.failures.total: Counter of rows rejected by a chain
type Reader[T any] struct {
	csv      *csv.Reader
	registry *cellz.Registry
	builder  *cellz.Builder
	metrics  *metricz.Registry
	record   *cellz.Record
	err      error
	header   []string
	columns  []*column // by CSV column index, nil when unmapped
	row      int
	noHeader bool
	ready    bool
}

// NewReader creates a Reader for T reading from r.
func NewReader[T any](r io.Reader) *Reader[T] {
	metrics := metricz.New()
	metrics.Counter(ReaderRowsTotal)
	metrics.Counter(ReaderFailuresTotal)
	return &Reader[T]{csv: csv.NewReader(r), metrics: metrics}
}

// WithRegistry sets the registry used to parse cellz tags of T.
func (r *Reader[T]) WithRegistry(reg *cellz.Registry) *Reader[T] {
	r.registry = reg
	return r
}

// WithBuilder builds chains through b, so builds are observed.
func (r *Reader[T]) WithBuilder(b *cellz.Builder) *Reader[T] {
	r.builder = b
	return r
}

// WithComma sets the field delimiter.
func (r *Reader[T]) WithComma(comma rune) *Reader[T] {
	r.csv.Comma = comma
	return r
}

// WithHeader sets whether the first row is a header.
func (r *Reader[T]) WithHeader(header bool) *Reader[T] {
	r.noHeader = !header
	return r
}

// Metrics returns the metrics registry for this reader.
func (r *Reader[T]) Metrics() *metricz.Registry {
	return r.metrics
}

// Header returns the column names the reader maps, reading the header
// row if it has not been read yet.
func (r *Reader[T]) Header(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(r.header), nil
}

// init describes T, reads the header and builds one read chain per mapped
// column. Failures are kept and returned by every later call.
func (r *Reader[T]) init(ctx context.Context) error {
	if r.ready {
		return r.err
	}
	r.ready = true
	r.err = r.bind(ctx)
	return r.err
}

func (r *Reader[T]) bind(ctx context.Context) error {
	if t := reflect.TypeFor[T](); t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", cellz.ErrNotStruct, t)
	}
	record, err := cellz.RecordOf[T](r.registry)
	if err != nil {
		return err
	}
	r.record = record

	fields := record.Fields
	r.header = record.Columns()
	if !r.noHeader {
		header, err := r.csv.Read()
		if err != nil {
			return err
		}
		r.header = header
		fields = make([]*cellz.Field, len(header))
		mapped := 0
		for i, name := range header {
			if f, ok := record.Column(strings.TrimSpace(name)); ok {
				fields[i] = f
				mapped++
			}
		}
		if mapped == 0 {
			return fmt.Errorf("%w: %s", ErrNoColumns, record.Name)
		}
	}

	r.columns = make([]*column, len(fields))
	for i, f := range fields {
		if f == nil {
			continue
		}
		chain, err := build(ctx, r.builder, record, f, cellz.Read)
		if err != nil {
			return err
		}
		r.columns[i] = &column{field: f, chain: chain}
	}
	return nil
}

// Read decodes the next row. It returns io.EOF when no rows are left.
// A row rejected by a chain returns a *RowError; reading may continue
// with the next row. A nil ctx is treated as context.Background().
func (r *Reader[T]) Read(ctx context.Context) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if err := r.init(ctx); err != nil {
		return zero, err
	}
	raw, err := r.csv.Read()
	if err != nil {
		return zero, err
	}
	r.row++
	line, _ := r.csv.FieldPos(0)

	source := make([]any, len(raw))
	for i, s := range raw {
		source[i] = s
	}

	var v T
	dst := reflect.ValueOf(&v).Elem()
	for i, s := range raw {
		if i >= len(r.columns) || r.columns[i] == nil {
			continue
		}
		col := r.columns[i]
		var in any
		if s != "" {
			in = s
		}
		out, err := col.chain.Execute(in, &cell.Context{Line: line, Row: r.row, Column: i + 1, RowSource: source})
		if err == nil {
			err = assign(dst.FieldByIndex(col.field.Index), out)
		}
		if err != nil {
			return zero, r.fail(ctx, line, col.field.Column, err)
		}
	}
	r.metrics.Counter(ReaderRowsTotal).Inc()
	return v, nil
}

// ReadAll decodes every remaining row. It stops at the first error and
// returns the rows decoded before it.
func (r *Reader[T]) ReadAll(ctx context.Context) ([]T, error) {
	var out []T
	for {
		v, err := r.Read(ctx)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

func (r *Reader[T]) fail(ctx context.Context, line int, col string, err error) error {
	r.metrics.Counter(ReaderFailuresTotal).Inc()
	capitan.Warn(ctx, SignalRowFailed,
		FieldRecord.Field(r.record.Name),
		FieldLine.Field(line),
		FieldColumn.Field(col),
		cellz.FieldDirection.Field(cellz.Read.String()),
		cellz.FieldError.Field(err.Error()),
	)
	return &RowError{Line: line, Column: col, Err: err}
}
