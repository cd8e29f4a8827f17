package csvbean

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
	"github.com/zoobzio/metricz"
)

// Writer encodes values of the struct type T as CSV rows, one column per
// record field in declaration order.
//
// Unless WithHeader(false) is set, the header row is written before the
// first row. Output is buffered; call Flush when done.
//
// Metrics:
//   - writer.rows.total: Counter of rows encoded
//   - writer.failures.total: Counter of rows rejected by a chain
type Writer[T any] struct {
	csv        *csv.Writer
	registry   *cellz.Registry
	builder    *cellz.Builder
	metrics    *metricz.Registry
	record     *cellz.Record
	err        error
	columns    []*column
	line       int
	row        int
	noHeader   bool
	ready      bool
	headerDone bool
}

// NewWriter creates a Writer for T writing to w.
func NewWriter[T any](w io.Writer) *Writer[T] {
	metrics := metricz.New()
	metrics.Counter(WriterRowsTotal)
	metrics.Counter(WriterFailuresTotal)
	return &Writer[T]{csv: csv.NewWriter(w), metrics: metrics}
}

// WithRegistry sets the registry used to parse cellz tags of T.
func (w *Writer[T]) WithRegistry(reg *cellz.Registry) *Writer[T] {
	w.registry = reg
	return w
}

// WithBuilder builds chains through b, so builds are observed.
func (w *Writer[T]) WithBuilder(b *cellz.Builder) *Writer[T] {
	w.builder = b
	return w
}

// WithComma sets the field delimiter.
func (w *Writer[T]) WithComma(comma rune) *Writer[T] {
	w.csv.Comma = comma
	return w
}

// WithHeader sets whether a header row is written before the first row.
func (w *Writer[T]) WithHeader(header bool) *Writer[T] {
	w.noHeader = !header
	return w
}

// Metrics returns the metrics registry for this writer.
func (w *Writer[T]) Metrics() *metricz.Registry {
	return w.metrics
}

func (w *Writer[T]) init(ctx context.Context) error {
	if w.ready {
		return w.err
	}
	w.ready = true
	w.err = w.bind(ctx)
	return w.err
}

func (w *Writer[T]) bind(ctx context.Context) error {
	if t := reflect.TypeFor[T](); t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", cellz.ErrNotStruct, t)
	}
	record, err := cellz.RecordOf[T](w.registry)
	if err != nil {
		return err
	}
	w.record = record
	w.columns = make([]*column, len(record.Fields))
	for i, f := range record.Fields {
		chain, err := build(ctx, w.builder, record, f, cellz.Write)
		if err != nil {
			return err
		}
		w.columns[i] = &column{field: f, chain: chain}
	}
	return nil
}

// WriteHeader writes the column names of T. It writes at most once.
func (w *Writer[T]) WriteHeader(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := w.init(ctx); err != nil {
		return err
	}
	if w.headerDone {
		return nil
	}
	if err := w.csv.Write(w.record.Columns()); err != nil {
		return err
	}
	w.headerDone = true
	w.line++
	return nil
}

// Write encodes v as the next row. A value rejected by a chain returns a
// *RowError and nothing is written for that row. A nil ctx is treated as
// context.Background().
func (w *Writer[T]) Write(ctx context.Context, v T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.init(ctx); err != nil {
		return err
	}
	if !w.noHeader && !w.headerDone {
		if err := w.WriteHeader(ctx); err != nil {
			return err
		}
	}

	src := reflect.ValueOf(v)
	line := w.line + 1
	source := make([]any, len(w.columns))
	for i, col := range w.columns {
		source[i] = fieldValue(src.FieldByIndex(col.field.Index))
	}

	row := make([]string, len(w.columns))
	for i, col := range w.columns {
		out, err := col.chain.Execute(source[i], &cell.Context{Line: line, Row: w.row + 1, Column: i + 1, RowSource: source})
		if err != nil {
			return w.fail(ctx, line, col.field.Column, err)
		}
		row[i] = text(out)
	}
	if err := w.csv.Write(row); err != nil {
		return err
	}
	w.line++
	w.row++
	w.metrics.Counter(WriterRowsTotal).Inc()
	return nil
}

// Flush writes buffered rows to the underlying writer.
func (w *Writer[T]) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func (w *Writer[T]) fail(ctx context.Context, line int, col string, err error) error {
	w.metrics.Counter(WriterFailuresTotal).Inc()
	capitan.Warn(ctx, SignalRowFailed,
		FieldRecord.Field(w.record.Name),
		FieldLine.Field(line),
		FieldColumn.Field(col),
		cellz.FieldDirection.Field(cellz.Write.String()),
		cellz.FieldError.Field(err.Error()),
	)
	return &RowError{Line: line, Column: col, Err: err}
}
