package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/annotation"
	"github.com/zoobzio/cellz/cell"
	"github.com/zoobzio/cellz/csvbean"
)

// Sample is a record type with built-in data the commands can run on.
type Sample interface {
	Name() string
	Description() string
	Input() string
	Record() (*cellz.Record, error)
	Read(ctx context.Context, r io.Reader, b *cellz.Builder, fn func(row any, err error)) error
	Write(ctx context.Context, w io.Writer, b *cellz.Builder) error
}

// Customer exercises parsing, constraints and a factory method.
type Customer struct {
	Joined  time.Time       `cellz:"parseDate{layout: '2006-01-02'};fmtDate{layout: '2006-01-02'}"`
	Balance decimal.Decimal `cellz:"optional;parseBigDecimal"`
	Name    string          `cellz:"factoryMethod{method: NameSteps};strMinMax{min: 1, max: 40}"`
	Email   string          `cellz:"trim;strRegEx{regex: '.+@.+'}"`
	Tier    string          `cellz:"convertNullTo{value: bronze};isIncludedIn{values: [gold, silver, bronze]}"`
	ID      uuid.UUID       `csv:"customer_id" cellz:"parseUUID;unique"`
}

// NameSteps trims the name and rejects empty ones.
func (Customer) NameSteps(next cell.Processor) cell.Processor {
	return cell.NewTrim(cell.NewStrNotNullOrEmpty(next))
}

// Order exercises numbers, booleans and repeated annotations.
type Order struct {
	Number   int64   `csv:"order" cellz:"parseLong;unique"`
	Customer string  `cellz:"trim;strReplace.list{values: [{pattern: '\\s+', replacement: ' '}, {pattern: '^mr ', replacement: 'Mr '}]}"`
	Quantity int     `cellz:"parseInt;lMinMax{min: 1, max: 100}"`
	Price    float64 `cellz:"parseDouble;dMinMax{min: 0, max: 10000};fmtNumber{format: '0.00'}"`
	Express  bool    `cellz:"convertNullTo{value: 'false'};parseBool;fmtBool{trueValue: yes, falseValue: no}"`
	Note     string  `cellz:"optional;truncate{maxSize: 20, suffix: '...'}"`
}

var registry = annotation.Registry()

// getAllSamples returns all samples in a consistent order.
func getAllSamples() []Sample {
	return []Sample{
		sample[Customer]{
			name:        "customer",
			description: "Customers with UUID keys, decimal balances and a factory method",
			input: `customer_id,name,email,tier,joined,balance
0b3c6f5e-3f7e-4b8a-9c53-2f6c1d1e7a01,  Ada Lovelace ,ada@example.com,gold,2015-12-10,1200.50
5d2f9a10-8a4b-4c4e-b1de-6f9e3c2a0b02,Grace Hopper,grace@example.com,,2016-12-09,
5d2f9a10-8a4b-4c4e-b1de-6f9e3c2a0b02,Duplicate,dup@example.com,silver,2017-01-01,1
9a7e1c44-2b1d-4f0a-8e6b-1c2d3e4f5a03,Alan Turing,not-an-email,platinum,2012-06-23,0
`,
			rows: []Customer{
				{
					ID:      uuid.MustParse("0b3c6f5e-3f7e-4b8a-9c53-2f6c1d1e7a01"),
					Name:    "Ada Lovelace",
					Email:   "ada@example.com",
					Tier:    "gold",
					Joined:  time.Date(2015, 12, 10, 0, 0, 0, 0, time.UTC),
					Balance: decimal.RequireFromString("1200.50"),
				},
			},
		},
		sample[Order]{
			name:        "order",
			description: "Orders with bounded quantities, formatted prices and optional notes",
			input: `order,customer,quantity,price,express,note
1001,mr   Smith,2,19.9,y,
1002,Jones,1,5,,leave at the back door please
1003,Brown,500,1,n,
`,
			rows: []Order{
				{Number: 1001, Customer: "Mr Smith", Quantity: 2, Price: 19.9, Express: true},
				{Number: 1002, Customer: "Jones", Quantity: 1, Price: 5, Note: "leave at the back door please"},
			},
		},
	}
}

// getSampleByName returns a specific sample by name.
func getSampleByName(name string) (Sample, bool) {
	for _, s := range getAllSamples() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

type sample[T any] struct {
	name        string
	description string
	input       string
	rows        []T
}

func (s sample[T]) Name() string        { return s.name }
func (s sample[T]) Description() string { return s.description }
func (s sample[T]) Input() string       { return s.input }

func (s sample[T]) Record() (*cellz.Record, error) {
	return cellz.RecordOf[T](registry)
}

// Read decodes every row of r, handing rows and row errors to fn.
// Other errors end the read.
func (s sample[T]) Read(ctx context.Context, r io.Reader, b *cellz.Builder, fn func(row any, err error)) error {
	reader := csvbean.NewReader[T](r).WithRegistry(registry).WithBuilder(b)
	for {
		row, err := reader.Read(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		var rowErr *csvbean.RowError
		if errors.As(err, &rowErr) {
			fn(nil, err)
			continue
		}
		if err != nil {
			return err
		}
		fn(row, nil)
	}
}

// Write encodes the sample rows to w.
func (s sample[T]) Write(ctx context.Context, w io.Writer, b *cellz.Builder) error {
	writer := csvbean.NewWriter[T](w).WithRegistry(registry).WithBuilder(b)
	for _, row := range s.rows {
		if err := writer.Write(ctx, row); err != nil {
			return err
		}
	}
	return writer.Flush()
}
