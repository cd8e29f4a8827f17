package cell

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestParseBool(t *testing.T) {
	p := NewParseBool(nil)
	tests := []struct {
		value any
		want  any
		err   error
	}{
		{value: "true", want: true},
		{value: "Y", want: true},
		{value: "0", want: false},
		{value: "F", want: false},
		{value: false, want: false},
		{value: "maybe", err: ErrParse},
		{value: 1.5, err: ErrUnexpectedType},
		{value: nil, err: ErrNullValue},
	}
	for _, tt := range tests {
		v, err := p.Execute(tt.value, nil)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%v: expected %v, got %v", tt.value, tt.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: unexpected error: %v", tt.value, err)
			continue
		}
		if v != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.value, tt.want, v)
		}
	}

	t.Run("Custom Values", func(t *testing.T) {
		p, err := NewParseBoolValues([]string{"yes"}, []string{"no"}, false, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, _ := p.Execute("yes", nil); v != true {
			t.Errorf("expected true, got %v", v)
		}
		if _, err := p.Execute("YES", nil); !errors.Is(err, ErrParse) {
			t.Errorf("expected case sensitive parse failure, got %v", err)
		}
	})

	t.Run("Overlapping Values", func(t *testing.T) {
		_, err := NewParseBoolValues([]string{"x"}, []string{"X"}, true, nil)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestParseNumbers(t *testing.T) {
	t.Run("ParseInt", func(t *testing.T) {
		v, err := NewParseInt(nil).Execute("42", nil)
		if err != nil || v != 42 {
			t.Errorf("expected 42, got %v (%v)", v, err)
		}
		if _, err := NewParseInt(nil).Execute("4.2", nil); !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
	})

	t.Run("ParseLong", func(t *testing.T) {
		v, err := NewParseLong(nil).Execute("9000000000", nil)
		if err != nil || v != int64(9000000000) {
			t.Errorf("expected 9000000000, got %v (%v)", v, err)
		}
	})

	t.Run("ParseDouble", func(t *testing.T) {
		v, err := NewParseDouble(nil).Execute("2.5", nil)
		if err != nil || v != 2.5 {
			t.Errorf("expected 2.5, got %v (%v)", v, err)
		}
		v, err = NewParseDouble(nil).Execute(3, nil)
		if err != nil || v != 3.0 {
			t.Errorf("expected 3.0, got %v (%v)", v, err)
		}
	})

	t.Run("ParseBigDecimal", func(t *testing.T) {
		v, err := NewParseBigDecimal(nil).Execute("10.125", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d, ok := v.(decimal.Decimal)
		if !ok {
			t.Fatalf("expected decimal.Decimal, got %T", v)
		}
		if !d.Equal(decimal.RequireFromString("10.125")) {
			t.Errorf("expected 10.125, got %s", d)
		}
	})

	t.Run("Chained Bounds", func(t *testing.T) {
		bounds, err := NewLMinMax(0, 150, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		chain := NewTrim(NewParseLong(bounds))
		if v, err := chain.Execute(" 42 ", nil); err != nil || v != int64(42) {
			t.Errorf("expected 42, got %v (%v)", v, err)
		}
		if _, err := chain.Execute("151", nil); !errors.Is(err, ErrConstraint) {
			t.Errorf("expected ErrConstraint, got %v", err)
		}
	})
}

func TestParseDate(t *testing.T) {
	v, err := NewParseDate("2006-01-02", nil).Execute("2024-02-29", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if got, ok := v.(time.Time); !ok || !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, v)
	}
	if _, err := NewParseDate("2006-01-02", nil).Execute("29/02/2024", nil); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()
	v, err := NewParseUUID(nil).Execute(id.String(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != id {
		t.Errorf("expected %s, got %v", id, v)
	}
	if _, err := NewParseUUID(nil).Execute("not-a-uuid", nil); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}
