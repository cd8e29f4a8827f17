package cellz_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/annotation"
	"github.com/zoobzio/cellz/cell"
	cellztesting "github.com/zoobzio/cellz/testing"
)

// Test label constants.
const (
	first  = "first"
	second = "second"
	third  = "third"
	low    = "low"
	high   = "high"
	plain  = "plain"
	early  = "early"
	late   = "late"
)

func field(annotations ...cellz.Annotation) *cellz.Field {
	return &cellz.Field{Name: "Value", Column: "value", Annotations: annotations}
}

func TestBuildForPassthrough(t *testing.T) {
	t.Run("No Annotations", func(t *testing.T) {
		for _, dir := range cellz.Both {
			p, err := cellz.BuildFor(nil, field(), dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			cellztesting.AssertPassthrough(t, p)
		}
	})

	t.Run("Only Unrelated Metadata", func(t *testing.T) {
		p, err := cellz.BuildFor(nil, field(unrelated{}), cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertPassthrough(t, p)
	})

	t.Run("All Filtered Out", func(t *testing.T) {
		p, err := cellz.BuildFor(nil, field(cellztesting.WriteStep{Label: first}), cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertPassthrough(t, p)
	})

	t.Run("Nil Field", func(t *testing.T) {
		_, err := cellz.BuildFor(nil, nil, cellz.Read)
		if !errors.Is(err, cellz.ErrNilField) {
			t.Errorf("expected ErrNilField, got %v", err)
		}
	})
}

func TestBuildForSingleAnnotation(t *testing.T) {
	a := annotation.StrReplace{Pattern: "a", Replacement: "b"}
	p, err := cellz.BuildFor(nil, field(a), cellz.Read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The chain must equal the provider's own step in front of Passthrough.
	f, ok, err := cellz.Resolve(a, field(a), nil, cellz.Read)
	if err != nil || !ok {
		t.Fatalf("expected annotation to resolve, got %v, %v", ok, err)
	}
	direct, err := f.Create(cellz.Passthrough{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range []any{"abc", "aaa", "xyz"} {
		want, _ := direct.Execute(in, nil)
		got, _ := p.Execute(in, nil)
		if got != want {
			t.Errorf("%v: expected %v, got %v", in, want, got)
		}
	}
}

func TestBuildForOrdering(t *testing.T) {
	t.Run("Explicit Order Beats Declaration", func(t *testing.T) {
		log := cellztesting.NewLog()
		p, err := cellz.BuildFor(nil, field(
			cellztesting.Step{Label: high, Order: 10, Log: log},
			cellztesting.Step{Label: low, Order: 5, Log: log},
		), cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertExecutes(t, p, "", low+high)
		cellztesting.AssertOrder(t, log, low, high)
	})

	t.Run("Default Order Follows Declaration", func(t *testing.T) {
		log := cellztesting.NewLog()
		p, err := cellz.BuildFor(nil, field(
			cellztesting.Step{Label: first, Log: log},
			cellztesting.Step{Label: second, Log: log},
			cellztesting.Step{Label: third, Log: log},
		), cellz.Write)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertExecutes(t, p, "", first+second+third)
		cellztesting.AssertOrder(t, log, first, second, third)
	})

	t.Run("Order One Runs After Default", func(t *testing.T) {
		log := cellztesting.NewLog()
		p, err := cellz.BuildFor(nil, field(
			cellztesting.Step{Label: late, Order: 1, Log: log},
			cellztesting.Step{Label: plain, Log: log},
		), cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertExecutes(t, p, "", plain+late)
		cellztesting.AssertOrder(t, log, plain, late)
	})

	t.Run("Negative Order Runs Before Default", func(t *testing.T) {
		p, err := cellz.BuildFor(nil, field(
			cellztesting.Step{Label: plain},
			cellztesting.Step{Label: early, Order: -1},
		), cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertExecutes(t, p, "", early+plain)
	})

	t.Run("Ties Keep Declaration Order", func(t *testing.T) {
		p, err := cellz.BuildFor(nil, field(
			cellztesting.Step{Label: "a", Order: 3},
			cellztesting.Step{Label: "b", Order: 1},
			cellztesting.Step{Label: "c", Order: 3},
			cellztesting.Step{Label: "d", Order: 1},
		), cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertExecutes(t, p, "", "bdac")
	})
}

func TestBuildForGroups(t *testing.T) {
	individual := field(
		cellztesting.Step{Label: first},
		cellztesting.Step{Label: second},
		cellztesting.Step{Label: third},
	)
	grouped := field(cellz.Repeat(
		cellztesting.Step{Label: first},
		cellztesting.Step{Label: second},
		cellztesting.Step{Label: third},
	))

	want, err := cellz.BuildFor(nil, individual, cellz.Read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := cellz.BuildFor(nil, grouped, cellz.Read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOut, _ := want.Execute(">", nil)
	gotOut, _ := got.Execute(">", nil)
	if wantOut != gotOut {
		t.Errorf("expected group to behave like individual steps: %v != %v", gotOut, wantOut)
	}

	t.Run("Group Keeps Its Position", func(t *testing.T) {
		p, err := cellz.BuildFor(nil, field(
			cellztesting.Step{Label: "a"},
			cellztesting.Group{Members: []cellz.Annotation{cellztesting.Step{Label: "b"}, cellztesting.Step{Label: "c"}}},
			cellztesting.Step{Label: "d"},
		), cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertExecutes(t, p, "", "abcd")
	})

	t.Run("Failing Group Is Skipped", func(t *testing.T) {
		p, err := cellz.BuildFor(nil, field(
			cellztesting.Step{Label: "a"},
			cellztesting.Group{Err: errors.New("cannot expand"), Members: []cellz.Annotation{cellztesting.Step{Label: "x"}}},
			cellztesting.Step{Label: "b"},
		), cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cellztesting.AssertExecutes(t, p, "", "ab")
	})
}

func TestBuildForDirections(t *testing.T) {
	f := field(
		cellztesting.ReadStep{Label: "r"},
		cellztesting.Step{Label: "s"},
		cellztesting.WriteStep{Label: "w"},
	)
	read, err := cellz.BuildFor(nil, f, cellz.Read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cellztesting.AssertExecutes(t, read, "", "rs")

	write, err := cellz.BuildFor(nil, f, cellz.Write)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cellztesting.AssertExecutes(t, write, "", "sw")
}

func TestBuildForRepeatedReplace(t *testing.T) {
	chain := func(t *testing.T, anchor string) cell.Processor {
		t.Helper()
		p, err := cellz.BuildFor(nil, field(
			annotation.StrReplace{Pattern: anchor, Replacement: " "},
			annotation.Trim{},
			annotation.StrReplace{Pattern: "a", Replacement: "b"},
			annotation.StrReplace{Pattern: "b", Replacement: "c"},
		), cellz.Write)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return p
	}
	manual := func(anchor string, value any) any {
		for _, s := range []cell.Processor{
			must(cell.NewStrReplace(anchor, " ", nil)),
			cell.NewTrim(nil),
			must(cell.NewStrReplace("a", "b", nil)),
			must(cell.NewStrReplace("b", "c", nil)),
		} {
			value, _ = s.Execute(value, nil)
		}
		return value
	}

	t.Run("Start Anchor", func(t *testing.T) {
		p := chain(t, "^")
		cellztesting.AssertExecutes(t, p, "abc", "ccc")
		cellztesting.AssertExecutes(t, p, "^abc^", "^ccc^")
		if got := manual("^", "abc"); got != "ccc" {
			t.Errorf("expected steps applied in order to give ccc, got %v", got)
		}
		for _, in := range []string{"abc", " ab c", "^ab c^"} {
			cellztesting.AssertExecutes(t, p, in, manual("^", in))
		}
	})

	t.Run("Literal Caret", func(t *testing.T) {
		p := chain(t, `\^`)
		cellztesting.AssertExecutes(t, p, "abc", "ccc")
		cellztesting.AssertExecutes(t, p, "^abc^", "ccc")
		cellztesting.AssertExecutes(t, p, "^ab c^", manual(`\^`, "^ab c^"))
	})
}

func TestBuildForIncompatibleProvider(t *testing.T) {
	_, err := cellz.BuildFor(nil, field(cellztesting.Step{Label: first}, misdeclared{}), cellz.Read)
	if !errors.Is(err, cellz.ErrIncompatibleProvider) {
		t.Fatalf("expected ErrIncompatibleProvider, got %v", err)
	}
	var cfg *cellz.ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfg.Annotation != reflect.TypeOf(misdeclared{}).String() {
		t.Errorf("expected the annotation type to be named, got %q", cfg.Annotation)
	}
	if cfg.Field != "Value" || cfg.Direction != cellz.Read {
		t.Errorf("unexpected error location: %+v", cfg)
	}
}

func TestBuildForDeterminism(t *testing.T) {
	f := field(
		cellztesting.Step{Label: "a", Order: 2},
		cellz.Repeat(cellztesting.Step{Label: "b"}, cellztesting.Step{Label: "c", Order: 2}),
		cellztesting.Step{Label: "d"},
	)
	var want []string
	for i := 0; i < 20; i++ {
		plan, err := cellz.PlanFor(nil, f, cellz.Read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		labels := make([]string, len(plan.Steps))
		for j, s := range plan.Steps {
			labels[j] = s.Annotation.(cellztesting.Step).Label
		}
		if want == nil {
			want = labels
			continue
		}
		if !reflect.DeepEqual(want, labels) {
			t.Fatalf("build %d differs: %v != %v", i, labels, want)
		}
	}
	if !reflect.DeepEqual(want, []string{"b", "d", "a", "c"}) {
		t.Errorf("unexpected execution order %v", want)
	}
}

func TestPlanFor(t *testing.T) {
	record := &cellz.Record{Name: "Person"}
	plan, err := cellz.PlanFor(record, field(
		annotation.Trim{},
		annotation.FmtBool{TrueValue: "Y", FalseValue: "N", Order: 1},
		annotation.ParseBool{},
	), cellz.Write)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := plan.Names(); !reflect.DeepEqual(got, []string{"trim", "fmtBool"}) {
		t.Errorf("unexpected steps %v", got)
	}
	if got, want := plan.String(), "Person.Value (write): trim(0) -> fmtBool(1)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	empty, err := cellz.PlanFor(record, field(), cellz.Read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := empty.String(), "Person.Value (read): passthrough"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNext(t *testing.T) {
	if _, err := cellz.Next[cell.StringProcessor](cellz.Passthrough{}); err != nil {
		t.Errorf("expected Passthrough to accept strings, got %v", err)
	}
	if _, err := cellz.Next[cell.BoolProcessor](cell.NewParseInt(nil)); !errors.Is(err, cellz.ErrIncompatibleSuccessor) {
		t.Errorf("expected ErrIncompatibleSuccessor, got %v", err)
	}
}

// unrelated is metadata without a descriptor.
type unrelated struct{}

func (unrelated) Name() string { return "unrelated" }

// misdeclared points at a provider for a different kind.
type misdeclared struct{}

func (misdeclared) Name() string { return "misdeclared" }

func (misdeclared) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{
		Provider: cellz.ProviderFor(func(a annotation.Trim, _ cellz.Metadata) (cellz.Factory, error) {
			return cellz.NewFactory(a.Order, func(next cell.Processor) (cell.Processor, error) {
				return next, nil
			}), nil
		}),
		Directions: cellz.Both,
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
