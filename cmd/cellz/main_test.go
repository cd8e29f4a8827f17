package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("cellz %s: %v", strings.Join(args, " "), err)
	}
	return out.String(), errOut.String()
}

func TestSamplesResolve(t *testing.T) {
	for _, s := range getAllSamples() {
		if _, err := s.Record(); err != nil {
			t.Errorf("%s: %v", s.Name(), err)
		}
	}
}

func TestList(t *testing.T) {
	out, _ := run(t, "list")
	for _, s := range getAllSamples() {
		if !strings.Contains(out, s.Name()) {
			t.Errorf("expected %s to be listed", s.Name())
		}
	}

	out, _ = run(t, "list", "--kinds")
	if !strings.Contains(out, "strReplace.list") {
		t.Errorf("expected kinds to be listed, got %s", out)
	}
	listKinds = false
}

func TestInspect(t *testing.T) {
	out, _ := run(t, "inspect", "order")
	for _, want := range []string{
		"Order.Price (read): parseDouble(0) -> dMinMax(0)",
		"Order.Price (write): dMinMax(0) -> fmtNumber(0)",
		"Order.Customer (read): trim(0) -> strReplace(0) -> strReplace(0)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRead(t *testing.T) {
	t.Run("Customer", func(t *testing.T) {
		out, errOut := run(t, "read", "customer", "--stats")
		if !strings.Contains(out, "Ada Lovelace") || !strings.Contains(out, "bronze") {
			t.Errorf("unexpected rows:\n%s", out)
		}
		if got := strings.Count(errOut, "rejected:"); got != 2 {
			t.Errorf("expected 2 rejected rows, got %d:\n%s", got, errOut)
		}
		if !strings.Contains(out, "rows: 2, rejected: 2, chains built: 6") {
			t.Errorf("unexpected stats:\n%s", out)
		}
	})

	t.Run("Order", func(t *testing.T) {
		out, errOut := run(t, "read", "order")
		if !strings.Contains(out, "Mr Smith") {
			t.Errorf("expected the customer name to be normalized:\n%s", out)
		}
		if !strings.Contains(errOut, "column quantity") {
			t.Errorf("expected the quantity to be rejected:\n%s", errOut)
		}
	})
	readStats = false
}

func TestWrite(t *testing.T) {
	out, _ := run(t, "write", "order")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got:\n%s", out)
	}
	if lines[0] != "order,customer,quantity,price,express,note" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1001,Mr Smith,2,19.90,yes,") {
		t.Errorf("unexpected row %q", lines[1])
	}
}
