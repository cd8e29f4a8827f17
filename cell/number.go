package cell

import (
	"errors"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberFormat is a parsed decimal format pattern.
type numberFormat struct {
	prefix      string
	suffix      string
	minInteger  int
	minFraction int
	maxFraction int
	grouping    bool
}

func parseNumberFormat(pattern string) (numberFormat, error) {
	start := strings.IndexAny(pattern, "0#")
	if start < 0 {
		return numberFormat{}, errors.New("pattern " + pattern + " has no digit placeholder")
	}
	end := strings.LastIndexAny(pattern, "0#")
	body := pattern[start : end+1]
	if strings.HasPrefix(pattern[:start], ".") || strings.HasSuffix(pattern[:start], ",") {
		return numberFormat{}, errors.New("pattern " + pattern + " starts with a separator")
	}

	f := numberFormat{prefix: pattern[:start], suffix: pattern[end+1:]}
	integer, fraction, hasFraction := strings.Cut(body, ".")
	if hasFraction && strings.Contains(fraction, ".") {
		return numberFormat{}, errors.New("pattern " + pattern + " has more than one decimal separator")
	}
	if strings.Contains(fraction, ",") {
		return numberFormat{}, errors.New("pattern " + pattern + " has a grouping separator in the fraction")
	}

	f.grouping = strings.Contains(integer, ",")
	f.minInteger = strings.Count(integer, "0")
	f.minFraction = strings.Count(fraction, "0")
	f.maxFraction = f.minFraction + strings.Count(fraction, "#")
	return f, nil
}

func (f numberFormat) render(printer *message.Printer, value any) string {
	opts := []number.Option{
		number.MinFractionDigits(f.minFraction),
		number.MaxFractionDigits(f.maxFraction),
	}
	if f.minInteger > 1 {
		opts = append(opts, number.MinIntegerDigits(f.minInteger))
	}
	if !f.grouping {
		opts = append(opts, number.NoSeparator())
	}
	return f.prefix + printer.Sprint(number.Decimal(value, opts...)) + f.suffix
}
