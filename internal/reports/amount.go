package reports

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// ParseAmount parses a statement amount such as "1,234.56" or "-0.5".
// Blank and "--" cells count as zero.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "--" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

// FormatAmount renders v with two decimals and thousands separators.
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

// Totals maps a grouping key (currency or symbol) to a summed amount.
type Totals map[string]float64

// Keys returns the keys in sorted order.
func (t Totals) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Rows converts the totals into table rows with the given column names.
func (t Totals) Rows(keyColumn, valueColumn string) []Row {
	out := make([]Row, 0, len(t))
	for _, k := range t.Keys() {
		out = append(out, Row{keyColumn: k, valueColumn: FormatAmount(t[k])})
	}
	return out
}

// sumBy adds column of every row into the bucket named by keyColumn.
// Rows with an empty key are skipped.
func sumBy(rows []Row, keyColumn, column string) (Totals, error) {
	totals := make(Totals)
	for _, r := range rows {
		key := r[keyColumn]
		if key == "" {
			continue
		}
		v, err := ParseAmount(r[column])
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", keyColumn, key, err)
		}
		totals[key] += v
	}
	return totals, nil
}
