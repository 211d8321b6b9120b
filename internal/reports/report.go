// Package reports holds the typed views over the tables of an activity
// statement and the registry that maps a category token to the builder of
// its view.
package reports

// Row is one parsed table row keyed by column name.
type Row = map[string]string

// Report is a typed wrapper around the parsed rows of one statement
// category. Reports are read-only once built.
type Report interface {
	// Token returns the category token the report was built from.
	Token() string

	// Columns returns the column names in header order.
	Columns() []string

	// Rows returns every parsed row, in file order.
	Rows() []Row
}

// Base is the embeddable Report implementation shared by every concrete
// report.
type Base struct {
	token   string
	columns []string
	rows    []Row
}

// NewBase builds a Base over rows. columns may be nil when the header order
// is unknown, in which case it is derived from the first row.
func NewBase(token string, rows []Row, columns []string) Base {
	if columns == nil && len(rows) > 0 {
		columns = sortedKeys(rows[0])
	}
	return Base{token: token, columns: columns, rows: rows}
}

func (b Base) Token() string { return b.token }

func (b Base) Columns() []string { return b.columns }

func (b Base) Rows() []Row { return b.rows }

// HasColumn reports whether the report's header declares name.
func (b Base) HasColumn(name string) bool {
	for _, c := range b.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Data returns the rows that carry statement data. Statements mark each row
// with a Header column ("Header", "Data", "SubTotal", "Total"); tables
// without that column are all data.
func (b Base) Data() []Row {
	var out []Row
	for _, r := range b.rows {
		if isData(r) {
			out = append(out, r)
		}
	}
	return out
}

// Where returns the data rows whose column equals value.
func (b Base) Where(column, value string) []Row {
	var out []Row
	for _, r := range b.Data() {
		if r[column] == value {
			out = append(out, r)
		}
	}
	return out
}

func isData(r Row) bool {
	h, ok := r[ColHeader]
	return !ok || h == "Data"
}

// Generic is the report produced for tokens registered without a dedicated
// type.
type Generic struct {
	Base
}

// NewGeneric is a Builder for plain tables.
func NewGeneric(token string, rows []Row, columns []string) (Report, error) {
	return &Generic{Base: NewBase(token, rows, columns)}, nil
}
