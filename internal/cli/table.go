package cli

import "strings"

// Table is consumed by Printer.PrintTable.
type Table interface {
	// Headers returns the table's headers if any.
	Headers() []string
	// Rows returns the table data, one slice of Fields per row.
	Rows() [][]Field
}

// NewDefaultTable returns a Table which only keeps the Fields of a row
// whose names match the configured headers. Without headers every Field
// of every row is kept.
func NewDefaultTable(opts ...TableOption) *DefaultTable {
	var cfg TableConfig

	cfg.Option(opts...)

	return &DefaultTable{
		cfg: cfg,
	}
}

type DefaultTable struct {
	cfg  TableConfig
	rows [][]Field
}

func (t *DefaultTable) Headers() []string {
	return t.cfg.Headers
}

func (t *DefaultTable) AddRow(fields ...Field) {
	t.rows = append(t.rows, fields)
}

func (t *DefaultTable) Rows() [][]Field {
	if len(t.cfg.Headers) == 0 {
		return t.rows
	}

	res := make([][]Field, 0, len(t.rows))

	for _, r := range t.rows {
		selected := make([]Field, 0, len(t.cfg.Headers))

		for _, h := range t.cfg.Headers {
			if f, ok := lookupField(r, h); ok {
				selected = append(selected, f)
			}
		}

		if len(selected) == 0 {
			continue
		}

		res = append(res, selected)
	}

	return res
}

type TableConfig struct {
	Headers []string
}

func (c *TableConfig) Option(opts ...TableOption) {
	for _, opt := range opts {
		opt.ConfigureTable(c)
	}
}

type TableOption interface {
	ConfigureTable(*TableConfig)
}

// Field is a single named cell.
type Field struct {
	Name  string
	Value any
}

func lookupField(row []Field, name string) (Field, bool) {
	for _, f := range row {
		if normalizeHeader(f.Name) == normalizeHeader(name) {
			return f, true
		}
	}

	return Field{}, false
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}
