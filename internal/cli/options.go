package cli

import "io"

// WithIn configures the In stream prompts
// read operator answers from.
type WithIn struct{ In io.Reader }

func (w WithIn) ConfigurePrinter(c *PrinterConfig) {
	c.In = w.In
}

// WithOut configures the Out stream
// to the given io.Writer implementations.
type WithOut struct{ Out io.Writer }

func (w WithOut) ConfigurePrinter(c *PrinterConfig) {
	c.Out = w.Out
}

// WithErr configures the Err stream
// to the given io.Writer implementations.
type WithErr struct{ Err io.Writer }

func (w WithErr) ConfigurePrinter(c *PrinterConfig) {
	c.Err = w.Err
}

// WithHeaders selects the columns of a DefaultTable.
type WithHeaders []string

func (w WithHeaders) ConfigureTable(c *TableConfig) {
	c.Headers = []string(w)
}
