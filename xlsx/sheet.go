package xlsx

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/rgdias/xlsq/xmltree"
)

// maxGridCells caps rows*cols before the grid allocation. Catches both
// overflow and absurd documents.
const maxGridCells = 1 << 30

// decodeSheet reconstructs the dense data grid from the worksheet part.
//
// The worksheet stores rows sparsely: a row may omit cells for columns it
// has no value for, so a cell's position among its siblings is not its
// column. The first row establishes the canonical column order; every
// later row resolves its cells by matching the column span of the address
// attribute ("B" of "B7") against the first row's spans. A span the first
// row never declared is rejected as a format error rather than grown into
// a new column, since the grid width is fixed by the sizing pass.
//
// Two passes: the first sizes the document and validates addresses, the
// second fills a single contiguous allocation. No partially filled
// Document ever escapes a failed decode.
func decodeSheet(root *xmlquery.Node, strtab *stringTable, log Logger) (*Document, error) {
	sheet := xmltree.Find(root, "worksheet.sheetData")
	if sheet == nil {
		return nil, errors.Wrap(ErrFormat, "document has no sheet data")
	}

	rows, cols := -1, -1
	err := xmltree.Visit(sheet, func(row *xmlquery.Node, _, i int) error {
		if i > rows {
			rows = i
		}
		rowName, ok := xmltree.Attr(row, "r")
		if !ok {
			return errors.Wrapf(ErrFormat, "row %d has no address", i)
		}

		err := xmltree.Visit(row, func(cell *xmlquery.Node, _, j int) error {
			if j > cols {
				cols = j
			}
			// Cell addresses carry the row name as a suffix ("B7" on
			// row "7"); what remains in front is the column span.
			addr, ok := xmltree.Attr(cell, "r")
			if !ok {
				return errors.Wrapf(ErrFormat, "cell %d of row %d has no address", j, i)
			}
			if len(addr) <= len(rowName) {
				return errors.Wrapf(ErrFormat, "cell address %q of row %d has no column span", addr, i)
			}
			return xmltree.SkipChildren
		})
		if err != nil {
			return err
		}
		return xmltree.SkipChildren
	})
	if err != nil {
		return nil, err
	}

	// These were maxima; one extra for counts.
	rows++
	cols++

	total := int64(rows) * int64(cols)
	if total > maxGridCells {
		return nil, errors.Wrapf(ErrTooLarge, "%d x %d cells", rows, cols)
	}

	log.Debug("document has %d rows, %d cols", rows, cols)

	// One big allocation, default null. The zero Cell is TypeNull.
	grid := make([]Cell, total)

	// Canonical column spans, established by the first row.
	spans := make([]string, cols)

	err = xmltree.Visit(sheet, func(row *xmlquery.Node, _, i int) error {
		rowName, _ := xmltree.Attr(row, "r") // validated in the first pass

		err := xmltree.Visit(row, func(cell *xmlquery.Node, _, n int) error {
			addr, _ := xmltree.Attr(cell, "r")
			span := addr[:len(addr)-len(rowName)]

			var j int
			if i == 0 {
				// The first row defines the column ordering.
				j = n
				spans[j] = span
				log.Debug("column %d: %q", j, span)
			} else {
				j = -1
				for k, s := range spans {
					if s == span {
						j = k
						break
					}
				}
				if j < 0 {
					return errors.Wrapf(ErrFormat, "value in row %d has unknown column %q", i, span)
				}
			}

			if err := decodeCell(cell, &grid[i*cols+j], strtab, i, j, log); err != nil {
				return err
			}
			return xmltree.SkipChildren
		})
		if err != nil {
			return err
		}
		return xmltree.SkipChildren
	})
	if err != nil {
		return nil, err
	}

	log.Debug("finished reading %d values", total)
	return &Document{rows: rows, cols: cols, grid: grid, strtab: strtab}, nil
}

// decodeCell fills slot from a single cell element at grid position (i, j).
func decodeCell(cell *xmlquery.Node, slot *Cell, strtab *stringTable, i, j int, log Logger) error {
	text := xmltree.Text(xmltree.Find(cell, "c.v"))
	if text == "" {
		// No value. The slot stays null.
		return nil
	}

	typ, hasType := xmltree.Attr(cell, "t")
	if hasType && typ != "s" && typ != "str" {
		// Anything can be kept as a literal string.
		log.Warn("unknown cell type %q at (%d, %d)", typ, i, j)
		typ = "str"
	}

	switch {
	case typ == "s":
		// A shared string table index.
		idx, err := strconv.Atoi(text)
		if err != nil || idx < 0 {
			return errors.Wrapf(ErrValue, "string table index %q at (%d, %d)", text, i, j)
		}
		if idx >= strtab.Count() {
			return errors.Wrapf(ErrFormat, "string table index %d at (%d, %d) is out of range", idx, i, j)
		}
		*slot = Cell{Type: TypeSharedRef, SRef: idx}

	case typ == "str":
		// A literal string stored inline, outside the shared table.
		*slot = Cell{Type: TypeLiteral, Str: text}

	case strings.ContainsRune(text, '.'):
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return errors.Wrapf(ErrValue, "float value %q at (%d, %d)", text, i, j)
		}
		*slot = Cell{Type: TypeFloat, Float: f}

	default:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrValue, "integer value %q at (%d, %d)", text, i, j)
		}
		*slot = Cell{Type: TypeInt, Int: n}
	}

	return nil
}
