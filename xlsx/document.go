// Package xlsx decodes the data grid of a zip-packaged spreadsheet into a
// dense, randomly addressable array of typed cell values. Only the values
// are read; formulas, styles and formatting are ignored.
package xlsx

// CellType tags the value held by a Cell.
type CellType int

const (
	// TypeNull is an empty cell, either omitted from its row or present
	// without a value.
	TypeNull CellType = iota

	// TypeSharedRef is an index into the package's shared string table.
	TypeSharedRef

	// TypeLiteral is a string stored inline in the worksheet.
	TypeLiteral

	// TypeInt is a signed 64-bit integer.
	TypeInt

	// TypeFloat is an IEEE double.
	TypeFloat
)

func (t CellType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeSharedRef:
		return "sharedref"
	case TypeLiteral:
		return "literal"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	}
	return "unknown"
}

// Cell is one decoded grid value. Only the field selected by Type is
// meaningful.
type Cell struct {
	Type  CellType
	SRef  int
	Str   string
	Int   int64
	Float float64
}

// Document is a fully decoded spreadsheet data grid. It is built once by
// Open and immutable afterwards.
type Document struct {
	rows, cols int
	grid       []Cell // row-major, rows*cols entries
	strtab     *stringTable
}

// Rows returns the number of rows in the grid.
func (d *Document) Rows() int { return d.rows }

// Cols returns the number of columns in the grid.
func (d *Document) Cols() int { return d.cols }

// Row returns the cells of row i, Cols() of them, or nil when i is out of
// range.
func (d *Document) Row(i int) []Cell {
	if i < 0 || i >= d.rows {
		return nil
	}
	return d.grid[i*d.cols : (i+1)*d.cols : (i+1)*d.cols]
}

// ForEachRow calls fn for every row in order until fn returns false.
// Reports whether the iteration ran to completion.
func (d *Document) ForEachRow(fn func(row []Cell, n int) bool) bool {
	for i := 0; i < d.rows; i++ {
		if !fn(d.Row(i), i) {
			return false
		}
	}
	return true
}

// IterCol calls fn for every cell of the given column, top to bottom,
// until fn returns false. Reports whether the iteration ran to completion.
func (d *Document) IterCol(col int, fn func(c *Cell, row int) bool) bool {
	if col < 0 || col >= d.cols {
		return true
	}
	return d.ForEachRow(func(row []Cell, n int) bool {
		return fn(&row[col], n)
	})
}

// ForEach calls fn for every cell, row by row, until fn returns false.
func (d *Document) ForEach(fn func(c *Cell, row, col int) bool) bool {
	return d.ForEachRow(func(row []Cell, n int) bool {
		for col := range row {
			if !fn(&row[col], n, col) {
				return false
			}
		}
		return true
	})
}

// SharedString resolves an index into the shared string table. The second
// result is false for an out-of-range index or a tolerated-malformed entry.
func (d *Document) SharedString(i int) (string, bool) {
	return d.strtab.Lookup(i)
}

// Str resolves any string-bearing cell to its text: shared references are
// looked up in the string table, literals returned directly. Other cell
// types yield "".
func (d *Document) Str(c *Cell) string {
	switch c.Type {
	case TypeSharedRef:
		s, _ := d.strtab.Lookup(c.SRef)
		return s
	case TypeLiteral:
		return c.Str
	}
	return ""
}
