package xlsq

import (
	"database/sql"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/rgdias/xlsq/xlsx"
)

// SQL column types accepted for spreadsheet columns.
const (
	SQLText    = "text"
	SQLInteger = "integer"
	SQLReal    = "real"
)

// LoadTypeOverrides reads a YAML map of column header to SQL type (text,
// integer or real). Overrides win over the inferred column types and are
// the only way to load a floating point column.
func LoadTypeOverrides(path string) (map[string]string, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read type overrides %s", path)
	}

	raw := map[string]string{}
	if err := yaml.Unmarshal(buf, &raw); err != nil {
		return nil, errors.Wrapf(err, "cannot parse type overrides %s", path)
	}

	overrides := make(map[string]string, len(raw))
	for col, typ := range raw {
		typ = strings.ToLower(strings.TrimSpace(typ))
		switch typ {
		case SQLText, SQLInteger, SQLReal:
		default:
			return nil, errors.Errorf("unknown SQL type %q for column %q", typ, col)
		}
		overrides[SanitizeName(col)] = typ
	}

	return overrides, nil
}

// ColumnTypes checks that the document can become a table and returns the
// SQL type of each column. The header row must hold only strings. A
// column's type comes from its first non-null cell and every later cell
// must agree; all-null columns get "" and are skipped by Convert; floating
// point columns are rejected unless overridden.
func ColumnTypes(doc *xlsx.Document, overrides map[string]string, log Logger) ([]string, error) {
	if doc.Rows() < 2 {
		return nil, errors.New("no data in document")
	}

	header := doc.Row(0)
	types := make([]string, doc.Cols())

	for col := range header {
		h := &header[col]
		if h.Type != xlsx.TypeSharedRef && h.Type != xlsx.TypeLiteral {
			return nil, errors.Errorf("column %d has improper header", col+1)
		}

		if typ, ok := overrides[SanitizeName(doc.Str(h))]; ok {
			types[col] = typ
			continue
		}

		guess := xlsx.TypeNull
		ok := doc.IterCol(col, func(c *xlsx.Cell, row int) bool {
			if row == 0 || c.Type == xlsx.TypeNull {
				return true
			}
			if guess == xlsx.TypeNull {
				guess = c.Type
				return true
			}
			return guess == c.Type
		})
		if !ok {
			return nil, errors.Errorf("column %d has multiple typed entries (guessed %s)", col+1, guess)
		}

		switch guess {
		case xlsx.TypeNull:
			log.Warn("skipping empty column %d", col+1)
		case xlsx.TypeInt:
			types[col] = SQLInteger
		case xlsx.TypeFloat:
			return nil, errors.Errorf("column %d has floating point values", col+1)
		default:
			types[col] = SQLText
		}
	}

	return types, nil
}

// Convert creates 'table' in db, named columns taken from the document's
// header row, and loads every data row into it inside one transaction.
// Returns the number of rows inserted.
func Convert(db *sql.DB, doc *xlsx.Document, table string, overrides map[string]string, log Logger) (int, error) {
	types, err := ColumnTypes(doc, overrides, log)
	if err != nil {
		return 0, err
	}
	names := columnNames(doc, types)

	create := createQuery(table, names, types)
	log.Debug("create query: %s", create)
	if _, err := db.Exec(create); err != nil {
		return 0, errors.Wrapf(err, "failed to create table %s", table)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}
	stmt, err := tx.Prepare(insertQuery(table, names, types))
	if err != nil {
		_ = tx.Rollback()
		return 0, errors.Wrap(err, "failed to prepare insert")
	}
	defer stmt.Close()

	count := 0
	for i := 1; i < doc.Rows(); i++ {
		row := doc.Row(i)
		args := make([]interface{}, 0, len(names))
		for col := range row {
			if types[col] == "" {
				continue
			}
			args = append(args, cellValue(doc, &row[col]))
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = tx.Rollback()
			return 0, errors.Wrapf(err, "failed to insert row %d", i)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit transaction")
	}
	return count, nil
}

// columnNames returns a sanitized, deduplicated name per kept column.
// Skipped columns get "".
func columnNames(doc *xlsx.Document, types []string) []string {
	header := doc.Row(0)
	names := make([]string, len(header))
	seen := map[string]int{}

	for col := range header {
		if types[col] == "" {
			continue
		}
		name := SanitizeName(doc.Str(&header[col]))
		if n := seen[name]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[name]++
		names[col] = name
	}
	return names
}

func createQuery(table string, names, types []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "create table %q (id integer primary key", table)
	for col := range names {
		if types[col] == "" {
			continue
		}
		fmt.Fprintf(&b, ", %q %s", names[col], types[col])
	}
	b.WriteString(");")
	return b.String()
}

func insertQuery(table string, names, types []string) string {
	var cols, marks []string
	for col := range names {
		if types[col] == "" {
			continue
		}
		cols = append(cols, fmt.Sprintf("%q", names[col]))
		marks = append(marks, "?")
	}
	return fmt.Sprintf("insert into %q (%s) values (%s);",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "))
}

// cellValue maps a decoded cell to a driver value. Null cells become SQL
// nulls; both shared and literal strings become text.
func cellValue(doc *xlsx.Document, c *xlsx.Cell) interface{} {
	switch c.Type {
	case xlsx.TypeNull:
		return nil
	case xlsx.TypeInt:
		return c.Int
	case xlsx.TypeFloat:
		return c.Float
	}
	return doc.Str(c)
}
