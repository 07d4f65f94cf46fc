package xlsq

import (
	"archive/zip"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/rgdias/xlsq/xlsx"
)

// silentLogger keeps conversion diagnostics out of the test output.
type silentLogger struct{}

func (silentLogger) Run(format string, v ...interface{})    {}
func (silentLogger) Ok()                                    {}
func (silentLogger) Nok()                                   {}
func (silentLogger) Printf(format string, v ...interface{}) {}
func (silentLogger) Debug(format string, v ...interface{})  {}
func (silentLogger) Info(format string, v ...interface{})   {}
func (silentLogger) Warn(format string, v ...interface{})   {}
func (silentLogger) Error(format string, v ...interface{})  {}
func (silentLogger) SetOut(out io.Writer)                   {}

func tempFilename(t *testing.T) string {
	f, err := ioutil.TempFile("", "xlsq-test-")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	return f.Name()
}

const testRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings" Target="sharedStrings.xml"/>
</Relationships>`

const testStrings = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="7"><si><t>Código</t></si><si><t>Nome Completo</t></si><si><t>Preço</t></si><si><t>Obs</t></si><si><t>Alice</t></si><si><t>Bob</t></si><si><t>Carol</t></si></sst>`

const testSheet = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c><c r="C1" t="s"><v>2</v></c><c r="D1" t="s"><v>3</v></c></row>
<row r="2"><c r="A2"><v>10</v></c><c r="B2" t="s"><v>4</v></c><c r="C2"><v>1.5</v></c><c r="D2"><v></v></c></row>
<row r="3"><c r="A3"><v>20</v></c><c r="B3" t="s"><v>5</v></c><c r="C3"><v>2.25</v></c><c r="D3"><v></v></c></row>
<row r="4"><c r="A4"><v>30</v></c><c r="B4" t="s"><v>6</v></c><c r="C4"><v>3.5</v></c><c r="D4"><v></v></c></row>
</sheetData></worksheet>`

// openFixture writes a spreadsheet package to disk and decodes it. The
// caller removes the returned path.
func openFixture(t *testing.T, sheet, sharedStrings string) (*xlsx.Document, string) {
	t.Helper()

	path := tempFilename(t)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	zw := zip.NewWriter(f)
	entries := map[string]string{
		"xl/_rels/workbook.xml.rels": testRels,
		"xl/sharedStrings.xml":       sharedStrings,
		"xl/worksheets/sheet1.xml":   sheet,
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	doc, err := xlsx.Open(path, xlsx.WithLogger(silentLogger{}))
	if err != nil {
		os.Remove(path)
		t.Fatalf("Open() error = %v", err)
	}
	return doc, path
}

func TestConvert(t *testing.T) {
	doc, src := openFixture(t, testSheet, testStrings)
	defer os.Remove(src)

	dbFile := tempFilename(t)
	defer os.Remove(dbFile)
	db, err := OpenDatabase(dbFile)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	overrides := map[string]string{"preco": SQLReal}
	n, err := Convert(db, doc, "people", overrides, silentLogger{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Convert() inserted %d rows, expected 3", n)
	}

	rows, err := db.Query(`select codigo, nome_completo, preco from "people" order by id`)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	expected := []struct {
		codigo int64
		nome   string
		preco  float64
	}{
		{10, "Alice", 1.5},
		{20, "Bob", 2.25},
		{30, "Carol", 3.5},
	}
	i := 0
	for rows.Next() {
		var codigo int64
		var nome string
		var preco float64
		if err := rows.Scan(&codigo, &nome, &preco); err != nil {
			t.Fatal(err)
		}
		e := expected[i]
		if codigo != e.codigo || nome != e.nome || preco != e.preco {
			t.Errorf("row %d = (%d, %q, %v), expected (%d, %q, %v)",
				i, codigo, nome, preco, e.codigo, e.nome, e.preco)
		}
		i++
	}
	if i != len(expected) {
		t.Errorf("read back %d rows, expected %d", i, len(expected))
	}

	// The all-null column must not become a table column.
	if _, err := db.Query(`select obs from "people"`); err == nil {
		t.Error("expected empty column to be dropped from the table")
	}
}

func TestColumnTypes(t *testing.T) {
	doc, src := openFixture(t, testSheet, testStrings)
	defer os.Remove(src)

	t.Run("inferred with override", func(t *testing.T) {
		types, err := ColumnTypes(doc, map[string]string{"preco": SQLReal}, silentLogger{})
		if err != nil {
			t.Fatalf("ColumnTypes() error = %v", err)
		}
		want := []string{SQLInteger, SQLText, SQLReal, ""}
		for col := range want {
			if types[col] != want[col] {
				t.Errorf("column %d type = %q, expected %q", col, types[col], want[col])
			}
		}
	})

	t.Run("float without override fails", func(t *testing.T) {
		if _, err := ColumnTypes(doc, nil, silentLogger{}); err == nil {
			t.Error("expected an error on a floating point column")
		}
	})
}

func TestColumnTypesRejects(t *testing.T) {
	tests := []struct {
		name  string
		sheet string
	}{
		{
			"numeric header",
			`<worksheet><sheetData>
<row r="1"><c r="A1"><v>7</v></c></row>
<row r="2"><c r="A2"><v>8</v></c></row>
</sheetData></worksheet>`,
		},
		{
			"mixed column types",
			`<worksheet><sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c></row>
<row r="2"><c r="A2"><v>8</v></c></row>
<row r="3"><c r="A3" t="s"><v>4</v></c></row>
</sheetData></worksheet>`,
		},
		{
			"header only",
			`<worksheet><sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c></row>
</sheetData></worksheet>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, src := openFixture(t, tt.sheet, testStrings)
			defer os.Remove(src)

			if _, err := ColumnTypes(doc, nil, silentLogger{}); err == nil {
				t.Error("ColumnTypes() expected an error")
			}
		})
	}
}

func TestConvertDuplicateHeaders(t *testing.T) {
	const sheet = `<worksheet><sheetData>
<row r="1"><c r="A1" t="s"><v>1</v></c><c r="B1" t="s"><v>1</v></c></row>
<row r="2"><c r="A2" t="s"><v>4</v></c><c r="B2" t="s"><v>5</v></c></row>
</sheetData></worksheet>`

	doc, src := openFixture(t, sheet, testStrings)
	defer os.Remove(src)

	dbFile := tempFilename(t)
	defer os.Remove(dbFile)
	db, err := OpenDatabase(dbFile)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := Convert(db, doc, "dup", nil, silentLogger{}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	var a, b string
	row := db.QueryRow(`select nome_completo, nome_completo_2 from "dup"`)
	if err := row.Scan(&a, &b); err != nil {
		t.Fatal(err)
	}
	if a != "Alice" || b != "Bob" {
		t.Errorf("got (%q, %q), expected (%q, %q)", a, b, "Alice", "Bob")
	}
}

func TestLoadTypeOverrides(t *testing.T) {
	path := tempFilename(t)
	defer os.Remove(path)

	err := ioutil.WriteFile(path, []byte("Preço: REAL\nCódigo: integer\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	overrides, err := LoadTypeOverrides(path)
	if err != nil {
		t.Fatalf("LoadTypeOverrides() error = %v", err)
	}
	if overrides["preco"] != SQLReal || overrides["codigo"] != SQLInteger {
		t.Errorf("unexpected overrides: %v", overrides)
	}

	err = ioutil.WriteFile(path, []byte("Preço: decimal\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = LoadTypeOverrides(path)
	if err == nil {
		t.Fatal("expected an error on an unknown SQL type")
	}
	if !strings.Contains(err.Error(), "decimal") {
		t.Errorf("error does not name the bad type: %v", err)
	}
}
